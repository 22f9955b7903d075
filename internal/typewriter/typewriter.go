// Package typewriter reveals a text one character at a time and, once the
// whole text is visible, turns the URLs in it into links.
//
// The state machine mirrors the script embedded in the console page:
// Idle → Revealing → Linkifying → Done, with no way back.
package typewriter

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/devarshiadi/devconsole/internal/domain"
)

// State is a stage of the reveal loop.
type State int

const (
	StateIdle State = iota
	StateRevealing
	StateLinkifying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRevealing:
		return "revealing"
	case StateLinkifying:
		return "linkifying"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// URLPattern matches http:// or https:// followed by non-whitespace.
var URLPattern = regexp.MustCompile(`https?://\S+`)

// LinkFormatter renders one matched URL.
type LinkFormatter func(url string) string

// Result is what a finished typewriter leaves behind.
type Result struct {
	Text  string
	Links []string
}

// Typewriter holds the animation state for one source text.
type Typewriter struct {
	mu       sync.Mutex
	source   []rune
	index    int
	state    State
	revealed strings.Builder
	links    []string
}

// New returns an idle typewriter over source.
func New(source string) *Typewriter {
	return &Typewriter{source: []rune(source)}
}

// Start moves an idle typewriter to Revealing. Any later call fails with
// domain.ErrAlreadyStarted so at most one loop drives a typewriter.
func (t *Typewriter) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle {
		return domain.ErrAlreadyStarted
	}
	t.state = StateRevealing
	return nil
}

// Step advances the loop by one tick. While characters remain it reveals the
// next one and returns it with ok set. On the tick after the last character it
// runs the link pass and ends in Done; ok is false from then on.
func (t *Typewriter) Step() (r rune, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRevealing {
		return 0, false
	}

	if t.index < len(t.source) {
		r = t.source[t.index]
		t.revealed.WriteRune(r)
		t.index++
		return r, true
	}

	t.state = StateLinkifying
	t.links = Links(t.revealed.String())
	t.state = StateDone
	return 0, false
}

// State returns the current stage.
func (t *Typewriter) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Index returns how many characters have been revealed.
func (t *Typewriter) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

// Len returns the length of the source in characters.
func (t *Typewriter) Len() int {
	return len(t.source)
}

// Revealed returns the text shown so far.
func (t *Typewriter) Revealed() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed.String()
}

// Result returns the revealed text and the links found by the link pass.
// Links is empty until the typewriter is Done.
func (t *Typewriter) Result() Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	links := make([]string, len(t.links))
	copy(links, t.links)
	return Result{Text: t.revealed.String(), Links: links}
}

// Run starts the typewriter and writes each revealed character to w, waiting
// delay between ticks. It returns once the link pass is done or ctx ends.
func (t *Typewriter) Run(ctx context.Context, w io.Writer, delay time.Duration) (Result, error) {
	if err := t.Start(); err != nil {
		return Result{}, err
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return t.Result(), ctx.Err()
		case <-timer.C:
		}

		r, ok := t.Step()
		if !ok {
			return t.Result(), nil
		}
		if _, err := io.WriteString(w, string(r)); err != nil {
			return t.Result(), fmt.Errorf("write character: %w", err)
		}
		timer.Reset(delay)
	}
}

// Links returns every URL in text, in order of appearance.
func Links(text string) []string {
	return URLPattern.FindAllString(text, -1)
}

// Linkify replaces every URL in text with format(url). Other text is kept as is.
func Linkify(text string, format LinkFormatter) string {
	return URLPattern.ReplaceAllStringFunc(text, format)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// LinkifyHTML escapes text for HTML and wraps each URL in an anchor opening in
// a new browsing context, the same way the console page script does.
func LinkifyHTML(text string) string {
	return Linkify(htmlEscaper.Replace(text), HTMLAnchor)
}

// HTMLAnchor renders url as an anchor whose target and label are both url.
func HTMLAnchor(url string) string {
	return `<a href="` + url + `" target="_blank">` + url + `</a>`
}

// TerminalHyperlink renders url as an OSC 8 hyperlink.
func TerminalHyperlink(url string) string {
	return "\x1b]8;;" + url + "\x1b\\" + url + "\x1b]8;;\x1b\\"
}

// PlainLink renders url unchanged.
func PlainLink(url string) string {
	return url
}
