// Package page renders the console document served at the site root.
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/static"
)

const (
	// Placeholder marks where the generation time goes.
	Placeholder = "{{CONSOLE_TIME}}"

	// TimeLayout formats the generation time as YYYY-MM-DD HH:MM:SS.
	TimeLayout = "2006-01-02 15:04:05"
)

// Template is a document with a single time placeholder.
type Template struct {
	src string
}

// NewTemplate wraps src. It is not validated until Render is called.
func NewTemplate(src string) Template {
	return Template{src: src}
}

// Console is the embedded console page.
var Console = NewTemplate(static.ConsoleHTML)

// Profile is the embedded profile block typed out by the console.
var Profile = NewTemplate(static.ProfileTXT)

// Render substitutes now into the template. A template without exactly one
// placeholder yields domain.ErrPlaceholder and no document.
func (t Template) Render(now time.Time) (string, error) {
	if n := strings.Count(t.src, Placeholder); n != 1 {
		return "", fmt.Errorf("%w: found %d", domain.ErrPlaceholder, n)
	}
	return strings.Replace(t.src, Placeholder, FormatTime(now), 1), nil
}

// Render renders the console page for now.
func Render(now time.Time) (string, error) {
	return Console.Render(now)
}

// ProfileText renders the plain profile block for now.
func ProfileText(now time.Time) (string, error) {
	return Profile.Render(now)
}

// FormatTime formats t the way the console prints it.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
