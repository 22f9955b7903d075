package page_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/page"
)

var timeLine = regexp.MustCompile(`Time: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\n`)

func TestRender_SubstitutesTime(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 5, 3, 0, time.Local)

	doc, err := page.Render(now)
	require.NoError(t, err)

	assert.NotContains(t, doc, page.Placeholder)
	m := timeLine.FindStringSubmatch(doc)
	require.NotNil(t, m)
	assert.Equal(t, "2026-10-17 09:05:03", m[1])
}

func TestRender_StableApartFromTime(t *testing.T) {
	a := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b := a.Add(25 * time.Hour)

	docA, err := page.Render(a)
	require.NoError(t, err)
	docB, err := page.Render(b)
	require.NoError(t, err)

	assert.NotEqual(t, docA, docB)
	assert.Equal(t,
		strings.Replace(docA, page.FormatTime(a), page.Placeholder, 1),
		strings.Replace(docB, page.FormatTime(b), page.Placeholder, 1),
	)
}

func TestRender_StaticContent(t *testing.T) {
	doc, err := page.Render(time.Now())
	require.NoError(t, err)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<link rel="icon" href="https://www.adityadevarshi.online/favicon.ico" type="image/x-icon">`,
		"background-color: black; color: limegreen; font-family: monospace;",
		`<pre id="typing-text"></pre><span class="cursor"></span>`,
		"@keyframes blink { 50% { opacity: 0; } }",
		"Welcome to Aditya's Console",
		"GitHub: https://github.com/devarshiadi",
		"LinkedIn: https://www.linkedin.com/in/aditya-devarshi/",
		"Portfolio: https://www.adityadevarshi.online/",
		"Open to Work: Yes",
		"Interests: Python, Data Science, AI/ML",
		" https://medium.com/@devarshia5",
	} {
		assert.Contains(t, doc, want)
	}
}

func TestRender_ScriptContract(t *testing.T) {
	doc, err := page.Render(time.Now())
	require.NoError(t, err)

	assert.Contains(t, doc, "const delay = 50;")
	assert.Contains(t, doc, `/(https?:\/\/\S+)/g`)
	assert.Contains(t, doc, `'<a href="$1" target="_blank">$1</a>'`)
	assert.Contains(t, doc, "if (this.started) {")
}

func TestRender_EmbedsProfileText(t *testing.T) {
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	doc, err := page.Render(now)
	require.NoError(t, err)
	profile, err := page.ProfileText(now)
	require.NoError(t, err)

	assert.Contains(t, doc, "const text = `"+profile+"`;")
}

func TestTemplate_MissingPlaceholder(t *testing.T) {
	doc, err := page.NewTemplate("<html>no time here</html>").Render(time.Now())

	require.ErrorIs(t, err, domain.ErrPlaceholder)
	assert.Empty(t, doc)
}

func TestTemplate_DuplicatePlaceholder(t *testing.T) {
	tmpl := page.NewTemplate(page.Placeholder + " and " + page.Placeholder)

	doc, err := tmpl.Render(time.Now())

	require.ErrorIs(t, err, domain.ErrPlaceholder)
	assert.Empty(t, doc)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 59, 58, 999, time.UTC)
	assert.Equal(t, "2024-12-31 23:59:58", page.FormatTime(ts))
}
