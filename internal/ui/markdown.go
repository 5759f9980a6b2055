package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bookswap/internal/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

const defaultMarkdownWidth = 72

// markdownRenderer renders book descriptions with glamour, caching the output
// per document and width. Failures fall back to wrapped plain text.
type markdownRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[string][]string
	failed    bool
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{
		style:     style,
		renderers: map[int]*glamour.TermRenderer{},
		cache:     map[string][]string{},
	}
}

func (r *markdownRenderer) render(key, source string, width int) []string {
	if width <= 0 {
		width = defaultMarkdownWidth
	}
	cacheKey := fmt.Sprintf("%s@%d", key, width)
	if lines, ok := r.cache[cacheKey]; ok {
		return lines
	}
	lines, err := r.renderGlamour(source, width)
	if err != nil {
		logging.Error(fmt.Errorf("render markdown for %s: %w", key, err))
		lines = strings.Split(ansi.Wordwrap(strings.TrimSpace(source), width, ""), "\n")
	}
	r.cache[cacheKey] = lines
	return lines
}

func (r *markdownRenderer) renderGlamour(source string, width int) ([]string, error) {
	if r.failed {
		return nil, fmt.Errorf("markdown style %q unavailable", r.style)
	}
	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStylePath(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			r.failed = true
			return nil, err
		}
		r.renderers[width] = tr
	}
	out, err := tr.Render(source)
	if err != nil {
		return nil, err
	}
	return trimBlankLines(strings.Split(out, "\n")), nil
}

// trimBlankLines drops the leading and trailing margin rows glamour emits.
func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return lines[start:end]
}
