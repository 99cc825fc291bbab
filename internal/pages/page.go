// Package pages provides the page data sources the pager reads from.
package pages

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// formFeed forces a page break.
const formFeed = "\f"

// Page is one screen of text.
type Page struct {
	// Number is the zero-based logical index of the page.
	Number int
	// Title is shown above the page body.
	Title string
	// Lines holds at most one page height of wrapped lines.
	Lines []string
}

// Body joins the page lines.
func (p *Page) Body() string {
	return strings.Join(p.Lines, "\n")
}

// Paginate word-wraps text to width and cuts it into pages of height lines.
// A form feed starts a new page. Text with no visible content yields no pages.
func Paginate(title, text string, width, height int) []Page {
	if width <= 0 || height <= 0 || strings.TrimSpace(strings.ReplaceAll(text, formFeed, "")) == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")

	var out []Page
	for _, section := range strings.Split(text, formFeed) {
		lines := wrapLines(section, width)
		for start := 0; start < len(lines); start += height {
			end := min(start+height, len(lines))
			chunk := lines[start:end]
			if isBlank(chunk) {
				continue
			}
			out = append(out, Page{Lines: append([]string(nil), chunk...)})
		}
	}
	for i := range out {
		out[i].Number = i
		out[i].Title = pageTitle(title, i, len(out))
	}
	return out
}

// wrapLines soft-wraps on word boundaries, then hard-wraps words that are
// still wider than width.
func wrapLines(section string, width int) []string {
	section = strings.Trim(section, "\n")
	if section == "" {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(section, width), width)
	return strings.Split(wrapped, "\n")
}

func isBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func pageTitle(title string, index, total int) string {
	if title == "" {
		return fmt.Sprintf("%d/%d", index+1, total)
	}
	return fmt.Sprintf("%s · %d/%d", title, index+1, total)
}
