package pages

// TextSource serves the pages of an in-memory text. The same index returns
// the same pointer until the text is repaginated.
type TextSource struct {
	title  string
	text   string
	width  int
	height int
	pages  []*Page
}

// NewTextSource paginates text for a page of width x height cells.
func NewTextSource(title, text string, width, height int) *TextSource {
	s := &TextSource{title: title, text: text}
	s.Resize(width, height)
	return s
}

// Resize repaginates for a new page geometry and reports whether the
// geometry changed. Pages are rebuilt, so a reload replaces every slot.
func (s *TextSource) Resize(width, height int) bool {
	if width == s.width && height == s.height && s.pages != nil {
		return false
	}
	s.width, s.height = width, height
	paginated := Paginate(s.title, s.text, width, height)
	s.pages = make([]*Page, len(paginated))
	for i := range paginated {
		s.pages[i] = &paginated[i]
	}
	return true
}

// PageCount returns the number of pages.
func (s *TextSource) PageCount() int {
	return len(s.pages)
}

// PageContent returns page index, or nil when out of range.
func (s *TextSource) PageContent(index int) *Page {
	if index < 0 || index >= len(s.pages) {
		return nil
	}
	return s.pages[index]
}
