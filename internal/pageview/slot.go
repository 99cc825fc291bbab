package pageview

// noPage marks a slot that holds no content.
const noPage = -1

// slot is one of the three physical page containers.
// It holds content for at most one page at a time.
type slot[C any] struct {
	id          SlotID
	visible     bool
	content     *C
	page        int
	evictOnHide bool
}

func newSlot[C any](id SlotID) slot[C] {
	return slot[C]{id: id, page: noPage}
}

func (s *slot[C]) hasContent() bool {
	return s.content != nil
}

// holds reports whether the slot already holds content fetched for page.
func (s *slot[C]) holds(page int) bool {
	return s.content != nil && s.page == page
}

// setVisible toggles visibility, releasing content on hide when eviction is on.
func (s *slot[C]) setVisible(visible bool) {
	s.visible = visible
	if !visible && s.evictOnHide {
		s.release()
	}
}

// setContent stores content for page. The reference is only swapped when it
// differs by identity from the one already held; it reports whether it did.
func (s *slot[C]) setContent(content *C, page int) bool {
	s.page = page
	if s.content == content {
		return false
	}
	// Evict first so two contents never coexist in one slot.
	s.release()
	s.content = content
	s.page = page
	return true
}

func (s *slot[C]) release() {
	s.content = nil
	s.page = noPage
}
