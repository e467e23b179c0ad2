package client

import (
	"postforge/internal/domain/entity"
	postUC "postforge/internal/usecase/post"
)

// Selection tracks which news items the user has picked for a post. Toggles
// are keyed by item ID so the set survives list refreshes.
type Selection struct {
	items    []entity.NewsItem
	selected map[string]bool
}

// NewSelection starts an empty selection over the given items.
func NewSelection(items []entity.NewsItem) *Selection {
	return &Selection{items: items, selected: make(map[string]bool)}
}

// SetItems replaces the item list, keeping the selected state of any item
// that is still present.
func (s *Selection) SetItems(items []entity.NewsItem) {
	present := make(map[string]bool, len(items))
	for _, it := range items {
		present[it.ID] = true
	}
	for id := range s.selected {
		if !present[id] {
			delete(s.selected, id)
		}
	}
	s.items = items
}

// Toggle flips the selected state of the item with the given ID and reports
// the new state. Unknown IDs are ignored.
func (s *Selection) Toggle(id string) bool {
	for _, it := range s.items {
		if it.ID == id {
			s.selected[id] = !s.selected[id]
			return s.selected[id]
		}
	}
	return false
}

// Selected reports whether the item with the given ID is selected.
func (s *Selection) Selected(id string) bool {
	return s.selected[id]
}

// Items returns the current item list.
func (s *Selection) Items() []entity.NewsItem {
	return s.items
}

// Refs returns the selected items as prompt references, in list order.
func (s *Selection) Refs() []postUC.NewsRef {
	var refs []postUC.NewsRef
	for _, it := range s.items {
		if s.selected[it.ID] {
			refs = append(refs, postUC.NewsRef{Title: it.Title, Summary: it.Summary})
		}
	}
	return refs
}
