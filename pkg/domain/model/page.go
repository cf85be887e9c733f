package model

import (
	"sync"

	"github.com/m-mizutani/folio/pkg/domain/types"
)

// Page holds the two independently rendered regions of the portfolio page.
type Page struct {
	About    *Slot
	Projects *Slot

	mu    sync.RWMutex
	title string
}

func NewPage() *Page {
	return &Page{
		About:    NewSlot(types.TargetAboutContent),
		Projects: NewSlot(types.TargetProjectsList),
	}
}

// SetTitle records the title found in the about content metadata.
func (x *Page) SetTitle(title string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.title = title
}

// TitleOr returns the recorded title, or fallback if none was set.
func (x *Page) TitleOr(fallback string) string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.title == "" {
		return fallback
	}
	return x.title
}
