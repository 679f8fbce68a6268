package sneatv

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewModal centres content in a grid of the given size over an empty background.
func NewModal(content tview.Primitive, width, height int) *tview.Grid {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(content, 1, 1, 1, 1, 0, 0, true)
}

// CloseOn calls closeFunc when one of keys is pressed, passing other events through.
func CloseOn(closeFunc func(), keys ...tcell.Key) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		for _, k := range keys {
			if event.Key() == k {
				closeFunc()
				return nil
			}
		}
		return event
	}
}
