package filedeck

import (
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/rivo/tview"
)

// header shows the title, the current path and the sort selector.
type header struct {
	*tview.Flex
	path *tview.TextView
	sort *sortSelector
}

func newHeader(onSort func(key filelist.SortKey)) *header {
	h := &header{
		path: tview.NewTextView().SetDynamicColors(true),
		sort: newSortSelector(onSort),
	}
	h.Flex = tview.NewFlex().
		AddItem(h.path, 0, 1, false).
		AddItem(h.sort, 20, 0, false)
	return h
}

// SetPath shows the selected record path, or the filter path when nothing is selected.
func (h *header) SetPath(path string) {
	h.path.SetText("[::b]My Files[::-]  " + tview.Escape(path))
}
