package filedeck

import (
	"slices"

	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/rivo/tview"
)

type sortSelector struct {
	*tview.DropDown
	keys    []filelist.SortKey
	syncing bool
}

func newSortSelector(onSort func(key filelist.SortKey)) *sortSelector {
	s := &sortSelector{
		DropDown: tview.NewDropDown().SetLabel("Sort: "),
		keys:     filelist.SortKeys(),
	}
	titles := make([]string, len(s.keys))
	for i, k := range s.keys {
		titles[i] = k.Title()
	}
	s.SetOptions(titles, nil)
	s.syncing = true
	s.SetCurrentOption(0)
	s.syncing = false
	s.SetSelectedFunc(func(_ string, index int) {
		if s.syncing || index < 0 || index >= len(s.keys) {
			return
		}
		onSort(s.keys[index])
	})
	return s
}

// Show moves the current option to key without sorting again.
func (s *sortSelector) Show(key filelist.SortKey) {
	i := slices.Index(s.keys, key)
	if current, _ := s.GetCurrentOption(); current == i {
		return
	}
	s.syncing = true
	s.SetCurrentOption(i)
	s.syncing = false
}
