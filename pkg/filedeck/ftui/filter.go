package ftui

import (
	"slices"
	"strings"

	"github.com/filetug/filedeck/pkg/files"
)

type FilterFunc func(files.FileRecord) bool

// Filter narrows the rows the files panel shows on top of the model's path filter.
type Filter struct {
	Types      []files.FileType
	Query      string
	MaskFilter FilterFunc
}

func (f Filter) IsEmpty() bool {
	return len(f.Types) == 0 && f.Query == "" && f.MaskFilter == nil
}

func (f Filter) IsVisible(record files.FileRecord) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, record.Type) {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(record.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.MaskFilter != nil && !f.MaskFilter(record) {
		return false
	}
	return true
}

// Apply returns the visible records keeping their order.
func (f Filter) Apply(records []files.FileRecord) []files.FileRecord {
	if f.IsEmpty() {
		return records
	}
	visible := make([]files.FileRecord, 0, len(records))
	for _, r := range records {
		if f.IsVisible(r) {
			visible = append(visible, r)
		}
	}
	return visible
}
