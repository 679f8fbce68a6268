// Package filelist holds the state of the file list: the collection of records,
// the selected record, the active sort key and the path filter.
//
// A Model is owned by a single goroutine (the UI event loop) and is not safe
// for concurrent use.
package filelist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/rs/zerolog"
)

const DefaultFilterPath = "/file-server/"

var ErrNotFound = errors.New("file record not found")

type Model struct {
	records    []files.FileRecord
	selectedID string
	sortKey    SortKey
	filterPath string
	log        zerolog.Logger
}

type Option func(m *Model)

func WithFilterPath(prefix string) Option {
	return func(m *Model) {
		m.filterPath = prefix
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

func New(options ...Option) *Model {
	m := &Model{
		records:    []files.FileRecord{},
		filterPath: DefaultFilterPath,
		log:        zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func notFound(id string) error {
	return fmt.Errorf("%w: id=%s", ErrNotFound, id)
}

// Load replaces the collection and clears the selection.
// The sort key is kept but not re-applied.
func (m *Model) Load(records []files.FileRecord) {
	m.records = slices.Clone(records)
	if m.records == nil {
		m.records = []files.FileRecord{}
	}
	m.selectedID = ""
	m.log.Debug().Int("count", len(m.records)).Msg("records loaded")
}

func (m *Model) indexOf(id string) int {
	return slices.IndexFunc(m.records, func(r files.FileRecord) bool {
		return r.ID == id
	})
}

// SelectToggle selects the record with the given id, or clears the selection
// if that record is already selected.
func (m *Model) SelectToggle(id string) error {
	if m.indexOf(id) < 0 {
		return notFound(id)
	}
	if m.selectedID == id {
		m.selectedID = ""
		m.log.Debug().Str("id", id).Msg("selection cleared")
		return nil
	}
	m.selectedID = id
	m.log.Debug().Str("id", id).Msg("record selected")
	return nil
}

func (m *Model) ClearSelection() {
	m.selectedID = ""
}

func (m *Model) Delete(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	records := make([]files.FileRecord, 0, len(m.records)-1)
	records = append(records, m.records[:i]...)
	records = append(records, m.records[i+1:]...)
	m.records = records
	if m.selectedID == id {
		m.selectedID = ""
	}
	m.log.Info().Str("id", id).Msg("record deleted")
	return nil
}

// Rename sets the name of a record. The name is applied as is, empty included.
// Renaming the selected record clears the selection.
func (m *Model) Rename(id, newName string) error {
	i := m.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	records := slices.Clone(m.records)
	records[i].Name = newName
	m.records = records
	if m.selectedID == id {
		m.selectedID = ""
	}
	m.log.Info().Str("id", id).Str("name", newName).Msg("record renamed")
	return nil
}

// SortBy re-orders the collection by key. SortNone keeps the current order.
// The sort is stable, so applying the same key again changes nothing.
func (m *Model) SortBy(key SortKey) {
	m.sortKey = key
	compare := key.compareFunc()
	if compare == nil {
		return
	}
	records := slices.Clone(m.records)
	slices.SortStableFunc(records, compare)
	m.records = records
	m.log.Debug().Str("key", string(key)).Msg("records sorted")
}

// FilterByPathPrefix returns the records whose path starts with prefix,
// in collection order. It does not change the model.
func (m *Model) FilterByPathPrefix(prefix string) []files.FileRecord {
	visible := make([]files.FileRecord, 0, len(m.records))
	for _, r := range m.records {
		if strings.HasPrefix(r.Path, prefix) {
			visible = append(visible, r)
		}
	}
	return visible
}

func (m *Model) SetFilterPath(prefix string) {
	m.filterPath = prefix
}

func (m *Model) FilterPath() string {
	return m.filterPath
}

// Visible returns the records under the active filter path.
func (m *Model) Visible() []files.FileRecord {
	return m.FilterByPathPrefix(m.filterPath)
}

// BreakdownCounts counts the records of the whole collection per type.
func (m *Model) BreakdownCounts() Breakdown {
	return countByType(m.records)
}

func (m *Model) Records() []files.FileRecord {
	return slices.Clone(m.records)
}

func (m *Model) Len() int {
	return len(m.records)
}

func (m *Model) Get(id string) (files.FileRecord, error) {
	i := m.indexOf(id)
	if i < 0 {
		return files.FileRecord{}, notFound(id)
	}
	return m.records[i], nil
}

func (m *Model) Selected() (files.FileRecord, bool) {
	if m.selectedID == "" {
		return files.FileRecord{}, false
	}
	i := m.indexOf(m.selectedID)
	if i < 0 {
		return files.FileRecord{}, false
	}
	return m.records[i], true
}

func (m *Model) SelectedID() string {
	return m.selectedID
}

func (m *Model) SortKey() SortKey {
	return m.sortKey
}
