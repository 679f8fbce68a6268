package filedeck

import (
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sizes"
	"github.com/filetug/filedeck/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*FileRows)(nil)

const (
	nameColIndex = iota
	typeColIndex
	sizeColIndex
	modifiedColIndex
)

const selectedMark = "✓"

// FileRows is the files table content: a header row followed by the visible records.
type FileRows struct {
	tview.TableContentReadOnly
	Records    []files.FileRecord
	SelectedID string
	SortKey    filelist.SortKey
}

func NewFileRows(records []files.FileRecord, selectedID string, sortKey filelist.SortKey) *FileRows {
	return &FileRows{
		Records:    records,
		SelectedID: selectedID,
		SortKey:    sortKey,
	}
}

func (r *FileRows) GetRowCount() int {
	return len(r.Records) + 1
}

func (r *FileRows) GetColumnCount() int {
	return 4
}

// Record returns the record shown at table row.
func (r *FileRows) Record(row int) (files.FileRecord, bool) {
	i := row - 1
	if i < 0 || i >= len(r.Records) {
		return files.FileRecord{}, false
	}
	return r.Records[i], true
}

// RowOf returns the table row of the record with id, 0 when it is not visible.
func (r *FileRows) RowOf(id string) int {
	for i, rec := range r.Records {
		if rec.ID == id {
			return i + 1
		}
	}
	return 0
}

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.headerCell(col)
	}
	record, ok := r.Record(row)
	if !ok {
		return nil
	}
	isSelected := record.ID == r.SelectedID
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		mark := " "
		if isSelected {
			mark = selectedMark
		}
		cell = tview.NewTableCell(mark + " " + tview.Escape(record.Name)).SetExpansion(1)
	case typeColIndex:
		cell = tview.NewTableCell(record.Type.Emoji() + " " + viewers.TypeTitle(record.Type))
	case sizeColIndex:
		cell = tview.NewTableCell(sizes.ShortText(record.Size)).SetAlign(tview.AlignRight)
	case modifiedColIndex:
		cell = tview.NewTableCell(record.ModifiedDate.Format(viewers.DateFormat))
	default:
		return nil
	}
	if isSelected {
		cell.SetTextColor(tcell.ColorLightGreen)
	}
	return cell
}

func (r *FileRows) headerCell(col int) *tview.TableCell {
	var (
		title string
		key   filelist.SortKey
	)
	switch col {
	case nameColIndex:
		title, key = "  Name", filelist.SortName
	case typeColIndex:
		title, key = "Type", filelist.SortType
	case sizeColIndex:
		title, key = "Size", filelist.SortSize
	case modifiedColIndex:
		title, key = "Modified", filelist.SortDate
	default:
		return nil
	}
	if key == r.SortKey {
		if key == filelist.SortDate {
			title += " ▼"
		} else {
			title += " ▲"
		}
	}
	cell := tview.NewTableCell(title).
		SetTextColor(tcell.ColorLightSkyBlue).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
	if col == sizeColIndex {
		cell.SetAlign(tview.AlignRight)
	}
	if col == nameColIndex {
		cell.SetExpansion(1)
	}
	return cell
}
