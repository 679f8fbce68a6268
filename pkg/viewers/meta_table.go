package viewers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MetaTable struct {
	*tview.Table
}

func NewMetaTable() *MetaTable {
	return &MetaTable{
		Table: tview.NewTable(),
	}
}

// SetMeta renders each group as a title row followed by its indented records.
func (t *MetaTable) SetMeta(meta *Meta) {
	t.Clear()
	if meta == nil {
		return
	}
	row := 0
	for _, group := range meta.Groups {
		groupCell := tview.NewTableCell(group.Title).
			SetTextColor(tcell.ColorLightSkyBlue).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false)
		t.SetCell(row, 0, groupCell)
		row++
		for _, record := range group.Records {
			titleCell := tview.NewTableCell("  " + record.Title).
				SetTextColor(tcell.ColorGray)
			t.SetCell(row, 0, titleCell)
			valueCell := tview.NewTableCell(tview.Escape(record.Value)).
				SetExpansion(1)
			if record.ValueAlign == AlignRight {
				valueCell.SetAlign(tview.AlignRight)
			}
			t.SetCell(row, 1, valueCell)
			row++
		}
	}
}
