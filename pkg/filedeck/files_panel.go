package filedeck

import (
	"fmt"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type filesPanel struct {
	*sneatv.Boxed
	table  *tview.Table
	footer *tview.TextView
	rows   *FileRows
}

func newFilesPanel(onToggle func(record files.FileRecord)) *filesPanel {
	f := &filesPanel{
		table:  tview.NewTable(),
		footer: tview.NewTextView(),
		rows:   NewFileRows(nil, "", ""),
	}
	f.table.SetSelectable(true, false)
	f.table.SetFixed(1, 0)
	f.table.SetSelectedStyle(sneatv.CurrentTheme.BlurredSelectedTextStyle)
	f.table.SetFocusFunc(func() {
		f.table.SetSelectedStyle(sneatv.CurrentTheme.FocusedSelectedTextStyle)
	})
	f.table.SetBlurFunc(func() {
		f.table.SetSelectedStyle(sneatv.CurrentTheme.BlurredSelectedTextStyle)
	})
	f.table.SetContent(f.rows)

	f.Boxed = sneatv.NewBoxed(f.table,
		sneatv.WithLeftBorder(0),
		sneatv.WithRightBorder(0),
		sneatv.WithFooter(f.footer),
	)
	f.SetTitle("Files")

	toggleCurrent := func() {
		if record, ok := f.CurrentRecord(); ok {
			onToggle(record)
		}
	}
	f.table.SetSelectedFunc(func(_, _ int) {
		toggleCurrent()
	})
	f.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == ' ' {
			toggleCurrent()
			return nil
		}
		return event
	})
	return f
}

// SetRows swaps the table content keeping the cursor on the same record when it is still visible.
func (f *filesPanel) SetRows(rows *FileRows, total int) {
	current, hadCurrent := f.CurrentRecord()
	f.rows = rows
	f.table.SetContent(rows)

	row := 0
	if hadCurrent {
		row = rows.RowOf(current.ID)
	}
	if row == 0 {
		row, _ = f.table.GetSelection()
	}
	if row >= rows.GetRowCount() {
		row = rows.GetRowCount() - 1
	}
	if row < 1 && rows.GetRowCount() > 1 {
		row = 1
	}
	f.table.Select(row, 0)

	if len(rows.Records) == total {
		f.footer.SetText(fmt.Sprintf("%d files", total))
	} else {
		f.footer.SetText(fmt.Sprintf("%d of %d files", len(rows.Records), total))
	}
}

// CurrentRecord returns the record under the cursor.
func (f *filesPanel) CurrentRecord() (files.FileRecord, bool) {
	row, _ := f.table.GetSelection()
	return f.rows.Record(row)
}
