package masks

import (
	"strconv"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Panel lists the built-in masks with the number of records each one lets through.
type Panel struct {
	*sneatv.Boxed
	table    *tview.Table
	masks    []Mask
	selected func(mask *Mask)
	closed   func()
}

type PanelOption func(p *Panel)

func OnSelected(f func(mask *Mask)) PanelOption {
	return func(p *Panel) {
		p.selected = f
	}
}

func OnClosed(f func()) PanelOption {
	return func(p *Panel) {
		p.closed = f
	}
}

func NewPanel(options ...PanelOption) *Panel {
	p := &Panel{
		masks: BuiltIn(),
	}
	for _, option := range options {
		option(p)
	}

	p.table = tview.NewTable()
	p.table.SetSelectable(true, false)
	p.table.SetFixed(1, 0)
	p.table.SetSelectedStyle(sneatv.CurrentTheme.FocusedSelectedTextStyle)

	p.Boxed = sneatv.NewBoxed(p.table,
		sneatv.WithLeftBorder(0),
		sneatv.WithRightBorder(0),
	)
	p.SetTitle("Masks")

	p.table.SetCell(0, 0, tview.NewTableCell("Mask").SetExpansion(1).SetSelectable(false))
	p.table.SetCell(0, 1, tview.NewTableCell("Files").SetAlign(tview.AlignRight).SetSelectable(false))
	p.table.SetCell(1, 0, tview.NewTableCell("All").SetExpansion(1))
	p.table.SetCell(1, 1, tview.NewTableCell("").SetAlign(tview.AlignRight))
	for i, m := range p.masks {
		p.table.SetCell(i+2, 0, tview.NewTableCell(m.Name).SetExpansion(1))
		countCell := tview.NewTableCell("...")
		countCell.SetAlign(tview.AlignRight)
		countCell.SetTextColor(tcell.ColorGray)
		p.table.SetCell(i+2, 1, countCell)
	}
	p.table.Select(1, 0)

	p.table.SetSelectedFunc(func(row, _ int) {
		if p.selected == nil {
			return
		}
		p.selected(p.MaskAt(row))
	})
	p.table.SetInputCapture(sneatv.CloseOn(func() {
		if p.closed != nil {
			p.closed()
		}
	}, tcell.KeyEscape))
	return p
}

func (p *Panel) Focus(delegate func(p tview.Primitive)) {
	delegate(p.table)
}

// MaskAt returns the mask shown at table row, nil for "All".
func (p *Panel) MaskAt(row int) *Mask {
	i := row - 2
	if i < 0 || i >= len(p.masks) {
		return nil
	}
	return &p.masks[i]
}

// SetRecords updates the per-mask counts.
func (p *Panel) SetRecords(records []files.FileRecord) {
	p.table.GetCell(1, 1).SetText(strconv.Itoa(len(records)))
	for i := range p.masks {
		count := 0
		for _, r := range records {
			if p.masks[i].Accepts(r) {
				count++
			}
		}
		p.table.GetCell(i+2, 1).SetText(strconv.Itoa(count))
	}
}
