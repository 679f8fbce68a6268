package filedeck

import (
	"fmt"
	"strings"

	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/filetug/filedeck/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	breakdownPage     = "breakdown"
	breakdownBarWidth = 30
)

var breakdownColors = []string{"#ff6384", "#36a2eb", "#ffce56", "#4bc0c0"}

// BreakdownText renders one bar per type, scaled to the largest count,
// followed by the count and the share of all records.
func BreakdownText(b filelist.Breakdown, barWidth int) string {
	bars := b.Bars(barWidth)
	var sb strings.Builder
	for i, tc := range b {
		filled := bars[i]
		color := breakdownColors[i%len(breakdownColors)]
		fmt.Fprintf(&sb, "%s %-9s [%s]%s[-]%s %3d %5.1f%%\n",
			tc.Type.Emoji(),
			viewers.TypeTitle(tc.Type),
			color,
			strings.Repeat("█", filled),
			strings.Repeat("░", barWidth-filled),
			tc.Count,
			b.Share(tc.Type)*100,
		)
	}
	fmt.Fprintf(&sb, "\nTotal: %d", b.Total())
	return sb.String()
}

func (d *Deck) showBreakdown() {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetText(BreakdownText(d.model.BreakdownCounts(), breakdownBarWidth))
	view.SetBorder(true).
		SetTitle(" Files Breakdown ").
		SetTitleAlign(tview.AlignCenter)
	view.SetBackgroundColor(sneatv.CurrentTheme.ModalBackground)
	view.SetInputCapture(sneatv.CloseOn(func() {
		d.closeModal(breakdownPage)
	}, tcell.KeyEscape, tcell.KeyF3))
	d.showModal(breakdownPage, view, breakdownBarWidth+28, len(d.model.BreakdownCounts())+4)
}
