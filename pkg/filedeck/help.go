package filedeck

import (
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpPage = "help"

const helpText = `Enter/Space - Select or unselect file
F1 - Help
F2 - Rename selected file
F3 - Files breakdown
F4 - Share selected file by email
F5 - Download selected file
F6 - Share selected file
F8 - Delete selected file
F9 - Sort by...
Alt+M - Masks
Alt+P - Path filter
Alt+F - Find by name
Alt+T - Next type filter
Alt+S - Next sort order
Alt+X - Exit the app`

func (d *Deck) showHelp() {
	closeHelp := func() {
		d.closeModal(helpPage)
	}
	helpView := tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText)
	helpView.SetBackgroundColor(sneatv.CurrentTheme.ModalBackground)
	helpView.SetInputCapture(sneatv.CloseOn(closeHelp, tcell.KeyEscape, tcell.KeyF1))

	button := tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetInputCapture(sneatv.CloseOn(closeHelp, tcell.KeyEscape, tcell.KeyF1))

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, true).
		AddItem(button, 1, 0, false)
	helpFlex.SetBorder(true).
		SetTitle(" filedeck - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(sneatv.CurrentTheme.ModalBackground)

	d.showModal(helpPage, helpFlex, 48, 19)
}
