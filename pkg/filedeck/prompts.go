package filedeck

import (
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	renamePage = "rename"
	pathPage   = "path"
	findPage   = "find"
)

// newPrompt returns a one-line input. Enter hands over whatever was typed, empty included.
func newPrompt(title, label, value string, onDone func(text string), onCancel func()) *tview.InputField {
	input := tview.NewInputField().
		SetLabel(label).
		SetText(value)
	sneatv.DefaultBorderWithoutPadding(input.Box)
	input.SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter)
	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			onDone(input.GetText())
		case tcell.KeyEscape:
			onCancel()
		}
	})
	return input
}

func (d *Deck) showRenamePrompt() {
	record, ok := d.model.Selected()
	if !ok {
		d.bottom.SetStatus("Select a file to rename")
		return
	}
	input := newPrompt("Rename", "New name: ", record.Name,
		func(text string) {
			d.closeModal(renamePage)
			d.rename(record.ID, text)
		},
		func() {
			d.closeModal(renamePage)
		},
	)
	d.showModal(renamePage, input, 60, 3)
}

func (d *Deck) showPathPrompt() {
	input := newPrompt("Path filter", "Path: ", d.model.FilterPath(),
		func(text string) {
			d.closeModal(pathPage)
			d.setFilterPath(text)
		},
		func() {
			d.closeModal(pathPage)
		},
	)
	d.showModal(pathPage, input, 60, 3)
}

func (d *Deck) showFindPrompt() {
	input := newPrompt("Find", "Name contains: ", d.query,
		func(text string) {
			d.closeModal(findPage)
			d.setQuery(text)
		},
		func() {
			d.closeModal(findPage)
		},
	)
	d.showModal(findPage, input, 60, 3)
}
