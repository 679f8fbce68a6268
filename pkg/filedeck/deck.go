// Package filedeck is the terminal UI over a filelist.Model.
package filedeck

import (
	"context"
	"fmt"
	"strings"

	"github.com/filetug/filedeck/pkg/filedeck/ftui"
	"github.com/filetug/filedeck/pkg/filedeck/masks"
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/hostopen"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/filetug/filedeck/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

const mainPage = "main"

// Deck lays out the header, files, viewer and bottom bar, and routes hotkeys
// to the model. It must only be used from the tview event goroutine.
type Deck struct {
	*tview.Pages
	app   App
	model *filelist.Model
	o     deckOptions

	layout *tview.Flex
	header *header
	files  *filesPanel
	viewer *viewerPanel
	bottom *bottom

	mask  *masks.Mask
	types []files.FileType
	query string
}

type deckOptions struct {
	ctx         context.Context
	log         zerolog.Logger
	actions     *hostopen.Actions
	chromaStyle string
	mask        *masks.Mask
	types       []files.FileType
}

type DeckOption func(o *deckOptions)

func WithContext(ctx context.Context) DeckOption {
	return func(o *deckOptions) {
		o.ctx = ctx
	}
}

func WithLogger(log zerolog.Logger) DeckOption {
	return func(o *deckOptions) {
		o.log = log
	}
}

func WithActions(actions *hostopen.Actions) DeckOption {
	return func(o *deckOptions) {
		o.actions = actions
	}
}

func WithChromaStyle(style string) DeckOption {
	return func(o *deckOptions) {
		o.chromaStyle = style
	}
}

func WithMask(mask *masks.Mask) DeckOption {
	return func(o *deckOptions) {
		o.mask = mask
	}
}

// WithTypes shows only records of the given types.
func WithTypes(types ...files.FileType) DeckOption {
	return func(o *deckOptions) {
		o.types = types
	}
}

func NewDeck(app App, model *filelist.Model, options ...DeckOption) *Deck {
	d := &Deck{
		app:   app,
		model: model,
		o: deckOptions{
			ctx:         context.Background(),
			log:         zerolog.Nop(),
			chromaStyle: "dracula",
		},
	}
	for _, option := range options {
		option(&d.o)
	}
	if d.o.actions == nil {
		d.o.actions = hostopen.NewActions(hostopen.NewCommandOpener(hostopen.WithLogger(d.o.log)), hostopen.DefaultSettings())
	}
	d.mask = d.o.mask
	d.types = d.o.types

	d.header = newHeader(d.sortBy)
	d.files = newFilesPanel(d.toggle)
	d.viewer = newViewerPanel(viewers.WithChromaStyle(d.o.chromaStyle))
	d.bottom = newBottom(d.runAction, d.fkMenuItems(), d.altMenuItems())

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.header, 1, 0, false).
		AddItem(tview.NewFlex().
			AddItem(d.files, 0, 3, true).
			AddItem(d.viewer, 0, 2, false), 0, 1, true).
		AddItem(d.bottom, 2, 0, false)

	d.Pages = tview.NewPages().AddPage(mainPage, d.layout, true, true)
	d.SetInputCapture(d.inputCapture)

	d.header.sort.SetDoneFunc(func(tcell.Key) {
		d.focusFiles()
	})

	d.refresh()
	return d
}

func (d *Deck) fkMenuItems() []ftui.MenuItem {
	return []ftui.MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: d.showHelp},
		{Title: "F2 Rename", HotKeys: []string{"F2"}, Action: d.showRenamePrompt},
		{Title: "F3 Breakdown", HotKeys: []string{"F3"}, Action: d.showBreakdown},
		{Title: "F4 Email", HotKeys: []string{"F4"}, Action: d.shareByEmail},
		{Title: "F5 Download", HotKeys: []string{"F5"}, Action: d.download},
		{Title: "F6 Share", HotKeys: []string{"F6"}, Action: d.share},
		{Title: "F8 Delete", HotKeys: []string{"F8"}, Action: d.deleteSelected},
		{Title: "F9 Sort", HotKeys: []string{"F9"}, Action: d.focusSort},
	}
}

func (d *Deck) altMenuItems() []ftui.MenuItem {
	return []ftui.MenuItem{
		{Title: "Masks", HotKeys: []string{"M"}, Action: d.showMasks},
		{Title: "Path", HotKeys: []string{"P"}, Action: d.showPathPrompt},
		{Title: "Find", HotKeys: []string{"F"}, Action: d.showFindPrompt},
		{Title: "Type", HotKeys: []string{"T"}, Action: d.nextTypeFilter},
		{Title: "Sort next", HotKeys: []string{"S"}, Action: d.sortNext},
		{Title: "Exit", HotKeys: []string{"X"}, Action: d.exit},
	}
}

// isModalOpen reports whether a page is shown over the main one.
func (d *Deck) isModalOpen() bool {
	name, _ := d.GetFrontPage()
	return name != mainPage
}

// runAction runs a menu or hotkey action unless a modal is open.
func (d *Deck) runAction(action func()) bool {
	if action == nil || d.isModalOpen() {
		return false
	}
	action()
	return true
}

func (d *Deck) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if d.isModalOpen() {
		return event
	}
	var action func()
	switch event.Key() {
	case tcell.KeyF1:
		action = d.showHelp
	case tcell.KeyF2:
		action = d.showRenamePrompt
	case tcell.KeyF3:
		action = d.showBreakdown
	case tcell.KeyF4:
		action = d.shareByEmail
	case tcell.KeyF5:
		action = d.download
	case tcell.KeyF6:
		action = d.share
	case tcell.KeyF8:
		action = d.deleteSelected
	case tcell.KeyF9:
		action = d.focusSort
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt == 0 {
			return event
		}
		switch event.Rune() {
		case 'm', 'M':
			action = d.showMasks
		case 'p', 'P':
			action = d.showPathPrompt
		case 'f', 'F':
			action = d.showFindPrompt
		case 't', 'T':
			action = d.nextTypeFilter
		case 's', 'S':
			action = d.sortNext
		case 'x', 'X':
			action = d.exit
		}
	}
	if !d.runAction(action) {
		return event
	}
	return nil
}

// MouseHandler confines mouse events to the front page while a modal is open.
func (d *Deck) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	pagesHandler := d.Pages.MouseHandler()
	return func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		name, item := d.GetFrontPage()
		if name == mainPage || item == nil {
			return pagesHandler(action, event, setFocus)
		}
		_, capture = item.MouseHandler()(action, event, setFocus)
		return true, capture
	}
}

// filter is what narrows the model's visible records in the files panel.
func (d *Deck) filter() ftui.Filter {
	filter := ftui.Filter{
		Types: d.types,
		Query: d.query,
	}
	if d.mask != nil {
		filter.MaskFilter = d.mask.Accepts
	}
	return filter
}

func (d *Deck) filesTitle() string {
	var parts []string
	if d.mask != nil {
		parts = append(parts, tview.Escape(d.mask.Name))
	}
	for _, t := range d.types {
		parts = append(parts, viewers.TypeTitle(t))
	}
	if d.query != "" {
		parts = append(parts, fmt.Sprintf("%q", tview.Escape(d.query)))
	}
	if len(parts) == 0 {
		return "Files"
	}
	return "Files: " + strings.Join(parts, ", ")
}

// refresh renders everything from the model. Nothing shown is kept anywhere else.
func (d *Deck) refresh() {
	visible := d.filter().Apply(d.model.Visible())
	d.files.SetRows(NewFileRows(visible, d.model.SelectedID(), d.model.SortKey()), d.model.Len())
	d.files.SetTitle(d.filesTitle())

	record, selected := d.model.Selected()
	if selected {
		d.header.SetPath(record.Path)
	} else {
		d.header.SetPath(d.model.FilterPath())
	}
	d.header.sort.Show(d.model.SortKey())
	d.viewer.Show(record, selected)
}

// Focus delegates to the files table.
func (d *Deck) Focus(delegate func(p tview.Primitive)) {
	if name, item := d.GetFrontPage(); name != mainPage && item != nil {
		delegate(item)
		return
	}
	delegate(d.files.table)
}

func (d *Deck) focusFiles() {
	d.app.SetFocus(d.files.table)
}

func (d *Deck) focusSort() {
	d.app.SetFocus(d.header.sort)
}

func (d *Deck) exit() {
	d.app.Stop()
}

// showModal puts content over the main page and focuses it.
func (d *Deck) showModal(name string, content tview.Primitive, width, height int) {
	d.AddPage(name, sneatv.NewModal(content, width, height), true, true)
	d.app.SetFocus(content)
}

func (d *Deck) closeModal(name string) {
	d.RemovePage(name)
	d.focusFiles()
}
