package filedeck

import (
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/filetug/filedeck/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const viewerHint = "Select a file with Enter or Space to view it."

type viewerPanel struct {
	*sneatv.Boxed
	flex    *tview.Flex
	hint    *tview.TextView
	options []viewers.Option
	viewers map[files.FileType]viewers.Viewer
	current viewers.Viewer
}

func newViewerPanel(options ...viewers.Option) *viewerPanel {
	p := &viewerPanel{
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		hint:    tview.NewTextView().SetTextColor(tcell.ColorGray).SetText(viewerHint),
		options: options,
		viewers: make(map[files.FileType]viewers.Viewer, 4),
	}
	p.Boxed = sneatv.NewBoxed(p.flex,
		sneatv.WithLeftBorder(0),
		sneatv.WithRightBorder(0),
	)
	p.showHint()
	return p
}

func (p *viewerPanel) showHint() {
	p.current = nil
	p.flex.Clear()
	p.flex.AddItem(p.hint, 0, 1, false)
	p.SetTitle("Viewer")
}

// Show renders record with the viewer for its type, or the hint when ok is false.
func (p *viewerPanel) Show(record files.FileRecord, ok bool) {
	if !ok {
		p.showHint()
		return
	}
	v, cached := p.viewers[record.Type]
	if !cached {
		v = viewers.ForType(record.Type, p.options...)
		if v == nil {
			p.showHint()
			return
		}
		p.viewers[record.Type] = v
	}
	v.Show(record)
	p.SetTitle(viewers.TypeTitle(record.Type) + ": " + tview.Escape(record.Name))
	if p.current == v {
		return
	}
	p.current = v
	p.flex.Clear()
	p.flex.AddItem(v.Main(), 0, 3, false)
	p.flex.AddItem(v.Meta(), 0, 2, false)
}
