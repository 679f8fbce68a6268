package viewers

import (
	"github.com/filetug/filedeck/pkg/chroma2tcell"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"
)

var _ Viewer = (*DocumentViewer)(nil)

var yamlMarshal = yaml.Marshal

// DocumentViewer prints the record as syntax-coloured YAML.
type DocumentViewer struct {
	*tview.TextView
	style     string
	metaTable *MetaTable
}

func NewDocumentViewer(style string) *DocumentViewer {
	return &DocumentViewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
		style:     style,
		metaTable: NewMetaTable(),
	}
}

func (v *DocumentViewer) Show(record files.FileRecord) {
	v.metaTable.SetMeta(RecordMeta(record))
	data, err := yamlMarshal(record)
	if err != nil {
		v.showError("Failed to format document: " + err.Error())
		return
	}
	colorized, err := chroma2tcell.ColorizeAs(string(data), v.style, "yaml")
	if err != nil {
		v.SetDynamicColors(false)
		v.SetTextColor(tcell.ColorWhite)
		v.SetText(string(data))
		return
	}
	v.SetDynamicColors(true)
	v.SetTextColor(tcell.ColorWhite)
	v.SetText(colorized)
	v.ScrollToBeginning()
}

func (v *DocumentViewer) Main() tview.Primitive {
	return v.TextView
}

func (v *DocumentViewer) Meta() *MetaTable {
	return v.metaTable
}

func (v *DocumentViewer) showError(text string) {
	v.SetDynamicColors(false)
	v.SetText(text)
	v.SetTextColor(tcell.ColorRed)
}
