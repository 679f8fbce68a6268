// Package viewers renders a file record in a type-specific way.
// Records carry metadata only, so every viewer works from what the record has.
package viewers

import (
	"github.com/filetug/filedeck/pkg/files"
	"github.com/rivo/tview"
)

type Viewer interface {
	Show(record files.FileRecord)
	Main() tview.Primitive
	Meta() *MetaTable
}

type Options struct {
	// ChromaStyle colours the document viewer.
	ChromaStyle string
}

type Option func(o *Options)

func WithChromaStyle(style string) Option {
	return func(o *Options) {
		o.ChromaStyle = style
	}
}

// ForType returns a new viewer for t, nil for an unknown type.
func ForType(t files.FileType, options ...Option) Viewer {
	opts := Options{ChromaStyle: "dracula"}
	for _, o := range options {
		o(&opts)
	}
	switch t {
	case files.Image:
		return NewImageViewer()
	case files.Video, files.Audio:
		return NewMediaViewer()
	case files.Document:
		return NewDocumentViewer(opts.ChromaStyle)
	default:
		return nil
	}
}

type Meta struct {
	Groups []*MetaGroup
}

type MetaGroup struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Records []*MetaRecord `json:"records"`
}

type MetaRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Value      string `json:"value"`
	ValueAlign Align
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)
