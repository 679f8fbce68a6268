package viewers

import (
	"hash/fnv"
	"image"
	"image/color"
	"strconv"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/rivo/tview"
)

const (
	placeholderWidth  = 64
	placeholderHeight = 40
)

var _ Viewer = (*ImageViewer)(nil)

type ImageViewer struct {
	image     *tview.Image
	metaTable *MetaTable
}

func NewImageViewer() *ImageViewer {
	v := &ImageViewer{
		image:     tview.NewImage(),
		metaTable: NewMetaTable(),
	}
	v.image.SetColors(tview.TrueColor)
	return v
}

func (v *ImageViewer) Show(record files.FileRecord) {
	img := Placeholder(record.ID)
	v.image.SetImage(img)
	bounds := img.Bounds()
	v.metaTable.SetMeta(RecordMeta(record, &MetaGroup{
		ID:    "preview",
		Title: "Preview",
		Records: []*MetaRecord{
			{ID: "width", Title: "Width", Value: strconv.Itoa(bounds.Dx()), ValueAlign: AlignRight},
			{ID: "height", Title: "Height", Value: strconv.Itoa(bounds.Dy()), ValueAlign: AlignRight},
		},
	}))
}

func (v *ImageViewer) Main() tview.Primitive {
	return v.image
}

func (v *ImageViewer) Meta() *MetaTable {
	return v.metaTable
}

// Placeholder draws a diagonal gradient whose two colours are derived from id,
// so the same record always gets the same picture.
func Placeholder(id string) image.Image {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum32()
	from := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xff}
	to := color.RGBA{R: 0xff - from.G, G: 0xff - from.B, B: 0xff - from.R, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	span := placeholderWidth + placeholderHeight - 2
	for y := 0; y < placeholderHeight; y++ {
		for x := 0; x < placeholderWidth; x++ {
			pos := x + y
			img.SetRGBA(x, y, color.RGBA{
				R: mix(from.R, to.R, pos, span),
				G: mix(from.G, to.G, pos, span),
				B: mix(from.B, to.B, pos, span),
				A: 0xff,
			})
		}
	}
	return img
}

func mix(a, b uint8, pos, span int) uint8 {
	return uint8((int(a)*(span-pos) + int(b)*pos) / span)
}
