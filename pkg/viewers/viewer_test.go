package viewers

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/rivo/tview"
)

var report = files.FileRecord{
	ID:           "7",
	Name:         "Quarterly [draft]",
	Type:         files.Document,
	Path:         "/file-server/documents/report.pdf",
	Size:         1536,
	ModifiedDate: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
}

func TestForType(t *testing.T) {
	_, isImage := ForType(files.Image).(*ImageViewer)
	assert.True(t, isImage)
	_, isMedia := ForType(files.Video).(*MediaViewer)
	assert.True(t, isMedia)
	_, isMedia = ForType(files.Audio).(*MediaViewer)
	assert.True(t, isMedia)
	doc, isDoc := ForType(files.Document, WithChromaStyle("monokai")).(*DocumentViewer)
	assert.True(t, isDoc)
	assert.Equal(t, "monokai", doc.style)
	assert.Zero(t, ForType(files.FileType("zip")))
}

func TestRecordMeta(t *testing.T) {
	meta := RecordMeta(report, &MetaGroup{ID: "extra"})
	assert.Equal(t, 2, len(meta.Groups))
	group := meta.Groups[0]
	assert.Equal(t, "📄 Document", group.Title)
	values := map[string]string{}
	for _, r := range group.Records {
		values[r.ID] = r.Value
	}
	assert.Equal(t, map[string]string{
		"name":     "Quarterly [draft]",
		"path":     "/file-server/documents/report.pdf",
		"type":     "Document",
		"size":     "1.5 KB",
		"bytes":    "1,536 bytes",
		"modified": "2024-03-05 14:30",
	}, values)
	assert.Equal(t, "extra", meta.Groups[1].ID)
}

func TestRecordMeta_NoDate(t *testing.T) {
	meta := RecordMeta(files.FileRecord{ID: "1", Type: files.Audio})
	last := meta.Groups[0].Records[len(meta.Groups[0].Records)-1]
	assert.Equal(t, "modified", last.ID)
	assert.Equal(t, "", last.Value)
}

func TestTypeTitle(t *testing.T) {
	assert.Equal(t, "Video", TypeTitle(files.Video))
	assert.Equal(t, "Image", TypeTitle(files.Image))
}

func TestPlaceholder(t *testing.T) {
	a := Placeholder("1")
	assert.Equal(t, placeholderWidth, a.Bounds().Dx())
	assert.Equal(t, placeholderHeight, a.Bounds().Dy())
	assert.Equal(t, a.At(5, 5), Placeholder("1").At(5, 5))
	assert.NotEqual(t, a.At(0, 0), Placeholder("2").At(0, 0))
}

func TestImageViewer_Show(t *testing.T) {
	v := NewImageViewer()
	v.Show(files.FileRecord{ID: "4", Name: "Sunset", Type: files.Image, Size: 2048})
	_, isImage := v.Main().(*tview.Image)
	assert.True(t, isImage)
	// file group: title + 6 records, preview group: title + 2 records
	assert.Equal(t, 10, v.Meta().GetRowCount())
	assert.Equal(t, "Preview", v.Meta().GetCell(7, 0).Text)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name   string
		record files.FileRecord
		want   time.Duration
	}{
		{name: "video_second", record: files.FileRecord{Type: files.Video, Size: 625_000}, want: time.Second},
		{name: "audio_second", record: files.FileRecord{Type: files.Audio, Size: 32_000}, want: time.Second},
		{name: "audio_minute", record: files.FileRecord{Type: files.Audio, Size: 1_920_000}, want: time.Minute},
		{name: "document", record: files.FileRecord{Type: files.Document, Size: 1_000_000}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.record))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65*time.Second))
	assert.Equal(t, "1:01:01", FormatDuration(time.Hour+time.Minute+time.Second))
}

func TestMediaViewer_Show(t *testing.T) {
	v := NewMediaViewer()
	v.Show(files.FileRecord{ID: "2", Name: "Theme [live]", Type: files.Audio, Size: 1_920_000})
	text := v.player.GetText(false)
	assert.Contains(t, text, "Theme [live[]")
	assert.Contains(t, text, "0:00 / 1:00")
	assert.Equal(t, tview.Primitive(v.player), v.Main())
	assert.Equal(t, "Media", v.Meta().GetCell(7, 0).Text)
}

func TestDocumentViewer_Show(t *testing.T) {
	v := NewDocumentViewer("dracula")
	v.Show(report)
	text := v.GetText(true)
	assert.Contains(t, text, "name")
	assert.Contains(t, text, "Quarterly")
	assert.Contains(t, text, "/file-server/documents/report.pdf")
	assert.Equal(t, 7, v.Meta().GetRowCount())
}

func TestDocumentViewer_MarshalError(t *testing.T) {
	old := yamlMarshal
	defer func() {
		yamlMarshal = old
	}()
	yamlMarshal = func(any) ([]byte, error) {
		return nil, errors.New("boom")
	}
	v := NewDocumentViewer("dracula")
	v.Show(report)
	assert.Equal(t, "Failed to format document: boom", v.GetText(false))
}
