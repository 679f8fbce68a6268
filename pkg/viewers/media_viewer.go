package viewers

import (
	"fmt"
	"strings"
	"time"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/rivo/tview"
)

// Nominal bitrates used to turn a size into a play time.
const (
	videoBitsPerSecond = 5_000_000
	audioBitsPerSecond = 256_000
)

const timelineWidth = 32

var _ Viewer = (*MediaViewer)(nil)

// MediaViewer shows a player strip for video and audio records.
type MediaViewer struct {
	player    *tview.TextView
	metaTable *MetaTable
}

func NewMediaViewer() *MediaViewer {
	player := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	return &MediaViewer{
		player:    player,
		metaTable: NewMetaTable(),
	}
}

func (v *MediaViewer) Show(record files.FileRecord) {
	v.player.SetText(PlayerText(record))
	d := Duration(record)
	v.metaTable.SetMeta(RecordMeta(record, &MetaGroup{
		ID:    "media",
		Title: "Media",
		Records: []*MetaRecord{
			{ID: "duration", Title: "Duration", Value: FormatDuration(d), ValueAlign: AlignRight},
		},
	}))
}

func (v *MediaViewer) Main() tview.Primitive {
	return v.player
}

func (v *MediaViewer) Meta() *MetaTable {
	return v.metaTable
}

// Duration estimates the play time of a video or audio record from its size.
func Duration(record files.FileRecord) time.Duration {
	var bps int64
	switch record.Type {
	case files.Video:
		bps = videoBitsPerSecond
	case files.Audio:
		bps = audioBitsPerSecond
	default:
		return 0
	}
	return time.Duration(record.Size*8*int64(time.Second/time.Millisecond)/bps) * time.Millisecond
}

// FormatDuration prints m:ss, or h:mm:ss from an hour up.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PlayerText renders a stopped player: title line, timeline and controls.
func PlayerText(record files.FileRecord) string {
	var sb strings.Builder
	sb.WriteString(record.Type.Emoji() + " [::b]" + tview.Escape(record.Name) + "[::-]\n\n")
	sb.WriteString("[yellow]●[-]" + strings.Repeat("─", timelineWidth-1))
	sb.WriteString(" 0:00 / " + FormatDuration(Duration(record)) + "\n\n")
	sb.WriteString("  ⏮   ▶   ⏭   🔊")
	return sb.String()
}
