package filedeck

import (
	"strings"
	"testing"

	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/stretchr/testify/assert"
)

func TestBreakdownText(t *testing.T) {
	model := filelist.New()
	model.Load([]files.FileRecord{
		{ID: "1", Type: files.Video},
		{ID: "2", Type: files.Audio},
		{ID: "3", Type: files.Video},
	})
	text := BreakdownText(model.BreakdownCounts(), 10)
	lines := strings.Split(text, "\n")
	assert.Len(t, lines, 6)

	assert.Equal(t, "🎬 Video     [#ff6384]██████████[-]   2  66.7%", lines[0])
	assert.Equal(t, "🎵 Audio     [#36a2eb]█████[-]░░░░░   1  33.3%", lines[1])
	assert.Equal(t, "📄 Document  [#ffce56][-]░░░░░░░░░░   0   0.0%", lines[2])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Total: 3", lines[5])
}

func TestBreakdownText_Empty(t *testing.T) {
	text := BreakdownText(filelist.New().BreakdownCounts(), 4)
	assert.Contains(t, text, "Video     [#ff6384][-]░░░░   0   0.0%")
	assert.True(t, strings.HasSuffix(text, "Total: 0"))
}
