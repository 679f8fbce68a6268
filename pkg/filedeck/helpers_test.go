package filedeck

import (
	"context"
	"testing"
	"time"

	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/hostopen"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testRecords() []files.FileRecord {
	return []files.FileRecord{
		{ID: "1", Name: "b-clip", Path: "/file-server/videos/b.mp4", Type: files.Video, Size: 3000, ModifiedDate: now.AddDate(0, 0, -2)},
		{ID: "2", Name: "a-song", Path: "/file-server/audio/a.mp3", Type: files.Audio, Size: 1000, ModifiedDate: now},
		{ID: "3", Name: "c-notes", Path: "/file-server/documents/c.md", Type: files.Document, Size: 2000, ModifiedDate: now.AddDate(0, 0, -5)},
		{ID: "4", Name: "d-photo", Path: "/other/d.png", Type: files.Image, Size: 500, ModifiedDate: now.AddDate(0, 0, -1)},
	}
}

type recordingOpener struct {
	targets []string
	err     error
}

func (o *recordingOpener) Open(_ context.Context, target string) error {
	o.targets = append(o.targets, target)
	return o.err
}

func newTestDeck(t *testing.T, options ...DeckOption) (*Deck, *testApp, *recordingOpener) {
	t.Helper()
	model := filelist.New()
	model.Load(testRecords())
	app := &testApp{}
	opener := &recordingOpener{}
	options = append([]DeckOption{WithActions(hostopen.NewActions(opener, hostopen.DefaultSettings()))}, options...)
	return NewDeck(app, model, options...), app, opener
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func altRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt)
}

func noFocus(tview.Primitive) {}

// pressEnterOnRow moves the files cursor to row and presses Enter.
func pressEnterOnRow(d *Deck, row int) {
	d.files.table.Select(row, 0)
	d.files.table.InputHandler()(key(tcell.KeyEnter), noFocus)
}
