package hostopen

import (
	"context"
	"errors"
	"testing"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/stretchr/testify/assert"
)

type recordingOpener struct {
	targets []string
	err     error
}

func (o *recordingOpener) Open(_ context.Context, target string) error {
	o.targets = append(o.targets, target)
	return o.err
}

func TestActions(t *testing.T) {
	record := &files.FileRecord{ID: "42", Name: "Report", Path: "/file-server/documents/report.pdf"}
	ctx := context.Background()

	t.Run("download", func(t *testing.T) {
		opener := &recordingOpener{}
		assert.NoError(t, NewActions(opener, DefaultSettings()).Download(ctx, record))
		assert.Equal(t, []string{"/file-server/documents/report.pdf"}, opener.targets)
	})

	t.Run("share", func(t *testing.T) {
		opener := &recordingOpener{}
		assert.NoError(t, NewActions(opener, DefaultSettings()).Share(ctx, record))
		assert.Equal(t, []string{"https://example.com/share/42"}, opener.targets)
	})

	t.Run("email", func(t *testing.T) {
		opener := &recordingOpener{}
		assert.NoError(t, NewActions(opener, DefaultSettings()).ShareByEmail(ctx, record))
		assert.Equal(t, []string{
			"mailto:recipient@example.com?subject=File%20Sharing&body=Please%20find%20the%20attached%20file.&attachment=/file-server/documents/report.pdf",
		}, opener.targets)
	})

	t.Run("nothing_selected", func(t *testing.T) {
		opener := &recordingOpener{}
		a := NewActions(opener, DefaultSettings())
		assert.NoError(t, a.Download(ctx, nil))
		assert.NoError(t, a.Share(ctx, nil))
		assert.NoError(t, a.ShareByEmail(ctx, nil))
		assert.Empty(t, opener.targets)
	})

	t.Run("opener_error", func(t *testing.T) {
		opener := &recordingOpener{err: errors.New("no browser")}
		err := NewActions(opener, DefaultSettings()).Share(ctx, record)
		assert.EqualError(t, err, "no browser")
	})
}

func TestMailtoLink_Escapes(t *testing.T) {
	link := MailtoLink("a@b.c", "Q&A = 100%", "line 1\nline+2", "/p")
	assert.Equal(t, "mailto:a@b.c?subject=Q%26A%20%3D%20100%25&body=line%201%0Aline%2B2&attachment=/p", link)
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://s/a%20b", ShareURL("https://s/", "a b"))
}
