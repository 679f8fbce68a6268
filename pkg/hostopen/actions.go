package hostopen

import (
	"context"
	"net/url"
	"strings"

	"github.com/filetug/filedeck/pkg/files"
)

type Settings struct {
	ShareBaseURL string
	MailTo       string
	MailSubject  string
	MailBody     string
}

func DefaultSettings() Settings {
	return Settings{
		ShareBaseURL: "https://example.com/share/",
		MailTo:       "recipient@example.com",
		MailSubject:  "File Sharing",
		MailBody:     "Please find the attached file.",
	}
}

// Actions turns record operations into links for the opener.
// Every action is a no-op when record is nil.
type Actions struct {
	opener   Opener
	settings Settings
}

func NewActions(opener Opener, settings Settings) *Actions {
	return &Actions{opener: opener, settings: settings}
}

func (a *Actions) Download(ctx context.Context, record *files.FileRecord) error {
	if record == nil {
		return nil
	}
	return a.opener.Open(ctx, record.Path)
}

func (a *Actions) Share(ctx context.Context, record *files.FileRecord) error {
	if record == nil {
		return nil
	}
	return a.opener.Open(ctx, ShareURL(a.settings.ShareBaseURL, record.ID))
}

func (a *Actions) ShareByEmail(ctx context.Context, record *files.FileRecord) error {
	if record == nil {
		return nil
	}
	link := MailtoLink(a.settings.MailTo, a.settings.MailSubject, a.settings.MailBody, record.Path)
	return a.opener.Open(ctx, link)
}

func ShareURL(baseURL, id string) string {
	return baseURL + url.PathEscape(id)
}

// MailtoLink builds mailto:<to>?subject=..&body=..&attachment=<path>.
// Subject and body are component-escaped, the attachment path is passed as is.
func MailtoLink(to, subject, body, attachment string) string {
	return "mailto:" + to +
		"?subject=" + escapeComponent(subject) +
		"&body=" + escapeComponent(body) +
		"&attachment=" + attachment
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
