package viewers

import (
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sizes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DateFormat = "2006-01-02 15:04"

var titleCaser = cases.Title(language.English)

// TypeTitle returns "Video" for files.Video and so on.
func TypeTitle(t files.FileType) string {
	return titleCaser.String(string(t))
}

// RecordMeta lists what is known about a record, extra groups appended after the file group.
func RecordMeta(record files.FileRecord, extra ...*MetaGroup) *Meta {
	modified := ""
	if !record.ModifiedDate.IsZero() {
		modified = record.ModifiedDate.Format(DateFormat)
	}
	group := &MetaGroup{
		ID:    "file",
		Title: record.Type.Emoji() + " " + TypeTitle(record.Type),
		Records: []*MetaRecord{
			{ID: "name", Title: "Name", Value: record.Name},
			{ID: "path", Title: "Path", Value: record.Path},
			{ID: "type", Title: "Type", Value: TypeTitle(record.Type)},
			{ID: "size", Title: "Size", Value: sizes.ShortText(record.Size), ValueAlign: AlignRight},
			{ID: "bytes", Title: "Bytes", Value: sizes.LongText(record.Size), ValueAlign: AlignRight},
			{ID: "modified", Title: "Modified", Value: modified},
		},
	}
	return &Meta{Groups: append([]*MetaGroup{group}, extra...)}
}
