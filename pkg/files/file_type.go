package files

import (
	"errors"
	"fmt"
	"strings"
)

// FileType is the kind of media a record represents.
type FileType string

const (
	Video    FileType = "video"
	Audio    FileType = "audio"
	Document FileType = "document"
	Image    FileType = "image"
)

var ErrUnknownFileType = errors.New("unknown file type")

// AllFileTypes returns the known types in breakdown order.
func AllFileTypes() []FileType {
	return []FileType{Video, Audio, Document, Image}
}

func ParseFileType(s string) (FileType, error) {
	t := FileType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Video, Audio, Document, Image:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFileType, s)
	}
}

func (t FileType) IsKnown() bool {
	_, err := ParseFileType(string(t))
	return err == nil
}

func (t FileType) Emoji() string {
	switch t {
	case Video:
		return "🎬"
	case Audio:
		return "🎵"
	case Document:
		return "📄"
	case Image:
		return "🖼"
	default:
		return "❔"
	}
}

func (t *FileType) UnmarshalText(text []byte) error {
	v, err := ParseFileType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
