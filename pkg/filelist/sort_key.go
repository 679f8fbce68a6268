package filelist

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/filetug/filedeck/pkg/files"
)

type SortKey string

const (
	SortNone SortKey = ""
	SortName SortKey = "name"
	SortType SortKey = "type"
	SortSize SortKey = "size"
	SortDate SortKey = "date"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys returns the keys in the order they are offered to the user.
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortName, SortType, SortSize, SortDate}
}

func ParseSortKey(s string) (SortKey, error) {
	switch k := strings.ToLower(strings.TrimSpace(s)); k {
	case "", "none":
		return SortNone, nil
	case string(SortName), string(SortType), string(SortSize), string(SortDate):
		return SortKey(k), nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

func (k SortKey) Title() string {
	switch k {
	case SortNone:
		return "None"
	case SortName:
		return "Name"
	case SortType:
		return "Type"
	case SortSize:
		return "Size"
	case SortDate:
		return "Date"
	default:
		return string(k)
	}
}

// Next returns the key that follows k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	i := slices.Index(keys, k)
	return keys[(i+1)%len(keys)]
}

// compareFunc returns nil for SortNone: the current order is kept as is.
// Date is newest first, all other keys are ascending.
func (k SortKey) compareFunc() func(a, b files.FileRecord) int {
	switch k {
	case SortName:
		return func(a, b files.FileRecord) int {
			return strings.Compare(a.Name, b.Name)
		}
	case SortType:
		return func(a, b files.FileRecord) int {
			return strings.Compare(string(a.Type), string(b.Type))
		}
	case SortSize:
		return func(a, b files.FileRecord) int {
			return cmp.Compare(a.Size, b.Size)
		}
	case SortDate:
		return func(a, b files.FileRecord) int {
			return b.ModifiedDate.Compare(a.ModifiedDate)
		}
	default:
		return nil
	}
}
