package files

import (
	"time"
)

// FileRecord is the metadata of a single mock file. It has no bytes behind it.
type FileRecord struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Path         string    `json:"path" yaml:"path"`
	Type         FileType  `json:"type" yaml:"type"`
	Size         int64     `json:"size" yaml:"size"`
	ModifiedDate time.Time `json:"modifiedDate" yaml:"modifiedDate"`
}

func (r FileRecord) String() string {
	return r.Path
}
