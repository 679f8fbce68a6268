package files

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/records.yaml
var bundledRecords []byte

var ErrDuplicateID = errors.New("duplicate record id")

// Decoder is the part of the yaml.v3 and encoding/json decoders DecodeRecords needs.
type Decoder interface {
	Decode(o any) error
}

var newID = func() string {
	return uuid.NewString()
}

var readFile = os.ReadFile

// Bundled returns the records shipped with the binary.
func Bundled() []FileRecord {
	records, err := DecodeRecords(bytes.NewReader(bundledRecords), yamlDecoder)
	if err != nil {
		// It's OK to have panic here, the data set is compiled in.
		panic("bundled records: " + err.Error())
	}
	return records
}

// LoadFile reads records from a YAML or JSON data file.
func LoadFile(filePath string) ([]FileRecord, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", filePath, err)
	}
	newDecoder := yamlDecoder
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		newDecoder = jsonDecoder
	}
	records, err := DecodeRecords(bytes.NewReader(data), newDecoder)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", filePath, err)
	}
	return records, nil
}

func yamlDecoder(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}

func jsonDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// DecodeRecords decodes a list of records, assigns ids to records that have none
// and rejects unknown types and duplicate ids.
func DecodeRecords(r io.Reader, newDecoder func(r io.Reader) Decoder) ([]FileRecord, error) {
	var records []FileRecord
	if err := newDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []FileRecord{}, nil
		}
		return nil, err
	}
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		rec := &records[i]
		if rec.ID == "" {
			rec.ID = newID()
		}
		if !rec.Type.IsKnown() {
			return nil, fmt.Errorf("record %s: %w: %q", rec.ID, ErrUnknownFileType, rec.Type)
		}
		if _, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	if records == nil {
		records = []FileRecord{}
	}
	return records, nil
}
