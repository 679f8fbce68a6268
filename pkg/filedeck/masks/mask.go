package masks

import (
	"fmt"
	"strings"

	"github.com/filetug/filedeck/pkg/files"
)

type Mask struct {
	Name     string
	Patterns []Pattern
}

func (m *Mask) String() string {
	return fmt.Sprintf("Mask{Name: %q, Patterns: %d}", m.Name, len(m.Patterns))
}

// Match reports whether target passes the mask: a matching exclusive pattern
// hides it, otherwise some inclusive pattern has to match.
// A mask without inclusive patterns lets everything not excluded through.
func (m *Mask) Match(target string) (bool, error) {
	var hasInclusive, included bool
	for i := range m.Patterns {
		pattern := &m.Patterns[i]
		matched, err := pattern.Match(target)
		if err != nil {
			return false, err
		}
		switch pattern.Type {
		case Exclusive:
			if matched {
				return false, nil
			}
		default:
			hasInclusive = true
			included = included || matched
		}
	}
	return included || !hasInclusive, nil
}

// Accepts matches record by its path. A broken pattern hides the record.
func (m *Mask) Accepts(record files.FileRecord) bool {
	ok, err := m.Match(record.Path)
	return err == nil && ok
}

// Compile checks all patterns up front.
func (m *Mask) Compile() error {
	for i := range m.Patterns {
		if err := m.Patterns[i].compile(); err != nil {
			return err
		}
	}
	return nil
}

// Parse builds an ad-hoc mask from text like "*.mp4 *.mov !draft*".
// Space or comma separated; a leading "!" makes a pattern exclusive.
func Parse(text string) (*Mask, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ','
	})
	m := &Mask{Name: strings.TrimSpace(text)}
	for _, f := range fields {
		p := Pattern{Type: Inclusive, Glob: f}
		if strings.HasPrefix(f, "!") {
			p = Pattern{Type: Exclusive, Glob: f[1:]}
		}
		if p.Glob == "" {
			continue
		}
		m.Patterns = append(m.Patterns, p)
	}
	if len(m.Patterns) == 0 {
		return nil, nil
	}
	if err := m.Compile(); err != nil {
		return nil, err
	}
	return m, nil
}
