package masks

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

type PatternType string

const (
	Inclusive PatternType = "inclusive"
	Exclusive PatternType = "exclusive"
)

// Pattern is a glob over record paths, like "*.mp4" or "*/archive/*".
// Matching ignores case.
type Pattern struct {
	Type PatternType
	Glob string

	compiled glob.Glob
}

func (p *Pattern) compile() error {
	if p.compiled != nil {
		return nil
	}
	g, err := glob.Compile(strings.ToLower(p.Glob))
	if err != nil {
		return fmt.Errorf("invalid mask pattern %q: %w", p.Glob, err)
	}
	p.compiled = g
	return nil
}

func (p *Pattern) Match(target string) (bool, error) {
	if err := p.compile(); err != nil {
		return false, err
	}
	return p.compiled.Match(strings.ToLower(target)), nil
}
