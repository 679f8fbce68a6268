package chroma2tcell

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func TestColorizeAs(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s, err := ColorizeAs("", "dracula", "yaml")
		assert.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("yaml", func(t *testing.T) {
		s, err := ColorizeAs("name: Report\nsize: 1024", "dracula", "yaml")
		assert.NoError(t, err)
		assert.Contains(t, s, "[#")
		assert.Contains(t, s, "name")
		assert.Contains(t, s, "Report")
		assert.Contains(t, s, "1024")
	})

	t.Run("lexer_not_found", func(t *testing.T) {
		oldGetLexer := getLexer
		defer func() {
			getLexer = oldGetLexer
		}()
		getLexer = func(string) chroma.Lexer { return nil }
		s, err := ColorizeAs("key: value", "dracula", "yaml")
		assert.NoError(t, err)
		assert.Contains(t, s, "key: value")
	})
}

func TestColorize(t *testing.T) {
	// Not parallel: subtests swap getStyle and getFallbackStyle.
	t.Run("nil_lexer_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("The code did not panic")
			}
		}()
		_, _ = Colorize("text", "dracula", nil)
	})

	t.Run("with_lexer", func(t *testing.T) {
		s, err := Colorize("package main", "dracula", lexers.Get("go"))
		assert.NoError(t, err)
		assert.Contains(t, s, "package")
		assert.Contains(t, s, "[-:-:-]")
	})

	t.Run("getFallbackStyle", func(t *testing.T) {
		assert.Equal(t, styles.Fallback, getFallbackStyle())
	})

	t.Run("unknown_style", func(t *testing.T) {
		getStyleCalls := 0
		fallbackCalls := 0
		oldGetStyle, oldGetFallbackStyle := getStyle, getFallbackStyle
		defer func() {
			getStyle, getFallbackStyle = oldGetStyle, oldGetFallbackStyle
		}()
		getStyle = func(name string) *chroma.Style {
			getStyleCalls++
			return nil
		}
		getFallbackStyle = func() *chroma.Style {
			fallbackCalls++
			return styles.Fallback
		}
		s, err := Colorize("", "unknown_style", lexers.Get("go"))
		assert.NoError(t, err)
		assert.Equal(t, 1, getStyleCalls)
		assert.Equal(t, 1, fallbackCalls)
		assert.Equal(t, "", s)
	})

	t.Run("tokenise_error", func(t *testing.T) {
		_, err := Colorize("text", "dracula", &mockLexer{err: fmt.Errorf("tokenise error")})
		assert.Error(t, err)
	})

	t.Run("unstyled_token_is_escaped", func(t *testing.T) {
		lexer := &mockLexer{
			tokens: []chroma.Token{
				{Type: chroma.TokenType(-1), Value: "tags: [red]"},
			},
		}
		oldGetStyle := getStyle
		defer func() {
			getStyle = oldGetStyle
		}()
		getStyle = func(name string) *chroma.Style {
			return &chroma.Style{Name: "zero"}
		}
		s, err := Colorize("tags: [red]", "zero", lexer)
		assert.NoError(t, err)
		assert.Equal(t, "tags: [red[]", s)
	})
}

func TestTag(t *testing.T) {
	tests := []struct {
		name  string
		entry chroma.StyleEntry
		want  string
	}{
		{name: "zero", entry: chroma.StyleEntry{}, want: ""},
		{name: "colour", entry: chroma.StyleEntry{Colour: chroma.MustParseColour("#ff0000")}, want: "[#ff0000]"},
		{name: "bold_colour", entry: chroma.StyleEntry{Colour: chroma.MustParseColour("#00ff00"), Bold: chroma.Yes}, want: "[#00ff00::b]"},
		{name: "italic_only", entry: chroma.StyleEntry{Italic: chroma.Yes}, want: "[-::i]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tag(tt.entry))
		})
	}
}

type mockLexer struct {
	tokens []chroma.Token
	err    error
}

func (m *mockLexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	_, _ = options, text
	if m.err != nil {
		return nil, m.err
	}
	return chroma.Literator(m.tokens...), nil
}

func (m *mockLexer) Config() *chroma.Config {
	return nil
}

func (m *mockLexer) SetRegistry(_ *chroma.LexerRegistry) chroma.Lexer {
	return m
}

func (m *mockLexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	_ = analyser
	return m
}

func (m *mockLexer) AnalyseText(_ string) float32 {
	return 0
}
