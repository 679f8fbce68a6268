// Package chroma2tcell renders chroma token streams as tview colour tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

var getStyle = styles.Get

var getLexer = lexers.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenises text with lexer and wraps every styled token in a
// "[fg::attrs]...[-:-:-]" tag. Token values are escaped so that brackets in
// the source are not read as tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		open := tag(style.Get(token.Type))
		if open == "" {
			sb.WriteString(value)
			continue
		}
		sb.WriteString(open)
		sb.WriteString(value)
		sb.WriteString("[-:-:-]")
	}
	return sb.String(), nil
}

// ColorizeAs looks the lexer up by language name and falls back to plain text.
func ColorizeAs(text, styleName, language string) (string, error) {
	lexer := getLexer(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return Colorize(text, styleName, lexer)
}

func tag(entry chroma.StyleEntry) string {
	var attrs string
	if entry.Bold == chroma.Yes {
		attrs += "b"
	}
	if entry.Italic == chroma.Yes {
		attrs += "i"
	}
	if entry.Underline == chroma.Yes {
		attrs += "u"
	}
	if !entry.Colour.IsSet() {
		if attrs == "" {
			return ""
		}
		return "[-::" + attrs + "]"
	}
	if attrs == "" {
		return "[" + entry.Colour.String() + "]"
	}
	return "[" + entry.Colour.String() + "::" + attrs + "]"
}
