package sneatv

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type BoxedContent interface {
	tview.Primitive
	GetTitle() string
	SetTitle(title string) *tview.Box
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

// Boxed draws a light frame around its content: title in the top line,
// optional footer in the bottom line, doubled lines when focused.
type Boxed struct {
	BoxedContent
	options boxOptions
}

type boxOptions struct {
	leftBorder   bool
	leftPadding  int
	rightBorder  bool
	rightPadding int

	footer tview.Primitive
}

type BoxOption func(*boxOptions)

func WithLeftBorder(padding int) BoxOption {
	return func(opts *boxOptions) {
		opts.leftBorder = true
		opts.leftPadding = padding
	}
}

func WithRightBorder(padding int) BoxOption {
	return func(opts *boxOptions) {
		opts.rightBorder = true
		opts.rightPadding = padding
	}
}

func WithFooter(footer tview.Primitive) BoxOption {
	return func(opts *boxOptions) {
		opts.footer = footer
	}
}

func NewBoxed(inner BoxedContent, o ...BoxOption) *Boxed {
	b := Boxed{
		BoxedContent: inner,
	}
	for _, option := range o {
		option(&b.options)
	}
	left, right := b.options.leftPadding, b.options.rightPadding
	if b.options.leftBorder {
		left++
	}
	if b.options.rightBorder {
		right++
	}
	inner.SetBorderPadding(1, 1, left, right)
	return &b
}

func (b *Boxed) Draw(screen tcell.Screen) {
	b.BoxedContent.Draw(screen)
	b.drawBorders(screen)
}

func (b *Boxed) drawBorders(screen tcell.Screen) {
	x, y, width, height := b.GetRect()
	if width <= 0 || height <= 0 {
		return
	}
	hasFocus := b.HasFocus()

	lineStyle := CurrentTheme.BlurredBorderStyle
	horizontal, vertical := '─', '│'
	topLeft, topRight, bottomLeft, bottomRight := '┌', '┐', '└', '┘'
	labelLeft, labelRight := '┤', '├'
	if hasFocus {
		lineStyle = CurrentTheme.FocusedBorderStyle
		horizontal = '═'
		topLeft, topRight, bottomLeft, bottomRight = '╒', '╕', '╘', '╛'
		labelLeft, labelRight = '╡', '╞'
	}

	drawLine := func(lineY int, label string) {
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, lineY, horizontal, nil, lineStyle)
		}
		labelWidth := tview.TaggedStringWidth(label)
		if labelWidth == 0 || labelWidth+4 > width {
			return
		}
		start := x + (width-labelWidth)/2
		screen.SetContent(start-1, lineY, labelLeft, nil, lineStyle)
		tview.Print(screen, label, start, lineY, labelWidth, tview.AlignLeft, tcell.ColorGhostWhite)
		screen.SetContent(start+labelWidth, lineY, labelRight, nil, lineStyle)
	}

	drawLine(y, b.GetTitle())
	if height > 1 {
		drawLine(y+height-1, footerText(b.options.footer))
	}

	vertical2 := func(colX int, top, bottom rune) {
		screen.SetContent(colX, y, top, nil, lineStyle)
		for i := 1; i < height-1; i++ {
			screen.SetContent(colX, y+i, vertical, nil, lineStyle)
		}
		if height > 1 {
			screen.SetContent(colX, y+height-1, bottom, nil, lineStyle)
		}
	}
	if b.options.leftBorder {
		vertical2(x, topLeft, bottomLeft)
	}
	if b.options.rightBorder {
		vertical2(x+width-1, topRight, bottomRight)
	}
}

func footerText(footer tview.Primitive) string {
	switch f := footer.(type) {
	case nil:
		return ""
	case *tview.TextView:
		text := f.GetText(false)
		if newline := strings.IndexByte(text, '\n'); newline >= 0 {
			text = text[:newline]
		}
		return text
	default:
		return ""
	}
}
