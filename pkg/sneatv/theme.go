package sneatv

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Theme struct {
	HotkeyColor     tcell.Color
	MenuTextColor   tcell.Color
	StatusErrColor  tcell.Color
	ModalBackground tcell.Color

	FocusedBorderStyle tcell.Style
	BlurredBorderStyle tcell.Style

	FocusedSelectedTextStyle tcell.Style
	BlurredSelectedTextStyle tcell.Style
}

var CurrentTheme = Theme{
	HotkeyColor:     tcell.ColorWhite,
	MenuTextColor:   tcell.ColorSlateGray,
	StatusErrColor:  tcell.ColorOrangeRed,
	ModalBackground: tcell.ColorDarkBlue,

	FocusedBorderStyle: tcell.StyleDefault.Foreground(tcell.ColorCornflowerBlue).Background(tcell.ColorBlack),
	BlurredBorderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),

	FocusedSelectedTextStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhiteSmoke),
	BlurredSelectedTextStyle: tcell.StyleDefault.Foreground(tcell.ColorWhiteSmoke).Background(tcell.ColorDarkSlateGray),
}

const (
	DefaultFocusedBorderColor = tcell.ColorCornflowerBlue
	DefaultBlurBorderColor    = tcell.ColorGray
)

// DefaultBorderWithoutPadding draws a border around box that changes colour with focus.
func DefaultBorderWithoutPadding(box *tview.Box) {
	box.SetBorder(true)
	box.SetBorderPadding(0, 0, 0, 0)
	box.SetBorderColor(DefaultBlurBorderColor)
	box.SetFocusFunc(func() {
		box.SetBorderColor(DefaultFocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(DefaultBlurBorderColor)
	})
}
