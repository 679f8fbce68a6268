package filedeck

import (
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/rivo/tview"
)

// SetupApp builds a Deck over model and makes it the root of app.
func SetupApp(app *tview.Application, model *filelist.Model, options ...DeckOption) *Deck {
	app.EnableMouse(true)
	deck := NewDeck(NewApp(app), model, options...)
	app.SetRoot(deck, true)
	return deck
}
