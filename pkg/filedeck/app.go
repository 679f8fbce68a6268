package filedeck

import (
	"github.com/rivo/tview"
)

// App is what the deck needs from the running application.
type App interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	Stop()
}

var _ App = (*tviewApp)(nil)

// tviewApp drops the chained return values of *tview.Application.
type tviewApp struct {
	app *tview.Application
}

func NewApp(app *tview.Application) App {
	return &tviewApp{app: app}
}

func (a *tviewApp) QueueUpdateDraw(f func()) {
	a.app.QueueUpdateDraw(f)
}

func (a *tviewApp) SetFocus(p tview.Primitive) {
	a.app.SetFocus(p)
}

func (a *tviewApp) Stop() {
	a.app.Stop()
}
