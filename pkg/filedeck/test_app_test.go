package filedeck

import "github.com/rivo/tview"

// testApp is a minimal App for tests: updates run inline and focus is recorded.
type testApp struct {
	focused tview.Primitive
	stopped bool
}

func (a *testApp) QueueUpdateDraw(f func()) {
	if f != nil {
		f()
	}
}

func (a *testApp) SetFocus(p tview.Primitive) {
	a.focused = p
}

func (a *testApp) Stop() {
	a.stopped = true
}
