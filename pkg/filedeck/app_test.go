package filedeck

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	application := tview.NewApplication()
	a := NewApp(application)

	root := tview.NewTextView()
	a.SetFocus(root)
	assert.Same(t, root, application.GetFocus())

	assert.NotPanics(t, a.Stop, "stopping an application that never ran")
}
