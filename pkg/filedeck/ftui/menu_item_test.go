package ftui

import "testing"

func TestMenuItem(t *testing.T) {
	t.Parallel()
	called := false
	item := MenuItem{
		Title:   "F2 Rename",
		HotKeys: []string{"F2"},
		Action: func() {
			called = true
		},
	}
	if item.HotKeys[0] != "F2" {
		t.Errorf("expected first hotkey F2, got %s", item.HotKeys[0])
	}
	item.Action()
	if !called {
		t.Error("expected Action to be called")
	}
}
