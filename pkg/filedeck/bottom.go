package filedeck

import (
	"fmt"
	"strings"

	"github.com/filetug/filedeck/pkg/filedeck/ftui"
	"github.com/filetug/filedeck/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// bottom is the status line over the hotkey menu.
type bottom struct {
	*tview.Flex
	status       *tview.TextView
	menu         *tview.TextView
	fkMenuItems  []ftui.MenuItem
	altMenuItems []ftui.MenuItem
	run          func(action func()) bool
}

// newBottom builds the menu; clicked items are handed to run, which may refuse them.
func newBottom(run func(action func()) bool, fkMenuItems, altMenuItems []ftui.MenuItem) *bottom {
	b := &bottom{
		status: tview.NewTextView().SetDynamicColors(true),
		menu: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(sneatv.CurrentTheme.MenuTextColor),
		fkMenuItems:  fkMenuItems,
		altMenuItems: altMenuItems,
		run:          run,
	}
	b.menu.SetHighlightedFunc(b.highlighted)
	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.status, 1, 0, false).
		AddItem(b.menu, 1, 0, false)
	b.render()
	return b
}

func (b *bottom) render() {
	var sb strings.Builder
	sb.WriteString(b.renderMenuItems(b.fkMenuItems))
	sb.WriteString(" | [DarkGray]Alt[-]+: ")
	sb.WriteString(b.renderMenuItems(b.altMenuItems))
	b.menu.SetText(sb.String())
}

func (b *bottom) renderMenuItems(menuItems []ftui.MenuItem) string {
	const separator = "┊"
	titles := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", sneatv.CurrentTheme.HotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		titles = append(titles, fmt.Sprintf(`["%s"]%s[""]`, mi.HotKeys[0], title))
	}
	return strings.Join(titles, separator)
}

// highlighted runs the action of a clicked menu item.
func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.menu.Highlight()
	for _, items := range [][]ftui.MenuItem{b.fkMenuItems, b.altMenuItems} {
		for _, mi := range items {
			if mi.HotKeys[0] == region {
				b.run(mi.Action)
				return
			}
		}
	}
}

func (b *bottom) SetStatus(text string) {
	b.status.SetTextColor(tcell.ColorWhite)
	b.status.SetText(tview.Escape(text))
}

func (b *bottom) SetError(err error) {
	b.status.SetTextColor(sneatv.CurrentTheme.StatusErrColor)
	b.status.SetText(tview.Escape(err.Error()))
}
