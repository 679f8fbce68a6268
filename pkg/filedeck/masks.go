package filedeck

import (
	"github.com/filetug/filedeck/pkg/filedeck/masks"
)

const masksPage = "masks"

func (d *Deck) showMasks() {
	panel := masks.NewPanel(
		masks.OnSelected(func(mask *masks.Mask) {
			d.closeModal(masksPage)
			d.setMask(mask)
		}),
		masks.OnClosed(func() {
			d.closeModal(masksPage)
		}),
	)
	panel.SetRecords(d.model.Visible())
	d.showModal(masksPage, panel, 32, len(masks.BuiltIn())+5)
}
