package filedeck

import (
	"fmt"
	"slices"
	"strings"

	"github.com/filetug/filedeck/pkg/filedeck/masks"
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/viewers"
)

func (d *Deck) toggle(record files.FileRecord) {
	if err := d.model.SelectToggle(record.ID); err != nil {
		d.showError("select", err)
		return
	}
	d.refresh()
}

func (d *Deck) deleteSelected() {
	record, ok := d.model.Selected()
	if !ok {
		d.bottom.SetStatus("Select a file to delete")
		return
	}
	if err := d.model.Delete(record.ID); err != nil {
		d.showError("delete", err)
		return
	}
	d.bottom.SetStatus(fmt.Sprintf("Deleted %s", record.Name))
	d.refresh()
}

func (d *Deck) rename(id, newName string) {
	if err := d.model.Rename(id, newName); err != nil {
		d.showError("rename", err)
		return
	}
	d.bottom.SetStatus(fmt.Sprintf("Renamed to %q", newName))
	d.refresh()
}

func (d *Deck) sortBy(key filelist.SortKey) {
	d.model.SortBy(key)
	d.refresh()
	d.focusFiles()
}

func (d *Deck) sortNext() {
	d.sortBy(d.model.SortKey().Next())
}

func (d *Deck) setFilterPath(prefix string) {
	d.model.SetFilterPath(prefix)
	d.bottom.SetStatus(fmt.Sprintf("Showing %s", prefix))
	d.refresh()
}

// setMask narrows the files panel, nil shows everything again.
func (d *Deck) setMask(mask *masks.Mask) {
	d.mask = mask
	if mask == nil {
		d.bottom.SetStatus("Mask cleared")
	} else {
		d.bottom.SetStatus("Mask: " + mask.Name)
	}
	d.refresh()
}

// setQuery narrows the files panel to names containing text, ignoring case.
func (d *Deck) setQuery(text string) {
	d.query = strings.TrimSpace(text)
	if d.query == "" {
		d.bottom.SetStatus("Showing all names")
	} else {
		d.bottom.SetStatus(fmt.Sprintf("Names containing %q", d.query))
	}
	d.refresh()
}

// nextTypeFilter steps through the types one at a time, then back to all of them.
func (d *Deck) nextTypeFilter() {
	all := files.AllFileTypes()
	next := 0
	if len(d.types) == 1 {
		next = slices.Index(all, d.types[0]) + 1
	}
	if next >= len(all) {
		d.types = nil
		d.bottom.SetStatus("Type: all")
	} else {
		d.types = []files.FileType{all[next]}
		d.bottom.SetStatus("Type: " + viewers.TypeTitle(all[next]))
	}
	d.refresh()
}

func (d *Deck) selectedRecord() *files.FileRecord {
	record, ok := d.model.Selected()
	if !ok {
		d.bottom.SetStatus("Select a file first")
		return nil
	}
	return &record
}

func (d *Deck) download() {
	record := d.selectedRecord()
	if err := d.o.actions.Download(d.o.ctx, record); err != nil {
		d.showError("download", err)
	} else if record != nil {
		d.bottom.SetStatus("Downloading " + record.Path)
	}
}

func (d *Deck) share() {
	record := d.selectedRecord()
	if err := d.o.actions.Share(d.o.ctx, record); err != nil {
		d.showError("share", err)
	} else if record != nil {
		d.bottom.SetStatus("Shared " + record.Name)
	}
}

func (d *Deck) shareByEmail() {
	record := d.selectedRecord()
	if err := d.o.actions.ShareByEmail(d.o.ctx, record); err != nil {
		d.showError("email", err)
	} else if record != nil {
		d.bottom.SetStatus("Composing email for " + record.Name)
	}
}

// Reload replaces the records, clearing the selection. Call it on the event goroutine.
func (d *Deck) Reload(records []files.FileRecord) {
	d.model.Load(records)
	d.bottom.SetStatus(fmt.Sprintf("Reloaded %d files", len(records)))
	d.refresh()
}

// QueueReload schedules Reload from any goroutine.
func (d *Deck) QueueReload(records []files.FileRecord) {
	d.app.QueueUpdateDraw(func() {
		d.Reload(records)
	})
}

func (d *Deck) showError(op string, err error) {
	d.o.log.Error().Err(err).Str("op", op).Msg("operation failed")
	d.bottom.SetError(fmt.Errorf("failed to %s: %w", op, err))
}
