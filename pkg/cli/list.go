package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/sizes"
	"github.com/filetug/filedeck/pkg/viewers"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B5ECD"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	typeColors  = map[files.FileType]lipgloss.Color{
		files.Video:    "#ff6384",
		files.Audio:    "#36a2eb",
		files.Document: "#ffce56",
		files.Image:    "#4bc0c0",
	}
)

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the records under --path, sorted by --sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderList(e.visible(), e.model.FilterPath(), e.model.Len()))
			return err
		},
	}
}

func renderList(records []files.FileRecord, filterPath string, total int) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Name,
			r.Type.Emoji() + " " + viewers.TypeTitle(r.Type),
			sizes.ShortText(r.Size),
			r.ModifiedDate.Format(viewers.DateFormat),
			r.Path,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "NAME", "TYPE", "SIZE", "MODIFIED", "PATH").
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("My Files") + " " + filterPath + "\n")
	sb.WriteString(t.Render() + "\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d files", len(records), total)))
	return sb.String()
}

func newBreakdownCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Print the number of records per type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderBreakdown(e.model.BreakdownCounts(), 30))
			return err
		},
	}
}

func renderBreakdown(b filelist.Breakdown, barWidth int) string {
	bars := b.Bars(barWidth)
	label := lipgloss.NewStyle().Width(10)
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Files Breakdown") + "\n")
	for i, tc := range b {
		filled := bars[i]
		bar := lipgloss.NewStyle().Foreground(typeColors[tc.Type]).Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&sb, "%s %s %3d %5.1f%%\n", label.Render(viewers.TypeTitle(tc.Type)), bar, tc.Count, b.Share(tc.Type)*100)
	}
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("Total: %d", b.Total())))
	return sb.String()
}
