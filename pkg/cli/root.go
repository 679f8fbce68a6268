// Package cli wires configuration, logging and data loading into the cobra commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/filetug/filedeck/pkg/config"
	"github.com/filetug/filedeck/pkg/datawatch"
	"github.com/filetug/filedeck/pkg/filedeck"
	"github.com/filetug/filedeck/pkg/filedeck/ftui"
	"github.com/filetug/filedeck/pkg/filedeck/masks"
	"github.com/filetug/filedeck/pkg/filelist"
	"github.com/filetug/filedeck/pkg/files"
	"github.com/filetug/filedeck/pkg/hostopen"
	"github.com/filetug/filedeck/pkg/logging"
	"github.com/filetug/filedeck/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	newApplication = tview.NewApplication
	runApp         = func(app *tview.Application) error {
		return app.Run()
	}
	watchData         = datawatch.Watch
	defaultConfigPath = config.DefaultPath
)

type flagValues struct {
	configFile string
	dataFile   string
	filterPath string
	sortKey    string
	mask       string
	types      []string
	logFile    string
	logLevel   string

	watch      bool
	cpuProfile string
	memProfile string
}

// env is what every command works with once flags and config are resolved.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	closeLog func() error
	model    *filelist.Model
	mask     *masks.Mask
	types    []files.FileType
}

// NewRootCmd creates the filedeck command with its list and breakdown subcommands.
func NewRootCmd() *cobra.Command {
	var (
		f flagValues
		e = &env{closeLog: func() error { return nil }}
	)
	rootCmd := &cobra.Command{
		Use:           "filedeck",
		Short:         "A terminal deck over a set of mock file records",
		Long:          "filedeck lists file records, lets you select, view, sort, rename, delete, download and share them, and charts a per-type breakdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, f)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.closeLog()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), e, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (default is ~/.filedeck/config.yaml)")
	pf.StringVar(&f.dataFile, "data", "", "YAML or JSON file with records (default is the bundled set)")
	pf.StringVar(&f.filterPath, "path", "", "show records under this path prefix")
	pf.StringVar(&f.sortKey, "sort", "", "sort by name, type, size, date or none")
	pf.StringVar(&f.mask, "mask", "", `built-in mask name or glob patterns, e.g. "*.mp4 !*/archive/*"`)
	pf.StringSliceVar(&f.types, "type", nil, "show only these types: video, audio, document, image")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.Flags().BoolVar(&f.watch, "watch", false, "reload the --data file when it changes")
	rootCmd.Flags().StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	rootCmd.Flags().StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")

	rootCmd.AddCommand(newListCmd(e))
	rootCmd.AddCommand(newBreakdownCmd(e))
	return rootCmd
}

func (e *env) init(cmd *cobra.Command, f flagValues) (err error) {
	if f.configFile != "" {
		e.cfg, err = config.Load(f.configFile)
	} else {
		configFile, _ := defaultConfigPath()
		e.cfg, err = config.LoadIfExists(configFile)
	}
	if err != nil {
		return err
	}
	applyFlags(cmd, f, e.cfg)

	if e.log, e.closeLog, err = logging.Open(e.cfg.Log.File, e.cfg.Log.Level); err != nil {
		return err
	}

	var records []files.FileRecord
	if e.cfg.DataFile == "" {
		records = files.Bundled()
	} else if records, err = files.LoadFile(e.cfg.DataFile); err != nil {
		return err
	}

	sortKey, err := filelist.ParseSortKey(e.cfg.SortKey)
	if err != nil {
		return err
	}
	if e.mask, err = resolveMask(e.cfg.Mask); err != nil {
		return err
	}
	if e.types, err = parseTypes(e.cfg.Types); err != nil {
		return err
	}

	e.model = filelist.New(
		filelist.WithFilterPath(e.cfg.FilterPath),
		filelist.WithLogger(e.log),
	)
	e.model.Load(records)
	e.model.SortBy(sortKey)
	e.log.Info().
		Int("records", e.model.Len()).
		Str("data", e.cfg.DataFile).
		Str("sort", sortKey.Title()).
		Msg("records loaded")
	return nil
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cmd *cobra.Command, f flagValues, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("data", &cfg.DataFile, f.dataFile)
	set("path", &cfg.FilterPath, f.filterPath)
	set("sort", &cfg.SortKey, f.sortKey)
	set("mask", &cfg.Mask, f.mask)
	set("log-file", &cfg.Log.File, f.logFile)
	set("log-level", &cfg.Log.Level, f.logLevel)
	if flags.Changed("type") {
		cfg.Types = f.types
	}
	if flags.Changed("watch") {
		cfg.Watch = f.watch
	}
}

// resolveMask picks a built-in mask by name or parses text as patterns.
func resolveMask(text string) (*masks.Mask, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	for _, m := range masks.BuiltIn() {
		if strings.EqualFold(m.Name, text) {
			return &m, nil
		}
	}
	return masks.Parse(text)
}

func parseTypes(names []string) ([]files.FileType, error) {
	types := make([]files.FileType, 0, len(names))
	for _, name := range names {
		t, err := files.ParseFileType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// visible returns the records the files panel would show.
func (e *env) visible() []files.FileRecord {
	filter := ftui.Filter{Types: e.types}
	if e.mask != nil {
		filter.MaskFilter = e.mask.Accepts
	}
	return filter.Apply(e.model.Visible())
}

func runTUI(ctx context.Context, e *env, f flagValues) error {
	if f.cpuProfile != "" {
		stop := profiling.DoCPUProfiling(f.cpuProfile, e.log)
		defer stop()
	}
	if f.memProfile != "" {
		stop := profiling.DoMemProfiling(f.memProfile, e.log)
		defer stop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	settings := hostopen.Settings{
		ShareBaseURL: e.cfg.Share.BaseURL,
		MailTo:       e.cfg.Mail.To,
		MailSubject:  e.cfg.Mail.Subject,
		MailBody:     e.cfg.Mail.Body,
	}
	app := newApplication()
	deck := filedeck.SetupApp(app, e.model,
		filedeck.WithContext(ctx),
		filedeck.WithLogger(e.log),
		filedeck.WithActions(hostopen.NewActions(hostopen.NewCommandOpener(hostopen.WithLogger(e.log)), settings)),
		filedeck.WithChromaStyle(e.cfg.Viewer.Style),
		filedeck.WithMask(e.mask),
		filedeck.WithTypes(e.types...),
	)

	if e.cfg.Watch && e.cfg.DataFile != "" {
		go func() {
			if err := watchData(ctx, e.cfg.DataFile, deck.QueueReload, datawatch.WithLogger(e.log)); err != nil {
				e.log.Error().Err(err).Msg("data file watch stopped")
			}
		}()
	}

	if err := runApp(app); err != nil {
		return fmt.Errorf("filedeck UI failed: %w", err)
	}
	return nil
}
