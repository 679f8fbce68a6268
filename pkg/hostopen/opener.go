// Package hostopen hands paths and links to the host's "open" command.
package hostopen

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

type Opener interface {
	Open(ctx context.Context, target string) error
}

var (
	execCommandContext = exec.CommandContext
	startCommand       = func(cmd *exec.Cmd) error {
		return cmd.Start()
	}
)

var _ Opener = (*CommandOpener)(nil)

// CommandOpener starts the platform open command and does not wait for it.
type CommandOpener struct {
	goos string
	log  zerolog.Logger
}

type Option func(o *CommandOpener)

func WithGOOS(goos string) Option {
	return func(o *CommandOpener) {
		o.goos = goos
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *CommandOpener) {
		o.log = log
	}
}

func NewCommandOpener(options ...Option) *CommandOpener {
	o := &CommandOpener{
		goos: runtime.GOOS,
		log:  zerolog.Nop(),
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Command returns the program and arguments that open target on goos.
func Command(goos, target string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func (o *CommandOpener) Open(ctx context.Context, target string) error {
	name, args := Command(o.goos, target)
	cmd := execCommandContext(ctx, name, args...)
	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("failed to open %q with %s: %w", target, name, err)
	}
	o.log.Debug().Str("cmd", name).Str("target", target).Msg("opened")
	if cmd.Process != nil {
		go func() {
			_ = cmd.Wait()
		}()
	}
	return nil
}
