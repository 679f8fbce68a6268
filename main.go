package main

import (
	"fmt"
	"os"

	"github.com/filetug/filedeck/pkg/cli"
	"github.com/spf13/cobra"
)

var (
	osExit     = os.Exit
	newRootCmd = cli.NewRootCmd
)

func main() {
	run(newRootCmd(), os.Args[1:])
}

type command interface {
	SetArgs(args []string)
	Execute() error
}

var _ command = (*cobra.Command)(nil)

var run = func(cmd command, args []string) {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}
