// Package cli builds the command line interface of corscheck.
// Running corscheck without a subcommand is the same as `corscheck run`.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/flag"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/migrate"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/run"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *stdutil.LDFlags
	LogE    *logrus.Entry
	FS      afero.Fs
}

// Run runs corscheck with the standard streams and the OS filesystem.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	r := &Runner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		LDFlags: ldFlags,
		LogE:    logE,
		FS:      afero.NewOsFs(),
	}
	return r.Run(ctx, args...)
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	if r.FS == nil {
		r.FS = afero.NewOsFs()
	}
	globalFlags := &flag.GlobalFlags{}
	runCmd := run.New(r.LogE, globalFlags, r.FS, r.Stdout)
	// Writer must be set before urfave.Command because the version command captures it.
	cmd := urfave.Command(r.LDFlags, &cli.Command{
		Name:      "corscheck",
		Usage:     "Find client-side HTTP calls that may cause CORS issues. https://github.com/suzuki-shunsuke/corscheck",
		Flags:     globalFlags.Flags(),
		Writer:    r.Stdout,
		ErrWriter: r.Stderr,
		Action:    runCmd.Action,
		Commands: []*cli.Command{
			runCmd,
			initcmd.New(r.LogE, globalFlags, r.FS),
			migrate.New(r.LogE, globalFlags, r.FS),
		},
	})

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
