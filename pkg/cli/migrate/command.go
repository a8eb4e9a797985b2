// Package migrate implements the 'corscheck migrate' command.
package migrate

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/flag"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
	"github.com/suzuki-shunsuke/corscheck/pkg/controller/migrate"
	"github.com/suzuki-shunsuke/corscheck/pkg/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	fs          afero.Fs
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, fs afero.Fs) *cli.Command {
	r := runner{
		logE:        logE,
		globalFlags: globalFlags,
		fs:          fs,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Migrate .corscheck.yaml",
		Description: `Migrate .corscheck.yaml to the latest schema

$ corscheck migrate
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, _ *cli.Command) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, r.globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	ctrl := migrate.New(r.fs, config.NewFinder(r.fs), &migrate.Param{
		ConfigFilePath: r.globalFlags.Config,
	})
	return ctrl.Migrate(r.logE) //nolint:wrapcheck
}
