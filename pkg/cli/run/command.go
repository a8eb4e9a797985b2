// Package run implements the 'corscheck run' command.
package run

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/flag"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
	"github.com/suzuki-shunsuke/corscheck/pkg/controller/run"
	"github.com/suzuki-shunsuke/corscheck/pkg/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	fs          afero.Fs
	stdout      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, fs afero.Fs, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		fs:          fs,
		stdout:      stdout,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Scan source files for lines that may cause CORS issues",
		Description: `corscheck walks the directory src and prints lines of .ts and .tsx files
which look like client-side HTTP calls or cross-origin references.

$ corscheck run

The target directory and file suffixes can be changed by the configuration file.
Findings are informational, so corscheck exits with 0 even if something is found.
`,
		Action: r.action,
	}
}

func (r *runner) action(ctx context.Context, _ *cli.Command) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, r.globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	cfg, err := readConfig(r.fs, r.globalFlags.Config)
	if err != nil {
		return err
	}
	ctrl := run.New(r.fs, cfg, &run.ParamRun{
		Stdout:  r.stdout,
		NoColor: r.globalFlags.NoColor,
	})
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgPath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, cfgPath); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}
