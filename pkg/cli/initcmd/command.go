// Package initcmd implements the 'corscheck init' command.
// It generates .corscheck.yaml with commented examples.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli/flag"
	"github.com/suzuki-shunsuke/corscheck/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/corscheck/pkg/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".corscheck.yaml"

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, fs afero.Fs) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		fs:          fs,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	fs          afero.Fs
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .corscheck.yaml if it doesn't exist",
		Description: `Create .corscheck.yaml if it doesn't exist

$ corscheck init

You can also pass configuration file path.

e.g.

$ corscheck init .github/corscheck.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, r.globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigFilePath
	}
	ctrl := initcmd.New(r.fs)
	return ctrl.Init(r.logE.WithField("config_file", configFilePath), configFilePath) //nolint:wrapcheck
}
