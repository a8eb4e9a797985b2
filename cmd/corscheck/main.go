package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/corscheck/pkg/cli"
	"github.com/suzuki-shunsuke/corscheck/pkg/log"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = "" //nolint:gochecknoglobals
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		logerr.WithError(logE, err).Fatal("corscheck failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &stdutil.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
