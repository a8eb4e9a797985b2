// Package run implements the scan of corscheck.
// It walks the target directory, picks files by name suffix, matches each line
// against a fixed set of regular expressions that hint at client-side HTTP calls,
// and prints the matched lines grouped by file.
// A file that can't be read is reported as a finding instead of stopping the scan.
package run

import (
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
)

type Controller struct {
	fs       afero.Fs
	cfg      *config.Config
	param    *ParamRun
	patterns []*Pattern
	reporter *Reporter
}

func New(fs afero.Fs, cfg *config.Config, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.SetDefault()
	return &Controller{
		fs:       fs,
		cfg:      cfg,
		param:    param,
		patterns: DefaultPatterns(),
		reporter: NewReporter(param.Stdout, param.NoColor),
	}
}
