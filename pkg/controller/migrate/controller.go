// Package migrate upgrades a configuration file of corscheck to the latest schema.
// Configuration files written before the version field was introduced
// named the list of file suffixes extensions. Migration renames it to suffixes
// and sets the version, keeping comments and the order of keys.
package migrate

import (
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *Param
	cfgFinder ConfigFinder
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type Param struct {
	ConfigFilePath string
}

func New(fs afero.Fs, cfgFinder ConfigFinder, param *Param) *Controller {
	return &Controller{
		param:     param,
		fs:        fs,
		cfg:       &config.Config{},
		cfgFinder: cfgFinder,
	}
}
