package migrate

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
	"gopkg.in/yaml.v3"
)

func (c *Controller) Migrate(logE *logrus.Entry) error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	if p == "" {
		logE.Warn("no configuration file is found")
		return nil
	}
	c.param.ConfigFilePath = p
	logE = logE.WithField("config_file", p)

	content, err := afero.ReadFile(c.fs, p)
	if err != nil {
		return fmt.Errorf("read a file: %w", err)
	}

	// Unknown keys such as extensions are ignored here.
	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse a config file: %w", err)
	}
	c.cfg = cfg

	s, err := c.migrate(logE, content)
	if err != nil {
		return err
	}
	if s == "" || s == string(content) {
		logE.Info("configuration file isn't changed")
		return nil
	}
	if err := c.edit(p, s); err != nil {
		return fmt.Errorf("edit the configuration file: %w", err)
	}
	logE.Info("migrated the configuration file")
	return nil
}

func (c *Controller) edit(file, content string) error {
	stat, err := c.fs.Stat(file)
	if err != nil {
		return fmt.Errorf("get configuration file stat: %w", err)
	}
	if err := afero.WriteFile(c.fs, file, []byte(content), stat.Mode()); err != nil {
		return fmt.Errorf("write the configuration file: %w", err)
	}
	return nil
}

func (c *Controller) migrate(logE *logrus.Entry, content []byte) (string, error) {
	switch c.cfg.Version {
	case config.CurrentVersion:
		return "", nil
	case 0:
		s, err := parseConfigAST(logE, content)
		if err != nil {
			return "", err
		}
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		return s, nil
	default:
		return "", fmt.Errorf("unsupported version: %d", c.cfg.Version)
	}
}
