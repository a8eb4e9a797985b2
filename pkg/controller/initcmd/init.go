package initcmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/corscheck/refs/heads/main/json-schema/corscheck.json
# corscheck - https://github.com/suzuki-shunsuke/corscheck
version: 1
# root: src
# suffixes:
#   - .ts
#   - .tsx
# exclude_dirs:
#   - name: node_modules
#     name_format: fixed_string
#   - name: __*__
#     name_format: glob
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with the template if it doesn't exist.
// An existing file is never overwritten.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.Info("created a configuration file")
	return nil
}
