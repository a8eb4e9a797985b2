package run

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// searchFiles walks the root directory and returns files whose name ends with one of the suffixes.
// Paths that can't be read are skipped, so a missing root directory results in no file.
func (c *Controller) searchFiles(logE *logrus.Entry) ([]string, error) {
	root := c.cfg.Root
	files := []string{}
	if err := afero.Walk(c.fs, root, func(p string, info fs.FileInfo, e error) error {
		if e != nil {
			logerr.WithError(logE, e).WithField("path", p).Debug("skip a path that can't be read")
			return nil
		}
		if info.IsDir() {
			if p == root {
				return nil
			}
			f, err := c.cfg.IsExcludedDir(info.Name())
			if err != nil {
				return fmt.Errorf("check if a directory is excluded: %w", logerr.WithFields(err, logrus.Fields{
					"path": p,
				}))
			}
			if f {
				logE.WithField("path", p).Debug("skip an excluded directory")
				return filepath.SkipDir
			}
			return nil
		}
		if c.isTargetFile(info.Name()) {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk the directory: %w", err)
	}
	return files, nil
}

func (c *Controller) isTargetFile(name string) bool {
	for _, suffix := range c.cfg.Suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
