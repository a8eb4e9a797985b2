// Package log creates the logrus entry shared by every corscheck command.
package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
	logutil "github.com/suzuki-shunsuke/logrus-util/log"
)

func New(version string) *logrus.Entry {
	return logutil.New("corscheck", version)
}

// Set configures the level and the color of the logger behind logE.
// Empty values keep the current settings.
func Set(logE *logrus.Entry, level, color string) error {
	if err := logutil.Set(logE, level, color); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	return nil
}
