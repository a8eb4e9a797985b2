package run

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	errNotText = errors.New("the file isn't valid UTF-8 text")

	// \r\n and a lone \r end a line as well as \n.
	newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n") //nolint:gochecknoglobals
)

// scanFile returns findings of a file in ascending order of line numbers.
// If the file can't be read, the only finding is the error.
func (c *Controller) scanFile(logE *logrus.Entry, filePath string) []*Finding {
	content, err := c.readFile(filePath)
	if err != nil {
		logerr.WithError(logE, err).Debug("read a file")
		return []*Finding{
			{
				File: filePath,
				Err:  err,
			},
		}
	}
	return scanLines(c.patterns, filePath, content)
}

func (c *Controller) readFile(filePath string) (string, error) {
	b, err := afero.ReadFile(c.fs, filePath)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	if !utf8.Valid(b) {
		return "", errNotText
	}
	return string(b), nil
}

// scanLines records each line matching any pattern once.
// Line numbers start from 1.
func scanLines(patterns []*Pattern, filePath, content string) []*Finding {
	var findings []*Finding
	for i, line := range strings.Split(newlineReplacer.Replace(content), "\n") {
		p := matchLine(patterns, line)
		if p == nil {
			continue
		}
		findings = append(findings, &Finding{
			File:    filePath,
			Line:    i + 1,
			Text:    strings.TrimSpace(line),
			Pattern: p.Name,
		})
	}
	return findings
}
