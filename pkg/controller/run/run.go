package run

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type ParamRun struct {
	Stdout  io.Writer
	NoColor bool
}

// Run scans target files and prints findings.
// Findings don't make Run fail. Run returns an error only if target files
// can't be searched or ctx is canceled.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	filePaths, err := c.searchFiles(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	logE.WithFields(logrus.Fields{
		"root":  c.cfg.Root,
		"files": len(filePaths),
	}).Debug("found target files")

	c.reporter.Start()
	numOfFindings := 0
	for _, filePath := range filePaths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scan files: %w", err)
		}
		logE := logE.WithField("file_path", filePath)
		findings := c.scanFile(logE, filePath)
		for _, finding := range findings {
			if finding.Err == nil {
				logE.WithFields(logrus.Fields{
					"line":    finding.Line,
					"pattern": finding.Pattern,
				}).Debug("a line matched")
			}
		}
		numOfFindings += len(findings)
		c.reporter.File(filePath, findings)
	}
	c.reporter.Complete()
	logE.WithFields(logrus.Fields{
		"files":    len(filePaths),
		"findings": numOfFindings,
	}).Debug("the scan completed")
	return nil
}
