package coordinator

import (
	"log/slog"
)

// ClearReport empties the report ledger.
func (c *Coordinator) ClearReport() {
	c.ledger.Clear()
	c.saveReport()
}

// ExportReport writes the ledger to path. An empty path means the user
// cancelled.
func (c *Coordinator) ExportReport(path string) error {
	if path == "" {
		return nil
	}

	if err := c.persister.ExportReport(path, c.ledger); err != nil {
		c.logger.Error(
			"report export failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return err
	}

	c.logger.Info("report exported", slog.String("path", path))

	return nil
}

// ImportReport replaces the ledger with the document at path and saves it
// as the current report. On failure the ledger is left untouched. An empty
// path means the user cancelled.
func (c *Coordinator) ImportReport(path string) error {
	if path == "" {
		return nil
	}

	l, err := c.persister.ImportReport(path)
	if err != nil {
		c.logger.Error(
			"report import failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return err
	}

	c.ledger.ImportReplace(l)
	c.saveReport()

	c.logger.Info("report imported", slog.String("path", path))

	return nil
}
