package explorer

import (
	"context"
	"fmt"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
	"page-explorer/internal/infrastructure/markup"
)

// Capturer снимает текущее состояние DOM. Страницу только читает.
type Capturer struct {
	reader      output.PageReader
	logger      output.LoggerPort
	screenshots bool
}

func NewCapturer(reader output.PageReader, logger output.LoggerPort, screenshots bool) *Capturer {
	return &Capturer{
		reader:      reader,
		logger:      logger,
		screenshots: screenshots,
	}
}

// Capture builds one snapshot. Tables are taken from the same markup that is
// stored in the snapshot, so both always describe a single DOM state.
func (c *Capturer) Capture(ctx context.Context, sequence int, label, timestamp string) (entity.Snapshot, error) {
	html, err := c.reader.HTML(ctx)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("read markup: %w", err)
	}

	tables, err := markup.Tables(html)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("extract tables: %w", err)
	}

	snap := entity.Snapshot{
		Sequence:       sequence,
		SourceLabel:    label,
		Markup:         html,
		TableFragments: tables,
		Timestamp:      timestamp,
	}

	if c.screenshots {
		shot, err := c.reader.Screenshot(ctx)
		if err != nil {
			c.logger.Warn("Screenshot failed", "sequence", sequence, "error", err)
		} else {
			snap.Screenshot = shot
		}
	}

	return snap, nil
}
