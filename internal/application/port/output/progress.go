package output

import (
	"context"

	"page-explorer/internal/domain/entity"
)

type ProgressPort interface {
	ShowState(ctx context.Context, state entity.RunState, detail string)
	ShowAffordance(ctx context.Context, a entity.Affordance, total int)
	ShowOutcome(ctx context.Context, outcome entity.AffordanceOutcome)
	ShowSummary(ctx context.Context, report *entity.RunReport, outputDir string)
}
