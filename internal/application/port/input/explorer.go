package input

import (
	"context"

	"page-explorer/internal/domain/entity"
)

type Explorer interface {
	Explore(ctx context.Context, url string) (*entity.RunReport, error)
}
