package output

import (
	"context"

	"page-explorer/internal/domain/entity"
)

// SnapshotSink принимает артефакты прогона. Владение снапшотом переходит к sink.
type SnapshotSink interface {
	WriteInitial(ctx context.Context, snap entity.Snapshot) error
	WriteManifest(ctx context.Context, timestamp string, manifest []entity.ManifestEntry) error
	WriteSnapshot(ctx context.Context, snap entity.Snapshot) error
	Close() error
}
