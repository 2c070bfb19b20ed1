package sink

import (
	"context"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

var _ output.SnapshotSink = (*Router)(nil)

// Router fans out artifacts to all configured sinks. One sink error does
// not block the others; errors are logged and the first one is returned.
type Router struct {
	sinks  []output.SnapshotSink
	logger output.LoggerPort
}

func NewRouter(logger output.LoggerPort, sinks ...output.SnapshotSink) *Router {
	return &Router{sinks: sinks, logger: logger}
}

func (r *Router) WriteInitial(ctx context.Context, snap entity.Snapshot) error {
	return r.each("write initial", func(s output.SnapshotSink) error {
		return s.WriteInitial(ctx, snap)
	})
}

func (r *Router) WriteManifest(ctx context.Context, timestamp string, manifest []entity.ManifestEntry) error {
	return r.each("write manifest", func(s output.SnapshotSink) error {
		return s.WriteManifest(ctx, timestamp, manifest)
	})
}

func (r *Router) WriteSnapshot(ctx context.Context, snap entity.Snapshot) error {
	return r.each("write snapshot", func(s output.SnapshotSink) error {
		return s.WriteSnapshot(ctx, snap)
	})
}

func (r *Router) Close() error {
	return r.each("close", func(s output.SnapshotSink) error {
		return s.Close()
	})
}

func (r *Router) each(op string, fn func(output.SnapshotSink) error) error {
	var firstErr error
	for _, s := range r.sinks {
		if err := fn(s); err != nil {
			r.logger.Warn("Sink failed", "op", op, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
