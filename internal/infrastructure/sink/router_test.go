package sink

import (
	"context"
	"errors"
	"testing"

	"page-explorer/internal/domain/entity"
	"page-explorer/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingSink struct {
	initial, manifests, snapshots, closed int
	err                                   error
}

func (s *countingSink) WriteInitial(context.Context, entity.Snapshot) error {
	s.initial++
	return s.err
}

func (s *countingSink) WriteManifest(context.Context, string, []entity.ManifestEntry) error {
	s.manifests++
	return s.err
}

func (s *countingSink) WriteSnapshot(context.Context, entity.Snapshot) error {
	s.snapshots++
	return s.err
}

func (s *countingSink) Close() error {
	s.closed++
	return s.err
}

func TestRouter_FansOut(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	r := NewRouter(logger.NewNop(), a, b)
	ctx := context.Background()

	require.NoError(t, r.WriteInitial(ctx, entity.Snapshot{}))
	require.NoError(t, r.WriteManifest(ctx, ts, nil))
	require.NoError(t, r.WriteSnapshot(ctx, entity.Snapshot{}))
	require.NoError(t, r.Close())

	for _, s := range []*countingSink{a, b} {
		assert.Equal(t, 1, s.initial)
		assert.Equal(t, 1, s.manifests)
		assert.Equal(t, 1, s.snapshots)
		assert.Equal(t, 1, s.closed)
	}
}

func TestRouter_ErrorDoesNotBlockOthers(t *testing.T) {
	errFirst := errors.New("disk full")
	failing := &countingSink{err: errFirst}
	alsoFailing := &countingSink{err: errors.New("pipe closed")}
	healthy := &countingSink{}

	core, logs := observer.New(zapcore.WarnLevel)
	r := NewRouter(logger.NewWithCore(core), failing, alsoFailing, healthy)

	err := r.WriteSnapshot(context.Background(), entity.Snapshot{Sequence: 2})
	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, 1, healthy.snapshots)
	assert.Equal(t, 2, logs.FilterMessage("Sink failed").Len())
}
