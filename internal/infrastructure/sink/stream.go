package sink

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

var _ output.SnapshotSink = (*Stream)(nil)

// Stream writes one JSON line per artifact to an io.Writer (default os.Stdout).
type Stream struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewStream(w io.Writer) *Stream {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Stream{enc: enc}
}

func (s *Stream) WriteInitial(_ context.Context, snap entity.Snapshot) error {
	return s.emit(envelope{Type: "initial", Data: newSnapshotEvent(snap)})
}

func (s *Stream) WriteManifest(_ context.Context, timestamp string, manifest []entity.ManifestEntry) error {
	if manifest == nil {
		manifest = []entity.ManifestEntry{}
	}
	return s.emit(envelope{Type: "manifest", Data: manifestEvent{Timestamp: timestamp, Elements: manifest}})
}

func (s *Stream) WriteSnapshot(_ context.Context, snap entity.Snapshot) error {
	return s.emit(envelope{Type: "snapshot", Data: newSnapshotEvent(snap)})
}

func (s *Stream) Close() error { return nil }

func (s *Stream) emit(e envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(e)
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type manifestEvent struct {
	Timestamp string                 `json:"timestamp"`
	Elements  []entity.ManifestEntry `json:"elements"`
}

type snapshotEvent struct {
	Sequence        int      `json:"sequence"`
	Label           string   `json:"label"`
	Timestamp       string   `json:"timestamp"`
	Markup          string   `json:"markup"`
	Tables          []string `json:"tables"`
	ScreenshotBytes int      `json:"screenshotBytes,omitempty"`
}

func newSnapshotEvent(snap entity.Snapshot) snapshotEvent {
	tables := snap.TableFragments
	if tables == nil {
		tables = []string{}
	}
	ev := snapshotEvent{
		Sequence:  snap.Sequence,
		Label:     snap.SourceLabel,
		Timestamp: snap.Timestamp,
		Markup:    snap.Markup,
		Tables:    tables,
	}
	if snap.Screenshot != nil {
		ev.ScreenshotBytes = len(snap.Screenshot.Data)
	}
	return ev
}
