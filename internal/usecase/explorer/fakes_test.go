package explorer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"

	"github.com/ysmood/gson"
)

var errNotFound = errors.New("element not found")

// fakeSession is a scripted page: every successful click switches the markup
// to the state registered for that selector.
type fakeSession struct {
	discovery   string
	evalErr     error
	navigateErr error
	initialHTML string
	afterClick  map[string]string
	htmlErr     map[string]error
	screenshot  *entity.Screenshot

	current     string
	lastClicked string
	clicks      []entity.SelectorCandidate
	navigations int
	evaluations int
}

var _ output.BrowserSession = (*fakeSession)(nil)

func (f *fakeSession) Navigate(ctx context.Context, url string) error {
	f.navigations++
	if f.navigateErr != nil {
		return f.navigateErr
	}
	f.current = f.initialHTML
	return nil
}

func (f *fakeSession) Click(ctx context.Context, c entity.SelectorCandidate) error {
	f.clicks = append(f.clicks, c)
	markup, ok := f.afterClick[c.Query]
	if !ok {
		return fmt.Errorf("%w: %s", errNotFound, c.Query)
	}
	f.current = markup
	f.lastClicked = c.Query
	return nil
}

func (f *fakeSession) Evaluate(ctx context.Context, js string) (gson.JSON, error) {
	f.evaluations++
	if f.evalErr != nil {
		return gson.New(nil), f.evalErr
	}
	return gson.NewFrom(f.discovery), nil
}

func (f *fakeSession) HTML(ctx context.Context) (string, error) {
	if err, ok := f.htmlErr[f.lastClicked]; ok {
		return "", err
	}
	return f.current, nil
}

func (f *fakeSession) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if f.screenshot == nil {
		return nil, errors.New("screenshot unavailable")
	}
	return f.screenshot, nil
}

func (f *fakeSession) CurrentURL() string { return "https://example.test/" }

func (f *fakeSession) Close() {}

func (f *fakeSession) clickedQueries() []string {
	queries := make([]string, 0, len(f.clicks))
	for _, c := range f.clicks {
		queries = append(queries, c.Query)
	}
	return queries
}

type memorySink struct {
	mu        sync.Mutex
	initial   []entity.Snapshot
	manifests [][]entity.ManifestEntry
	snapshots []entity.Snapshot

	initialErr  error
	manifestErr error
	snapshotErr map[int]error
}

var _ output.SnapshotSink = (*memorySink)(nil)

func (s *memorySink) WriteInitial(ctx context.Context, snap entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialErr != nil {
		return s.initialErr
	}
	s.initial = append(s.initial, snap)
	return nil
}

func (s *memorySink) WriteManifest(ctx context.Context, timestamp string, manifest []entity.ManifestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manifestErr != nil {
		return s.manifestErr
	}
	s.manifests = append(s.manifests, manifest)
	return nil
}

func (s *memorySink) WriteSnapshot(ctx context.Context, snap entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.snapshotErr[snap.Sequence]; ok {
		return err
	}
	s.snapshots = append(s.snapshots, snap)
	return nil
}

func (s *memorySink) Close() error { return nil }

type recordingProgress struct {
	states   []entity.RunState
	outcomes []entity.AffordanceOutcome
}

func (p *recordingProgress) ShowState(_ context.Context, state entity.RunState, _ string) {
	p.states = append(p.states, state)
}

func (p *recordingProgress) ShowAffordance(context.Context, entity.Affordance, int) {}

func (p *recordingProgress) ShowOutcome(_ context.Context, o entity.AffordanceOutcome) {
	p.outcomes = append(p.outcomes, o)
}

func (p *recordingProgress) ShowSummary(context.Context, *entity.RunReport, string) {}
