package explorer

import (
	"context"
	"fmt"
	"time"

	"page-explorer/internal/application/port/input"
	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

var _ input.Explorer = (*UseCase)(nil)

const (
	defaultInitialSettle = 3 * time.Second
	defaultClickSettle   = 2 * time.Second

	initialLabel = "initial"
)

// Config holds the fixed settle delays. They model client-side re-render with
// no readiness signal: the driver waits the full duration every time.
type Config struct {
	InitialSettle time.Duration
	ClickSettle   time.Duration
	Screenshots   bool
}

func DefaultConfig() Config {
	return Config{
		InitialSettle: defaultInitialSettle,
		ClickSettle:   defaultClickSettle,
	}
}

// UseCase — драйвер взаимодействия: навигация, discovery, затем по одному
// клику на каждый найденный элемент со снапшотом после каждого клика.
type UseCase struct {
	session   output.BrowserSession
	sink      output.SnapshotSink
	logger    output.LoggerPort
	progress  output.ProgressPort
	discovery *Discovery
	capturer  *Capturer
	cfg       Config

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(
	session output.BrowserSession,
	sink output.SnapshotSink,
	logger output.LoggerPort,
	progress output.ProgressPort,
	cfg Config,
) *UseCase {
	if progress == nil {
		progress = noopProgress{}
	}
	return &UseCase{
		session:   session,
		sink:      sink,
		logger:    logger,
		progress:  progress,
		discovery: NewDiscovery(session),
		capturer:  NewCapturer(session, logger, cfg.Screenshots),
		cfg:       cfg,
		now:       time.Now,
		sleep:     settle,
	}
}

// Explore runs one full pass over url. A non-nil error means a fatal failure;
// per-affordance failures are only recorded in the report.
func (uc *UseCase) Explore(ctx context.Context, url string) (*entity.RunReport, error) {
	ts := entity.RunTimestamp(uc.now())
	report := &entity.RunReport{
		URL:       url,
		Timestamp: ts,
		State:     entity.StateIdle,
		Outcomes:  []entity.AffordanceOutcome{},
	}
	log := uc.logger.WithFields(map[string]any{"url": url, "run": ts})

	log.Info("Accessing page")
	if err := uc.session.Navigate(ctx, url); err != nil {
		log.Error("Navigation failed", "error", err)
		return report, fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := uc.sleep(ctx, uc.cfg.InitialSettle); err != nil {
		return report, fmt.Errorf("initial settle: %w", err)
	}

	initial, err := uc.capturer.Capture(ctx, entity.InitialSequence, initialLabel, ts)
	if err != nil {
		log.Error("Initial capture failed", "error", err)
		return report, fmt.Errorf("capture initial snapshot: %w", err)
	}
	if err := uc.sink.WriteInitial(ctx, initial); err != nil {
		return report, fmt.Errorf("write initial snapshot: %w", err)
	}
	uc.transition(ctx, report, entity.StateNavigated, uc.session.CurrentURL())

	uc.transition(ctx, report, entity.StateDiscovering, "")
	affordances, err := uc.discovery.Discover(ctx)
	if err != nil {
		log.Error("Discovery failed", "error", err)
		return report, err
	}
	report.Discovered = len(affordances)
	log.Info("Affordances discovered", "count", len(affordances))

	if err := uc.sink.WriteManifest(ctx, ts, entity.NewManifest(affordances)); err != nil {
		return report, fmt.Errorf("write manifest: %w", err)
	}

	if len(affordances) > 0 {
		uc.transition(ctx, report, entity.StatePerAffordance, fmt.Sprintf("%d elements", len(affordances)))
	}

	for _, a := range affordances {
		uc.progress.ShowAffordance(ctx, a, len(affordances))

		outcome, err := uc.process(ctx, log, a, ts)
		if err != nil {
			log.Error("Run aborted", "order", a.Order, "error", err)
			return report, fmt.Errorf("affordance %d: %w", a.Order, err)
		}

		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Kind == entity.OutcomeCaptured {
			report.Captured++
		}
		uc.progress.ShowOutcome(ctx, outcome)
	}

	uc.transition(ctx, report, entity.StateDone, "")
	log.Info("Run completed", "discovered", report.Discovered, "captured", report.Captured)
	return report, nil
}

// process handles one affordance: SelectAttempt → TriggerOk|TriggerFailed →
// Settle → Capture. Only session-level failures are returned as errors.
func (uc *UseCase) process(ctx context.Context, log output.LoggerPort, a entity.Affordance, ts string) (entity.AffordanceOutcome, error) {
	log = log.WithFields(map[string]any{"order": a.Order, "text": a.Text})
	outcome := entity.AffordanceOutcome{Order: a.Order, Text: a.Text}

	log.Debug("Clicking element")
	result := Trigger(ctx, uc.session, entity.Candidates(a))
	if !result.Matched() {
		err := result.Err()
		if isFatal(ctx, err) {
			return outcome, err
		}
		log.Warn("Could not click element", "attempts", len(result.Attempts), "error", err)
		outcome.Kind = entity.OutcomeTriggerFailed
		outcome.Error = err.Error()
		return outcome, nil
	}
	outcome.Selector = result.Candidate.Query

	if err := uc.sleep(ctx, uc.cfg.ClickSettle); err != nil {
		return outcome, err
	}

	snap, err := uc.capturer.Capture(ctx, a.Order, entity.SanitizeLabel(a.Text), ts)
	if err == nil {
		err = uc.sink.WriteSnapshot(ctx, snap)
	}
	if err != nil {
		if isFatal(ctx, err) {
			return outcome, err
		}
		log.Warn("Capture failed", "error", err)
		outcome.Kind = entity.OutcomeCaptureFailed
		outcome.Error = err.Error()
		return outcome, nil
	}

	log.Info("Snapshot captured", "selector", outcome.Selector, "tables", len(snap.TableFragments))
	outcome.Kind = entity.OutcomeCaptured
	return outcome, nil
}

func (uc *UseCase) transition(ctx context.Context, report *entity.RunReport, state entity.RunState, detail string) {
	uc.logger.Debug("State transition", "from", report.State, "to", state)
	report.State = state
	uc.progress.ShowState(ctx, state, detail)
}

// settle is a plain fixed wait; only context cancellation cuts it short.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type noopProgress struct{}

func (noopProgress) ShowState(context.Context, entity.RunState, string) {}
func (noopProgress) ShowAffordance(context.Context, entity.Affordance, int) {}
func (noopProgress) ShowOutcome(context.Context, entity.AffordanceOutcome) {}
func (noopProgress) ShowSummary(context.Context, *entity.RunReport, string) {}
