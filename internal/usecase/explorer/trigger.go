package explorer

import (
	"context"
	"errors"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"
)

type TriggerStatus int

const (
	TriggerExhausted TriggerStatus = iota
	TriggerMatched
)

type CandidateAttempt struct {
	Candidate entity.SelectorCandidate
	Err       error
}

// TriggerResult — исход попытки активировать элемент: matched или exhausted.
type TriggerResult struct {
	Status    TriggerStatus
	Candidate entity.SelectorCandidate
	Attempts  []CandidateAttempt
}

func (r TriggerResult) Matched() bool {
	return r.Status == TriggerMatched
}

// Err joins the errors of every failed attempt; nil when matched.
func (r TriggerResult) Err() error {
	if r.Matched() {
		return nil
	}
	if len(r.Attempts) == 0 {
		return errNoCandidates
	}
	errs := make([]error, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		errs = append(errs, a.Err)
	}
	return errors.Join(errs...)
}

var errNoCandidates = errors.New("no selector candidates")

// Trigger clicks the first candidate that resolves, in priority order.
// A session-level failure stops the chain: later candidates cannot do better.
func Trigger(ctx context.Context, driver output.PageDriver, candidates []entity.SelectorCandidate) TriggerResult {
	result := TriggerResult{Status: TriggerExhausted}

	for _, c := range candidates {
		err := driver.Click(ctx, c)
		if err == nil {
			result.Status = TriggerMatched
			result.Candidate = c
			return result
		}

		result.Attempts = append(result.Attempts, CandidateAttempt{Candidate: c, Err: err})
		if isFatal(ctx, err) {
			break
		}
	}

	return result
}

func isFatal(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, output.ErrSessionClosed)
}
