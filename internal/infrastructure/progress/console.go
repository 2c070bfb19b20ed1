package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ProgressPort = (*Console)(nil)

// Console печатает ход прогона человеку в терминал.
type Console struct {
	mu sync.Mutex
	w  io.Writer

	state   *color.Color
	element *color.Color
	ok      *color.Color
	fail    *color.Color
	dim     *color.Color
}

func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		w:       w,
		state:   color.New(color.FgCyan, color.Bold),
		element: color.New(color.FgYellow, color.Bold),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
}

func (c *Console) ShowState(_ context.Context, state entity.RunState, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Fprintf(c.w, "\n━━━ %s ━━━\n", stateTitle(state))
	if detail != "" {
		c.dim.Fprintf(c.w, "   %s\n", truncate(detail, 100))
	}
}

func (c *Console) ShowAffordance(_ context.Context, a entity.Affordance, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := a.Text
	if text == "" {
		text = "<" + a.TagName + ">"
	}
	c.element.Fprintf(c.w, "\n🖱️ [%d/%d] %s\n", a.Order+1, total, truncate(text, 60))
}

func (c *Console) ShowOutcome(_ context.Context, o entity.AffordanceOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch o.Kind {
	case entity.OutcomeCaptured:
		c.ok.Fprintf(c.w, "✓ Captured via %s\n", o.Selector)
	case entity.OutcomeTriggerFailed:
		c.fail.Fprint(c.w, "❌ Could not click: ")
		c.dim.Fprintln(c.w, truncate(o.Error, 300))
	case entity.OutcomeCaptureFailed:
		c.fail.Fprint(c.w, "❌ Capture failed: ")
		c.dim.Fprintln(c.w, truncate(o.Error, 300))
	default:
		fmt.Fprintf(c.w, "%s\n", o.Kind)
	}
}

func (c *Console) ShowSummary(_ context.Context, report *entity.RunReport, outputDir string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if report == nil {
		return
	}
	c.state.Fprintf(c.w, "\nScraping completed. Check %s for the output files.\n", outputDir)
	c.dim.Fprintf(c.w, "   discovered: %d, captured: %d, failed: %d\n",
		report.Discovered, report.Captured, report.Failed())
}

func stateTitle(state entity.RunState) string {
	titles := map[entity.RunState]string{
		entity.StateIdle:          "Idle",
		entity.StateNavigated:     "Page loaded",
		entity.StateDiscovering:   "Discovering elements",
		entity.StatePerAffordance: "Clicking elements",
		entity.StateDone:          "Done",
	}
	if t, ok := titles[state]; ok {
		return t
	}
	return string(state)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
