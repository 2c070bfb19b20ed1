package sink

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"page-explorer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	sc := bufio.NewScanner(buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var ev map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		events = append(events, ev)
	}
	require.NoError(t, sc.Err())
	return events
}

func TestStream_EmitsOneLinePerArtifact(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	ctx := context.Background()

	require.NoError(t, s.WriteInitial(ctx, entity.Snapshot{Sequence: entity.InitialSequence, Markup: "<p>a</p>", Timestamp: ts}))
	require.NoError(t, s.WriteManifest(ctx, ts, nil))
	require.NoError(t, s.WriteSnapshot(ctx, entity.Snapshot{
		Sequence:       1,
		SourceLabel:    "Financials",
		Markup:         "<table></table>",
		TableFragments: []string{"<table></table>"},
		Timestamp:      ts,
		Screenshot:     &entity.Screenshot{Data: []byte{1, 2, 3}},
	}))
	require.NoError(t, s.Close())

	events := decodeLines(t, &buf)
	require.Len(t, events, 3)

	assert.Equal(t, "initial", events[0]["type"])
	initial := events[0]["data"].(map[string]any)
	assert.EqualValues(t, -1, initial["sequence"])
	assert.Equal(t, []any{}, initial["tables"])

	assert.Equal(t, "manifest", events[1]["type"])
	assert.Equal(t, []any{}, events[1]["data"].(map[string]any)["elements"])

	assert.Equal(t, "snapshot", events[2]["type"])
	snap := events[2]["data"].(map[string]any)
	assert.Equal(t, "Financials", snap["label"])
	assert.Equal(t, "<table></table>", snap["markup"])
	assert.EqualValues(t, 3, snap["screenshotBytes"])
}
