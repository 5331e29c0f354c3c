package observe_test

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lguimbarda/semantic-flow/flow"
	"github.com/lguimbarda/semantic-flow/flow/observe"
)

type logLine struct {
	Level   string `json:"level"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Index   *int   `json:"index"`
	Count   *int   `json:"count"`
	Element any    `json:"element"`
}

func parseLines(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var lines []logLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line logLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	p := observe.Trace(flow.Of("a", "b", "c"), logger, "letters")
	if got := flow.Slice(p.Limit(2)); len(got) != 2 {
		t.Fatalf("got %v", got)
	}

	lines := parseLines(t, &buf)
	want := []string{"traversal started", "element", "element", "traversal completed"}
	if len(lines) != len(want) {
		t.Fatalf("got %d log lines, want %d: %s", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		if line.Message != want[i] {
			t.Errorf("line %d message = %q, want %q", i, line.Message, want[i])
		}
		if line.Stage != "letters" || line.Level != "debug" {
			t.Errorf("line %d = %+v, want debug line for stage letters", i, line)
		}
	}
	if lines[2].Index == nil || *lines[2].Index != 1 || lines[2].Element != "b" {
		t.Errorf("second element line = %+v", lines[2])
	}
	if lines[3].Count == nil || *lines[3].Count != 2 {
		t.Errorf("completion line = %+v, want count 2", lines[3])
	}
}

func TestTraceRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	flow.Slice(observe.Trace(flow.Of(1, 2), logger, "quiet"))
	if buf.Len() != 0 {
		t.Errorf("debug lines written at info level: %s", buf.String())
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	p := observe.Log(flow.Of(1, 2, 3), logger, zerolog.InfoLevel, "value", strconv.Itoa)
	flow.Slice(p)

	lines := parseLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3", len(lines))
	}
	for i, line := range lines {
		if line.Level != "info" || line.Element != strconv.Itoa(i+1) {
			t.Errorf("line %d = %+v", i, line)
		}
	}
}
