package pipeline_test

import (
	"bytes"
	"context"
	gerrors "errors"
	"strings"
	"testing"

	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/config"
	"github.com/Frebklin/haystack/logger"
	"github.com/Frebklin/haystack/pipeline"
	"github.com/Frebklin/haystack/testutil"
)

func TestWithTracingPreservesBehavior(t *testing.T) {
	wrapped := pipeline.WithTracing(&testutil.AddFixedValue{Add: 2}, "numbers", "adder")

	if len(wrapped.InputSockets()) != 2 || len(wrapped.OutputSockets()) != 1 {
		t.Fatal("wrapper must expose the inner component's sockets")
	}

	result, err := wrapped.Run(context.Background(), map[string]any{"value": 1, "add": 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.(map[string]any)["result"] != 3 {
		t.Errorf("result = %v, want 3", result)
	}
}

func TestWithLoggingRecordsFailures(t *testing.T) {
	failing := component.New(component.Config{
		Inputs: []component.InputSocket{component.Input("a", nil)},
		Run: func(context.Context, map[string]any) (any, error) {
			return nil, gerrors.New("model overloaded")
		},
	})

	var buf bytes.Buffer
	wrapped := pipeline.WithLogging(failing, "generator", logger.NewWriter(&buf))

	if _, err := wrapped.Run(context.Background(), map[string]any{"a": 1}); err == nil {
		t.Fatal("expected the inner error")
	}
	out := buf.String()
	if !strings.Contains(out, "generator") || !strings.Contains(out, "model overloaded") {
		t.Errorf("log output %q should name the component and the error", out)
	}
}

func TestWithLoggingPassesResults(t *testing.T) {
	var buf bytes.Buffer
	wrapped := pipeline.WithLogging(testutil.Double{}, "double", logger.NewWriter(&buf))

	result, err := wrapped.Run(context.Background(), map[string]any{"value": 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.(map[string]any)["value"] != 8 {
		t.Errorf("result = %v, want 8", result)
	}
}

func TestFromSettings(t *testing.T) {
	s := &config.Settings{Name: "indexing", MaxLoopsAllowed: 3}
	s.Logging.ApplyDefaults()

	p := pipeline.FromSettings(s)
	if p.Name() != "indexing" || p.MaxLoopsAllowed() != 3 {
		t.Errorf("pipeline = %s/%d, want indexing/3", p.Name(), p.MaxLoopsAllowed())
	}
}

func TestWrappedComponentsInsidePipeline(t *testing.T) {
	p := pipeline.New()
	mustAdd(t, p, "adder", pipeline.WithTracing(&testutil.AddFixedValue{Add: 2}, "numbers", "adder"))
	mustAdd(t, p, "double", pipeline.WithLogging(testutil.Double{}, "double", logger.Nop()))
	mustConnect(t, p, "adder", "double")

	got := mustRun(t, p, map[string]any{"adder": map[string]any{"value": 1}})
	checkOutputs(t, got, map[string]map[string]any{"double": {"value": 6}})
}
