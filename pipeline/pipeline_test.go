package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPipeline_RunWithInput(t *testing.T) {
	p := &Pipeline{
		Name: "math",
		Stages: []Stage{
			Transform(func(ctx context.Context, n int) (int, error) { return n * 2, nil }),
			Transform(func(ctx context.Context, n int) (int, error) { return n + 1, nil }),
		},
	}
	out, err := p.RunWithInput(context.Background(), 20, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != 41 {
		t.Errorf("got %v", out)
	}
}

func TestPipeline_RunWithSource(t *testing.T) {
	p := &Pipeline{
		Name:   "sourced",
		Source: func(ctx context.Context) (interface{}, error) { return 5, nil },
		Stages: []Stage{
			Transform(func(ctx context.Context, n int) (int, error) { return n * n, nil }),
		},
	}
	out, err := p.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != 25 {
		t.Errorf("got %v", out)
	}
}

func TestPipeline_StageErrorStops(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	p := &Pipeline{
		Stages: []Stage{
			func(ctx context.Context, input interface{}) (interface{}, error) { return nil, boom },
			Tap(func(context.Context, interface{}) { ran = true }),
		},
	}
	_, err := p.RunWithInput(context.Background(), nil, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("error: %v", err)
	}
	if !strings.Contains(err.Error(), "stage 0") {
		t.Errorf("error should name the stage: %v", err)
	}
	if ran {
		t.Error("later stage ran after failure")
	}
}

func TestTransform_TypeMismatch(t *testing.T) {
	s := Transform(func(ctx context.Context, n int) (int, error) { return n, nil })
	_, err := s(context.Background(), "nope")
	if err == nil || !strings.Contains(err.Error(), "transform") {
		t.Errorf("error: %v", err)
	}
}

// recordingObserver records hook invocations.
type recordingObserver struct {
	runID  string
	before int
	after  int
	stages []int
}

func (o *recordingObserver) BeforePipeline(ctx context.Context, runID, name string, payload interface{}) error {
	o.runID = runID
	o.before++
	return nil
}

func (o *recordingObserver) AfterPipeline(ctx context.Context, runID string, result interface{}, err error) error {
	o.after++
	return nil
}

func (o *recordingObserver) BeforeStage(ctx context.Context, runID string, stageIndex int, input interface{}) error {
	o.stages = append(o.stages, stageIndex)
	return nil
}

func (o *recordingObserver) AfterStage(ctx context.Context, runID string, stageIndex int, input, output interface{}, stageErr error, duration time.Duration) error {
	return nil
}

func TestPipeline_ObserverHooks(t *testing.T) {
	obs := &recordingObserver{}
	p := &Pipeline{
		Name:   "observed",
		Stages: []Stage{Identity(), Identity()},
	}
	_, err := p.RunWithInput(context.Background(), "x", &RunOptions{Observer: obs})
	if err != nil {
		t.Fatal(err)
	}
	if obs.runID == "" {
		t.Error("run ID should be generated")
	}
	if obs.before != 1 || obs.after != 1 {
		t.Errorf("pipeline hooks: before=%d after=%d", obs.before, obs.after)
	}
	if len(obs.stages) != 2 || obs.stages[0] != 0 || obs.stages[1] != 1 {
		t.Errorf("stage indices: %v", obs.stages)
	}
}

func TestPipeline_ObserverKeepsRunID(t *testing.T) {
	obs := &recordingObserver{}
	p := &Pipeline{Stages: []Stage{Identity()}}
	_, err := p.RunWithInput(context.Background(), nil, &RunOptions{Observer: obs, RunID: "run-1"})
	if err != nil {
		t.Fatal(err)
	}
	if obs.runID != "run-1" {
		t.Errorf("runID: %q", obs.runID)
	}
}
