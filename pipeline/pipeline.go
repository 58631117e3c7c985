package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is a single step in a pipeline. It receives the output of the previous
// stage (or the source) and returns the input for the next stage.
type Stage func(ctx context.Context, input interface{}) (interface{}, error)

// ConvertFunc converts a value of type A to type B. Used by Transform to build a stage.
type ConvertFunc[A, B any] func(ctx context.Context, a A) (B, error)

// Transform returns a stage that converts the previous stage's output (type A)
// to type B. Use it between stages: stage1 | Transform(convert) | stage2, where
// stage1 outputs A and stage2 expects B.
func Transform[A, B any](convert ConvertFunc[A, B]) Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		a, ok := input.(A)
		if !ok {
			var zero A
			return nil, fmt.Errorf("transform: expected %T, got %T", zero, input)
		}
		return convert(ctx, a)
	}
}

// Pipeline runs a linear chain of stages (stage1 | stage2 | ...). Optionally
// Source can be set for standalone Run(ctx); when the payload is supplied by
// the caller, use RunWithInput and Source is ignored.
type Pipeline struct {
	Name   string
	Source func(ctx context.Context) (interface{}, error) // optional; used only by Run(ctx)
	Stages []Stage
}

// Run executes the pipeline: runs the source (if non-nil), then runs each stage
// in order. Returns the last stage's output or the first error.
func (p *Pipeline) Run(ctx context.Context) (interface{}, error) {
	var out interface{}
	var err error
	if p.Source != nil {
		out, err = p.Source(ctx)
		if err != nil {
			return nil, err
		}
	}
	return p.RunWithInput(ctx, out, nil)
}

// RunWithInput runs the pipeline's stages starting with the given input. The
// payload is piped to the first stage; each stage's output is the next stage's
// input. Returns the last stage's output or the first error.
// If opts is non-nil and opts.Observer is set, pre/post hooks are called for
// the pipeline and each stage.
func (p *Pipeline) RunWithInput(ctx context.Context, input interface{}, opts *RunOptions) (interface{}, error) {
	if opts == nil || opts.Observer == nil {
		return p.runStages(ctx, input, nil, "")
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	if err := opts.Observer.BeforePipeline(ctx, runID, p.Name, input); err != nil {
		return nil, fmt.Errorf("before pipeline: %w", err)
	}
	result, err := p.runStages(ctx, input, opts.Observer, runID)
	if postErr := opts.Observer.AfterPipeline(ctx, runID, result, err); postErr != nil {
		// Don't mask pipeline error
		if err == nil {
			err = fmt.Errorf("after pipeline: %w", postErr)
		}
	}
	return result, err
}

func (p *Pipeline) runStages(ctx context.Context, input interface{}, obs Observer, runID string) (interface{}, error) {
	out := input
	for i, stage := range p.Stages {
		if obs != nil {
			if err := obs.BeforeStage(ctx, runID, i, out); err != nil {
				return nil, fmt.Errorf("before stage %d: %w", i, err)
			}
		}
		start := time.Now()
		next, stageErr := stage(ctx, out)
		duration := time.Since(start)
		if obs != nil {
			if postErr := obs.AfterStage(ctx, runID, i, out, next, stageErr, duration); postErr != nil {
				if stageErr == nil {
					stageErr = fmt.Errorf("after stage: %w", postErr)
				}
			}
		}
		if stageErr != nil {
			return nil, fmt.Errorf("stage %d: %w", i, stageErr)
		}
		out = next
	}
	return out, nil
}

// Observer provides pre/post hooks for pipeline and stage execution so you can
// record run state (e.g. to a DB) for monitoring. BeforePipeline is called
// before any stage runs; BeforeStage/AfterStage are called around each stage;
// AfterPipeline is called when the pipeline finishes (success or error).
type Observer interface {
	BeforePipeline(ctx context.Context, runID, name string, payload interface{}) error
	AfterPipeline(ctx context.Context, runID string, result interface{}, err error) error
	BeforeStage(ctx context.Context, runID string, stageIndex int, input interface{}) error
	AfterStage(ctx context.Context, runID string, stageIndex int, input, output interface{}, stageErr error, duration time.Duration) error
}

// RunOptions attaches an Observer and an optional RunID to a run. If Observer
// is set and RunID is empty, a new UUID is generated for the run.
type RunOptions struct {
	Observer Observer
	RunID    string
}
