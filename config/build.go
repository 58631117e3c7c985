package config

import (
	"fmt"

	"github.com/tkovara/flowline/format"
	"github.com/tkovara/flowline/pipeline"
)

// BuildOptions configures how a pipeline is built from config.
type BuildOptions struct {
	// Types resolves type names in the pipeline's format block
	// (unmarshalTypeName, collectionTypeName). Required when a format block
	// uses type names.
	Types format.Resolver

	// Formats overrides the backend registry; nil uses format.DefaultRegistry.
	Formats *format.Registry

	// Context, when set, is used for format builds so the caller can read
	// diagnostics (e.g. format.DataFormatNameProperty) after building.
	Context *format.BuildContext

	// Sources is used when PipelineConfig.Source is set. The built pipeline's
	// Source is set to the registered function.
	Sources *SourceRegistry
}

// Reserved stage names wired to the pipeline's format block.
const (
	StageMarshal   = "marshal"
	StageUnmarshal = "unmarshal"
)

// BuildFormat builds the pipeline config's format block, or returns nil when
// the config has none. The build fails on an unresolvable type name; no
// backend instance is returned in that case.
func BuildFormat(cfg *PipelineConfig, opts *BuildOptions) (format.Format, error) {
	if cfg == nil || cfg.Format == nil {
		return nil, nil
	}
	bc := buildContext(opts)
	f, err := cfg.Format.Build(bc)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func buildContext(opts *BuildOptions) *format.BuildContext {
	if opts == nil {
		return &format.BuildContext{}
	}
	if opts.Context != nil {
		bc := opts.Context
		if bc.Types == nil {
			bc.Types = opts.Types
		}
		if bc.Formats == nil {
			bc.Formats = opts.Formats
		}
		return bc
	}
	return &format.BuildContext{Types: opts.Types, Formats: opts.Formats}
}

// BuildPipeline builds a pipeline.Pipeline from config and registry. Stage
// names in config must be registered, except the reserved "marshal" and
// "unmarshal" names, which require a format block and run the built format.
// The format is built once per pipeline; both reserved stages share it.
func BuildPipeline(reg *Registry, cfg *PipelineConfig, opts *BuildOptions) (*pipeline.Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	df, err := BuildFormat(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	stages := make([]pipeline.Stage, 0, len(cfg.Stages))
	for i, ref := range cfg.Stages {
		if ref.Name == "" {
			return nil, fmt.Errorf("stage %d: name required", i)
		}
		stage, err := lookupStage(reg, ref.Name, df)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		if ref.Timeout > 0 {
			stage = pipeline.WithTimeout(stage, ref.Timeout.Duration())
		}
		stages = append(stages, stage)
	}
	p := &pipeline.Pipeline{Name: cfg.Name, Stages: stages}
	setSource(p, cfg, opts)
	return p, nil
}

func lookupStage(reg *Registry, name string, df format.Format) (pipeline.Stage, error) {
	switch name {
	case StageMarshal, StageUnmarshal:
		if df == nil {
			return nil, fmt.Errorf("%q requires a format block", name)
		}
		if name == StageMarshal {
			return format.MarshalStage(df), nil
		}
		return format.UnmarshalStage(df), nil
	}
	s, ok := reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%q not in registry", name)
	}
	return s, nil
}

func setSource(p *pipeline.Pipeline, cfg *PipelineConfig, opts *BuildOptions) {
	if cfg.Source == "" || opts == nil || opts.Sources == nil {
		return
	}
	if src, ok := opts.Sources.Get(cfg.Source); ok {
		p.Source = src
	}
}

// BuildAllPipelines builds a pipeline.Pipeline for each entry in multi. Keys
// are pipeline names. If a pipeline config's Name is empty, the map key is
// used as the pipeline name. Each pipeline builds its own format instance;
// a failure in any pipeline fails the whole call without affecting siblings'
// configs.
func BuildAllPipelines(reg *Registry, multi *MultiPipelineConfig, opts *BuildOptions) (map[string]*pipeline.Pipeline, error) {
	if multi == nil {
		return nil, fmt.Errorf("MultiPipelineConfig is nil")
	}
	out := make(map[string]*pipeline.Pipeline, len(multi.Pipelines))
	for name, cfg := range multi.Pipelines {
		if cfg.Name == "" {
			cfg.Name = name
		}
		p, err := BuildPipeline(reg, &cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
