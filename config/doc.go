// Package config provides a stage registry and human-readable pipeline configuration.
//
// Register stages by name, then define pipelines in YAML (or structs) that
// reference those names and optional modifiers (timeout). A pipeline may carry
// a format block describing its data format; the reserved stage names
// "marshal" and "unmarshal" run the built format:
//
//	name: orders
//	format:
//	  library: jsoniter
//	  prettyPrint: true
//	  unmarshalTypeName: com.example.Order
//	stages:
//	  - unmarshal
//	  - name: enrich
//	    timeout: 60s
//	  - marshal
//
// Build a pipeline with BuildPipeline(registry, config, opts). Type names in
// the format block are resolved through BuildOptions.Types; set
// BuildOptions.Context to read build diagnostics (which backend was selected)
// afterwards.
package config
