// Package pipeline provides single-value pipeline types. A Pipeline runs
// stages in order (optionally with its own Source for standalone use); each
// stage's output is the next stage's input.
//
// Optional pre/post hooks (Observer) let you record run state for monitoring:
// BeforePipeline (e.g. write a run record), BeforeStage/AfterStage (log
// start/end, input/output, duration), AfterPipeline (log result or error).
// Pass RunOptions{Observer: myObserver} to RunWithInput; a run ID is generated
// when none is supplied.
//
// Marshalling stages for pipelines are built from declarative data-format
// descriptors; see the format and config packages.
package pipeline
