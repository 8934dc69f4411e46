// Package etl orchestrates batch Extract-Transform-Load jobs that stage data
// through an external extractor process, a loader, and a transformer.
//
// A [Processor] owns one run for one staging table. The extract stage shells
// out to an extractor script (exit code 0 means success); the load and
// transform stages call into injected collaborators implementing the
// two-method [Loader] and [Transformer] contracts. Each stage is gated on the
// success of the stages before it, and each stage's completion is tracked and
// queryable after the run.
//
// # Quick Start
//
//	proc := etl.New("stg_orders", "extract_orders.py", "--days", 1).
//	    WithLoader(loader).
//	    WithTransformer(transformer).
//	    WithLogger(logger)
//
//	proc.Run(ctx)
//
//	if !proc.Successful() {
//	    // inspect proc.Extracted(), proc.Loaded(), proc.Transformed()
//	}
//
// Run never returns or raises an error: every failure is logged with the run
// label and the failing stage, and the caller reads the outcome from the
// status predicates. A failed stage short-circuits everything after it, so a
// broken extractor never triggers a load and a broken loader never triggers a
// transform.
//
// # Configuration
//
// Configuration follows the builder pattern: construct with New, then chain
// WithXxx methods before calling Run. All three stages are enabled by
// default; disable the ones a particular table does not need:
//
//	etl.New("stg_sessions", "extract_sessions.py").
//	    WithLoader(loader).
//	    SkipTransform().
//	    Run(ctx)
//
// Disabled stages are treated as vacuously satisfied by Successful, so a run
// that never attempted a stage is not penalized for it.
//
// # Single Use
//
// A Processor is built for exactly one run. Calling Run a second time
// re-attempts all enabled stages without resetting the completion flags from
// the first run; construct a fresh Processor per run instead.
//
// The helper subpackages (dates, files, frames, config, logging) hold the
// supporting utilities batch jobs lean on: date arithmetic, checksums and
// file generation, tabular type coercion, and TOML/CLI/env configuration.
package etl
