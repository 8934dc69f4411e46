package etl

import "context"

// Stage identifies where in a run an event occurred.
type Stage string

const (
	StageExtract   Stage = "extract"
	StageLoad      Stage = "load"
	StageTransform Stage = "transform"
)

// Loader writes extracted data into its staging table. The processor does not
// own the loader's lifecycle or inspect its internals; it only invokes Load
// and reads Loaded back.
//
// Load attempts the stage and returns an error on failure. Loaded reports
// whether the loader considers its work complete and is the live source of
// truth for the load stage: the processor's own flag is a snapshot taken
// immediately after Load returns, while Processor.Loaded always delegates
// here.
//
// Example:
//
//	type tableLoader struct {
//	    db   *sql.DB
//	    done bool
//	}
//
//	func (l *tableLoader) Load(ctx context.Context) error {
//	    if _, err := l.db.ExecContext(ctx, "CALL load_staging()"); err != nil {
//	        return err
//	    }
//	    l.done = true
//	    return nil
//	}
//
//	func (l *tableLoader) Loaded() bool { return l.done }
type Loader interface {
	// Load attempts the load stage.
	Load(ctx context.Context) error

	// Loaded reports whether the load stage's work is complete.
	Loaded() bool
}

// Transformer reshapes loaded staging data into its final form. Like Loader,
// it is an externally owned collaborator with a perform-and-query contract:
// Transform attempts the work, Transformed reports live completion status.
//
// The transform stage only runs after both the extract and load stages have
// completed successfully.
type Transformer interface {
	// Transform attempts the transform stage.
	Transform(ctx context.Context) error

	// Transformed reports whether the transform stage's work is complete.
	Transformed() bool
}

// Reporter receives run lifecycle notifications. Implement it when you want
// to record run timings, push metrics, or send completion notices.
//
// Start is called once before the first stage executes. Stop is called
// exactly once after the run finishes, with the cumulative stats snapshot,
// regardless of outcome.
type Reporter interface {
	// Start is called before the first stage executes.
	Start(ctx context.Context, label string)

	// Stop is called after the run completes.
	Stop(ctx context.Context, label string, stats *Stats)
}
