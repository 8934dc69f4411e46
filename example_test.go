package etl_test

import (
	"context"

	etl "github.com/blast-analytics-marketing/blast-developer-tools"
)

// sessionLoader loads the extracted session file into its staging table.
type sessionLoader struct {
	done bool
}

func (l *sessionLoader) Load(_ context.Context) error {
	// copy data/stg_sessions.csv into the warehouse here
	l.done = true
	return nil
}

func (l *sessionLoader) Loaded() bool { return l.done }

// sessionTransformer reshapes the staging rows into the reporting tables.
type sessionTransformer struct {
	done bool
}

func (tr *sessionTransformer) Transform(_ context.Context) error {
	tr.done = true
	return nil
}

func (tr *sessionTransformer) Transformed() bool { return tr.done }

func ExampleNew() {
	proc := etl.New("stg_sessions", "extract_sessions.py", "--days", 7).
		WithLoader(&sessionLoader{}).
		WithTransformer(&sessionTransformer{})

	proc.Run(context.Background())

	if !proc.Successful() {
		// inspect proc.Extracted(), proc.Loaded(), proc.Transformed()
		return
	}
}
