package etl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Default configuration values.
const (
	DefaultInterpreter    = "python"
	DefaultExtractTimeout = 240 * time.Second
)

// defaultLogger writes failures and stage outcomes to standard output when no
// logger is injected.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Processor sequences one ETL run for a single staging table: an external
// extractor process, then a loader, then a transformer. Stage toggles are
// fixed at construction; completion flags start false and are set only on
// confirmed success, never reset within a run.
//
// Construct with [New], configure with the WithXxx/SkipXxx builder methods,
// then call [Processor.Run] exactly once and read the outcome from the status
// predicates.
type Processor struct {
	label       string
	script      string
	interpreter string
	args        []string

	loader      Loader
	transformer Transformer
	reporter    Reporter
	logger      *slog.Logger
	timeout     time.Duration

	extractEnabled   bool
	loadEnabled      bool
	transformEnabled bool

	extracted   bool
	loaded      bool
	transformed bool

	stats Stats
}

// New creates a Processor for the given staging-table label and extractor
// script. Extra arguments are appended to the extractor command line in
// order, coerced to text.
//
// All three stages are enabled by default. The load and transform stages
// additionally require a collaborator via WithLoader and WithTransformer; an
// enabled stage with no collaborator is a collaborator failure at run time,
// logged like any other.
func New(label, script string, args ...any) *Processor {
	p := &Processor{
		label:            label,
		script:           script,
		interpreter:      DefaultInterpreter,
		timeout:          DefaultExtractTimeout,
		extractEnabled:   true,
		loadEnabled:      true,
		transformEnabled: true,
	}
	for _, arg := range args {
		p.args = append(p.args, fmt.Sprint(arg))
	}
	return p
}

// WithLoader sets the load-stage collaborator.
func (p *Processor) WithLoader(l Loader) *Processor {
	p.loader = l
	return p
}

// WithTransformer sets the transform-stage collaborator.
func (p *Processor) WithTransformer(t Transformer) *Processor {
	p.transformer = t
	return p
}

// WithReporter sets an optional run lifecycle reporter.
func (p *Processor) WithReporter(r Reporter) *Processor {
	p.reporter = r
	return p
}

// WithLogger sets the logging sink for stage outcomes and failures.
// A nil logger falls back to a plain text handler on standard output.
func (p *Processor) WithLogger(logger *slog.Logger) *Processor {
	p.logger = logger
	return p
}

// WithInterpreter overrides the interpreter token that prefixes the extractor
// command line. Defaults to DefaultInterpreter.
func (p *Processor) WithInterpreter(interpreter string) *Processor {
	if interpreter != "" {
		p.interpreter = interpreter
	}
	return p
}

// WithTimeout overrides the extractor process deadline.
// Defaults to DefaultExtractTimeout. Values <= 0 are ignored.
func (p *Processor) WithTimeout(d time.Duration) *Processor {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// SkipExtract disables the extract stage. Note that load and transform gate
// on extraction success, so skipping extraction skips them too.
func (p *Processor) SkipExtract() *Processor {
	p.extractEnabled = false
	return p
}

// SkipLoad disables the load stage.
func (p *Processor) SkipLoad() *Processor {
	p.loadEnabled = false
	return p
}

// SkipTransform disables the transform stage.
func (p *Processor) SkipTransform() *Processor {
	p.transformEnabled = false
	return p
}

// Run executes the enabled stages in fixed order: extract, load, transform.
// A later stage is only attempted when its toggle is set and all prior stages
// completed successfully.
//
// Run never returns or propagates an error. Extractor failures (launch,
// timeout, non-zero exit) and collaborator failures (returned errors and
// panics alike) are logged with the run label and failing stage, and the run
// ends with whatever flags were set before the failure. Read the outcome from
// [Processor.Successful] and the per-stage predicates.
//
// A Processor is single-use: a second Run re-attempts all enabled stages
// without resetting the completion flags from the first run.
func (p *Processor) Run(ctx context.Context) {
	p.stats.incRuns(1)

	if p.reporter != nil {
		p.reporter.Start(ctx, p.label)
	}
	defer func() {
		if r := recover(); r != nil {
			p.stats.incFailures(1)
			p.log().Error("run aborted", "label", p.label, "panic", r)
		}
		if p.reporter != nil {
			p.reporter.Stop(ctx, p.label, &p.stats)
		}
	}()

	if p.extractEnabled {
		p.extract(ctx)
	}

	if p.loadEnabled && p.Extracted() {
		if err := p.loader.Load(ctx); err != nil {
			p.stats.incFailures(1)
			p.log().Error("stage failed", "label", p.label, "stage", StageLoad, "error", err)
			return
		}
		p.loaded = p.loader.Loaded()
		if p.loaded {
			p.stats.incLoaded(1)
		}
	}

	if p.transformEnabled && p.Extracted() && p.Loaded() {
		if err := p.transformer.Transform(ctx); err != nil {
			p.stats.incFailures(1)
			p.log().Error("stage failed", "label", p.label, "stage", StageTransform, "error", err)
			return
		}
		p.transformed = p.transformer.Transformed()
		if p.transformed {
			p.stats.incTransformed(1)
		}
	}
}

// Extracted reports whether the extract stage completed successfully.
func (p *Processor) Extracted() bool { return p.extracted }

// Loaded delegates to the loader's live status. The processor's own flag is
// only a snapshot taken during Run; the loader remains the source of truth.
func (p *Processor) Loaded() bool {
	if p.loader == nil {
		return false
	}
	return p.loader.Loaded()
}

// Transformed delegates to the transformer's live status.
func (p *Processor) Transformed() bool {
	if p.transformer == nil {
		return false
	}
	return p.transformer.Transformed()
}

// Successful reports the aggregate outcome of the run. Disabled stages are
// treated as vacuously satisfied: with load disabled the run succeeds on
// extraction alone, and with transform disabled on extraction plus load.
func (p *Processor) Successful() bool {
	if !p.loadEnabled {
		return p.Extracted()
	}
	if !p.transformEnabled {
		return p.Extracted() && p.Loaded()
	}
	return p.Extracted() && p.Loaded() && p.Transformed()
}

// Stats returns the processor's cumulative stage counters.
func (p *Processor) Stats() *Stats { return &p.stats }

// Command returns the full extractor command line: interpreter, script, then
// the stringified arguments in order.
func (p *Processor) Command() []string {
	cmd := make([]string, 0, len(p.args)+2)
	cmd = append(cmd, p.interpreter, p.script)
	cmd = append(cmd, p.args...)
	return cmd
}

func (p *Processor) String() string {
	return fmt.Sprintf("Processor %s", p.label)
}

func (p *Processor) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return defaultLogger
}
