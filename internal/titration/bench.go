package titration

import (
	"io"
	"log/slog"

	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/equilibrium"
)

// Recorder receives drop events as they happen, for trace storage.
// Implemented by the sqlite store; a nil recorder disables recording.
type Recorder interface {
	// StartSession is called once when a solution is selected.
	StartSession(id, solution string, category chem.Category) error

	// RecordDrop is called after every drop with the appended log entry.
	RecordDrop(id string, e Entry) error
}

// Bench orchestrates measurement sessions for the presentation shell. It
// owns the catalog reference, at most one live session, and the optional
// trace recorder. All methods are synchronous and must be called from a
// single goroutine.
type Bench struct {
	catalog     *chem.Catalog
	idgen       SessionIDGenerator
	recorder    Recorder
	logger      *slog.Logger
	sessionOpts []SessionOption
	session     *Session
}

// BenchOption configures a Bench.
type BenchOption func(*Bench)

// WithIDGenerator overrides the session ID generator (tests use the fixed
// generator from internal/testutil).
func WithIDGenerator(g SessionIDGenerator) BenchOption {
	return func(b *Bench) { b.idgen = g }
}

// WithRecorder attaches a trace recorder.
func WithRecorder(r Recorder) BenchOption {
	return func(b *Bench) { b.recorder = r }
}

// WithLogger sets the bench logger. The default discards everything.
func WithLogger(l *slog.Logger) BenchOption {
	return func(b *Bench) { b.logger = l }
}

// WithSessionDefaults sets options applied to every session the bench
// creates (drop volume, titrant, initial concentrations).
func WithSessionDefaults(opts ...SessionOption) BenchOption {
	return func(b *Bench) { b.sessionOpts = opts }
}

// NewBench creates a bench over a catalog.
func NewBench(catalog *chem.Catalog, opts ...BenchOption) *Bench {
	b := &Bench{
		catalog: catalog,
		idgen:   UUIDv7Generator{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Session returns the live session, or nil before the first selection.
func (b *Bench) Session() *Session {
	return b.session
}

// SelectSolution replaces the live session with a fresh one for the named
// solution. Unknown names are a ConfigurationError. The previous session
// and its log are discarded wholesale.
func (b *Bench) SelectSolution(name string) (*Session, error) {
	spec, err := b.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(b.idgen.Generate(), spec, b.sessionOpts...)
	if err != nil {
		return nil, err
	}
	b.session = s
	b.logger.Info("solution selected",
		"session", s.ID(), "solution", spec.Name, "category", string(spec.Category))
	if b.recorder != nil {
		if err := b.recorder.StartSession(s.ID(), spec.Name, spec.Category); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddDrop forwards a drop to the live session and records the resulting
// log entry.
func (b *Bench) AddDrop(reagent Reagent) (equilibrium.MeasurementResult, error) {
	if b.session == nil {
		return equilibrium.MeasurementResult{}, errNoSolution("AddDrop")
	}
	res, err := b.session.AddDrop(reagent)
	if err != nil {
		return equilibrium.MeasurementResult{}, err
	}
	b.logger.Debug("drop added",
		"session", b.session.ID(), "reagent", string(reagent), "drops", res.Drops, "ph", res.PH)
	if b.recorder != nil {
		entries := b.session.Log()
		if err := b.recorder.RecordDrop(b.session.ID(), entries[len(entries)-1]); err != nil {
			return equilibrium.MeasurementResult{}, err
		}
	}
	return res, nil
}

// Apply executes a command object against the bench.
func (b *Bench) Apply(cmd Command) (equilibrium.MeasurementResult, error) {
	return cmd.Apply(b)
}
