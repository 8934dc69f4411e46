package etl

import (
	"encoding/json"
	"log/slog"
	"sync/atomic"
)

// Stats tracks stage outcomes across a processor's lifetime with thread-safe
// access. Counter fields use atomic operations so a Reporter may read them
// while a run is in flight.
type Stats struct {
	runs        atomic.Int64
	extracted   atomic.Int64
	loaded      atomic.Int64
	transformed atomic.Int64
	failures    atomic.Int64
}

// NewStats creates a Stats with initial counter values.
func NewStats(runs, extracted, loaded, transformed, failures int64) *Stats {
	s := &Stats{}
	s.runs.Store(runs)
	s.extracted.Store(extracted)
	s.loaded.Store(loaded)
	s.transformed.Store(transformed)
	s.failures.Store(failures)
	return s
}

// Runs returns the number of times Run was invoked.
func (s *Stats) Runs() int64 { return s.runs.Load() }

// Extracted returns the number of successful extract stages.
func (s *Stats) Extracted() int64 { return s.extracted.Load() }

// Loaded returns the number of successful load stages.
func (s *Stats) Loaded() int64 { return s.loaded.Load() }

// Transformed returns the number of successful transform stages.
func (s *Stats) Transformed() int64 { return s.transformed.Load() }

// Failures returns the number of stage failures encountered.
func (s *Stats) Failures() int64 { return s.failures.Load() }

// LogValue implements slog.LogValuer for structured logging.
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("runs", s.Runs()),
		slog.Int64("extracted", s.Extracted()),
		slog.Int64("loaded", s.Loaded()),
		slog.Int64("transformed", s.Transformed()),
		slog.Int64("failures", s.Failures()),
	)
}

// statsJSON is the JSON representation for marshaling/unmarshaling Stats.
type statsJSON struct {
	Runs        int64 `json:"runs"`
	Extracted   int64 `json:"extracted"`
	Loaded      int64 `json:"loaded"`
	Transformed int64 `json:"transformed"`
	Failures    int64 `json:"failures"`
}

// MarshalJSON implements json.Marshaler for Stats serialization.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(statsJSON{
		Runs:        s.runs.Load(),
		Extracted:   s.extracted.Load(),
		Loaded:      s.loaded.Load(),
		Transformed: s.transformed.Load(),
		Failures:    s.failures.Load(),
	})
}

// UnmarshalJSON implements json.Unmarshaler for Stats deserialization.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var v statsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.runs.Store(v.Runs)
	s.extracted.Store(v.Extracted)
	s.loaded.Store(v.Loaded)
	s.transformed.Store(v.Transformed)
	s.failures.Store(v.Failures)
	return nil
}

func (s *Stats) incRuns(n int64) int64        { return s.runs.Add(n) }
func (s *Stats) incExtracted(n int64) int64   { return s.extracted.Add(n) }
func (s *Stats) incLoaded(n int64) int64      { return s.loaded.Add(n) }
func (s *Stats) incTransformed(n int64) int64 { return s.transformed.Add(n) }
func (s *Stats) incFailures(n int64) int64    { return s.failures.Add(n) }
