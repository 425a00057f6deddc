// Package availability wraps the schedule engine for callers that
// want logging, metrics and label caching around the pure functions.
// The engine stays pure; everything stateful lives here.
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"menuboard/internal/metrics"
	"menuboard/internal/schedule"
)

// Result is one availability evaluation.
type Result struct {
	Open  bool
	Label string
}

// Service evaluates effective schedules against wall-clock instants.
type Service struct {
	labels   schedule.Labels
	packName string
	logger   *zerolog.Logger
	cache    Cache
}

// NewService builds a service. cache may be nil to disable caching;
// packName keys cache entries so switching label packs never serves a
// stale language.
func NewService(labels schedule.Labels, packName string, logger *zerolog.Logger, cache Cache) *Service {
	return &Service{labels: labels, packName: packName, logger: logger, cache: cache}
}

// Evaluate resolves open/closed at now for an already override-resolved
// schedule and produces the display label. A nil schedule is always
// open with no label.
func (s *Service) Evaluate(ctx context.Context, eff schedule.Weekly, now time.Time) Result {
	at := schedule.At(now)
	open := schedule.IsOpenAt(eff, at)
	metrics.IncAvailabilityCheck(open)

	if eff == nil {
		return Result{Open: true}
	}

	// Describe depends only on the schedule, the label pack and the
	// open/closed outcome, so that triple is the whole cache key.
	key := fmt.Sprintf("menuboard:label:%s:%s:%t", s.packName, scheduleHash(eff), open)

	if s.cache != nil {
		if label, err := s.cache.Get(ctx, key); err == nil {
			metrics.IncLabelCache(true)
			return Result{Open: open, Label: label}
		}
		metrics.IncLabelCache(false)
	}

	label := schedule.Describe(eff, at, s.labels)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, label); err != nil {
			s.logger.Debug().Err(err).Msg("label cache write failed")
		}
	}

	s.logger.Debug().
		Bool("open", open).
		Str("at", fmt.Sprintf("%s %s", at.Day, at.Time)).
		Msg("availability evaluated")

	return Result{Open: open, Label: label}
}

// scheduleHash fingerprints a schedule via its canonical wire form.
func scheduleHash(w schedule.Weekly) string {
	data, err := json.Marshal(w)
	if err != nil {
		// Wire marshaling of a normalized schedule cannot fail.
		panic(err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64())
}
