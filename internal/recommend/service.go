// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// ErrNotConfigured is returned when a recommender has not been set.
var ErrNotConfigured = errors.New("recommender not configured")

const numStrategies = 4

// Service orchestrates the recommendation pipeline.
//
// Components are set once during startup. Recommend is safe for concurrent
// use afterwards; all per-request state lives in a Snapshot.
type Service struct {
	config   *Config
	logger   zerolog.Logger
	combiner *Combiner

	collaborative Recommender
	contentBased  Recommender
	diversifier   Diversifier
	recorder      Recorder

	requestCount   atomic.Int64
	errorCount     atomic.Int64
	totalLatencyUS atomic.Int64
	strategyCounts [numStrategies]atomic.Int64
}

// NewService creates a new recommendation service. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(cfg *Config, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Clone()
	return &Service{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		combiner: NewCombiner(cfg),
	}, nil
}

// SetCollaborative sets the collaborative recommender.
func (s *Service) SetCollaborative(r Recommender) {
	s.collaborative = r
	s.logger.Info().Str("recommender", r.Name()).Msg("registered collaborative recommender")
}

// SetContentBased sets the content-based recommender.
func (s *Service) SetContentBased(r Recommender) {
	s.contentBased = r
	s.logger.Info().Str("recommender", r.Name()).Msg("registered content-based recommender")
}

// SetDiversifier sets the diversity reranker. Without one, results are
// returned in hybrid order.
func (s *Service) SetDiversifier(d Diversifier) {
	s.diversifier = d
	s.logger.Info().Str("diversifier", d.Name()).Msg("registered diversifier")
}

// SetRecorder sets the metrics recorder.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// Config returns a copy of the service configuration.
func (s *Service) Config() *Config {
	return s.config.Clone()
}

// Recommend produces the ranked recommendation list for a request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	s.requestCount.Add(1)

	requested, err := s.validateRequest(&req)
	if err != nil {
		s.errorCount.Add(1)
		s.observe("invalid", start, 0, err)
		return nil, err
	}

	if s.collaborative == nil || s.contentBased == nil {
		s.errorCount.Add(1)
		s.observe(requested.String(), start, 0, ErrNotConfigured)
		return nil, ErrNotConfigured
	}

	req = s.prepareRequest(ctx, req)
	logger := s.createRequestLogger(ctx, req, requested)
	logger.Debug().Msg("processing recommendation request")

	if err := ctx.Err(); err != nil {
		s.errorCount.Add(1)
		s.observe(requested.String(), start, 0, err)
		return nil, err
	}

	snap := NewSnapshot(req.UserID, req.Interactions, req.Catalog, req.WatchedMovies)
	in := CombineInput{
		Strategy:         requested,
		UserRatingCount:  snap.UserRatingCount(),
		TotalRatingCount: snap.TotalRatingCount(),
		Exclude:          snap.Excluded,
		Limit:            req.Limit,
	}

	sel := s.combiner.Resolve(in)
	in.Strategy = sel.Strategy
	in.Weights = sel.Weights
	s.strategyCounts[sel.Strategy].Add(1)
	if s.recorder != nil {
		s.recorder.ObserveStrategySelection(requested.String(), sel.Strategy.String())
	}

	in.Collaborative, in.ContentBased, err = s.collectCandidates(ctx, snap, sel.Strategy, in.UserRatingCount, req.Limit*s.config.Limits.CandidateMultiplier)
	if err != nil {
		s.errorCount.Add(1)
		s.observe(sel.Strategy.String(), start, 0, err)
		logger.Warn().Err(err).Msg("candidate generation failed")
		return nil, fmt.Errorf("collect candidates: %w", err)
	}

	items := s.combiner.Combine(in)

	diversified := false
	if *req.Diversify && s.diversifier != nil && len(items) > 1 {
		items = s.diversifier.Diversify(items, *req.DiversityFactor)
		diversified = true
	}

	resp := &Response{
		Items:    items,
		Metadata: s.buildResponseMetadata(req, requested, sel, snap, in, diversified, start),
	}

	s.totalLatencyUS.Add(time.Since(start).Microseconds())
	s.observe(sel.Strategy.String(), start, len(items), nil)

	logger.Debug().
		Str("strategy", sel.Strategy.String()).
		Int("collaborative_candidates", len(in.Collaborative)).
		Int("content_candidates", len(in.ContentBased)).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// validateRequest applies struct tag validation, the configured limit cap
// and strategy parsing. Strategy names are case-insensitive.
func (s *Service) validateRequest(req *Request) (Strategy, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return StrategyAdaptive, verr
	}
	if req.Limit > s.config.Limits.MaxLimit {
		return StrategyAdaptive, validation.NewFieldError("limit", "lte", strconv.Itoa(s.config.Limits.MaxLimit), req.Limit)
	}
	strategy, err := ParseStrategy(req.Strategy)
	if err != nil {
		return StrategyAdaptive, validation.NewFieldError("strategy", "oneof", strategyNames, req.Strategy)
	}
	return strategy, nil
}

// prepareRequest applies defaults and assigns a request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	if req.Limit == 0 {
		req.Limit = s.config.Limits.DefaultLimit
	}

	if req.Diversify == nil {
		enabled := s.config.Diversity.Enabled
		req.Diversify = &enabled
	}

	if req.DiversityFactor == nil {
		factor := s.config.Diversity.Factor
		req.DiversityFactor = &factor
	}

	return req
}

// createRequestLogger builds on the logger carried by ctx when there is one,
// and on the service logger otherwise.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) createRequestLogger(ctx context.Context, req Request, strategy Strategy) zerolog.Logger {
	base := s.logger
	if l, ok := logging.ContextLogger(ctx); ok {
		base = l.With().Str("component", "recommend").Logger()
	}
	return base.With().
		Str("request_id", req.RequestID).
		Int("user_id", req.UserID).
		Str("strategy", strategy.String()).
		Int("limit", req.Limit).
		Logger()
}

// collectCandidates asks only the recommenders the strategy consumes,
// concurrently when both are needed.
func (s *Service) collectCandidates(ctx context.Context, snap *Snapshot, strategy Strategy, userRatings, n int) (collab, content []Candidate, err error) {
	g, gctx := errgroup.WithContext(ctx)

	useCollab := strategy.needsCollaborative(userRatings, s.config)
	useContent := strategy.needsContentBased(userRatings, s.config)

	if useCollab {
		g.Go(func() error {
			c, err := s.collaborative.Recommend(gctx, snap, n)
			if err != nil {
				return fmt.Errorf("%s: %w", s.collaborative.Name(), err)
			}
			collab = c
			return nil
		})
	}

	if useContent {
		g.Go(func() error {
			c, err := s.contentBased.Recommend(gctx, snap, n)
			if err != nil {
				return fmt.Errorf("%s: %w", s.contentBased.Name(), err)
			}
			content = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if s.recorder != nil {
		if useCollab {
			s.recorder.ObserveCandidates("collaborative", len(collab))
		}
		if useContent {
			s.recorder.ObserveCandidates("content", len(content))
		}
	}

	return collab, content, nil
}

//nolint:gocritic // hugeParam: values passed for immutability
func (s *Service) buildResponseMetadata(req Request, requested Strategy, sel Selection, snap *Snapshot, in CombineInput, diversified bool, start time.Time) ResponseMetadata {
	md := ResponseMetadata{
		RequestID:               req.RequestID,
		UserID:                  req.UserID,
		RequestedStrategy:       requested.String(),
		Strategy:                sel.Strategy.String(),
		UserRatings:             snap.UserRatingCount(),
		TotalRatings:            snap.TotalRatingCount(),
		CollaborativeCandidates: len(in.Collaborative),
		ContentCandidates:       len(in.ContentBased),
		Diversified:             diversified,
		LatencyMS:               time.Since(start).Milliseconds(),
		Timestamp:               time.Now().UTC(),
	}
	if diversified {
		md.DiversityFactor = *req.DiversityFactor
	}
	if sel.Strategy == StrategyWeighted {
		w := sel.Weights
		md.Weights = &w
	}
	return md
}

func (s *Service) observe(strategy string, start time.Time, results int, err error) {
	if s.recorder == nil {
		return
	}
	if strategy == "" {
		strategy = StrategyAdaptive.String()
	}
	s.recorder.ObserveRecommendation(strategy, time.Since(start), results, err)
}

// Metrics returns a snapshot of the service counters.
func (s *Service) Metrics() Metrics {
	requests := s.requestCount.Load()
	errs := s.errorCount.Load()

	m := Metrics{
		RequestCount:   requests,
		ErrorCount:     errs,
		StrategyCounts: make(map[string]int64, numStrategies-1),
	}

	for _, st := range []Strategy{StrategyWeighted, StrategySwitching, StrategyCascade} {
		m.StrategyCounts[st.String()] = s.strategyCounts[st].Load()
	}

	if ok := requests - errs; ok > 0 {
		m.AverageLatencyMS = float64(s.totalLatencyUS.Load()) / float64(ok) / 1000.0
	}

	return m
}
