package triage

import (
	"context"
	"strings"

	"github.com/brunohpsv/medagendar/internal/observability/metrics"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// FallbackClient wraps a Client so external failures degrade to fixed
// messages instead of propagating. A nil inner client always falls back,
// which covers deployments without an API key.
type FallbackClient struct {
	inner   Client
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
}

// WithFallback builds the degradation wrapper every caller goes through.
func WithFallback(inner Client, logger *logging.Logger, m *metrics.BookingMetrics) *FallbackClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackClient{inner: inner, logger: logger, metrics: m}
}

// Analyze never returns an error; failures resolve to AnalyzeFallback.
func (c *FallbackClient) Analyze(ctx context.Context, symptoms string) (string, error) {
	if strings.TrimSpace(symptoms) == "" {
		return AnalyzeFallback, nil
	}
	if c.inner == nil {
		c.metrics.ObserveTriage("fallback")
		return AnalyzeFallback, nil
	}
	reply, err := c.inner.Analyze(ctx, symptoms)
	if err != nil {
		c.logger.Warn("triage analyze failed, using fallback", "error", err)
		c.metrics.ObserveTriage("fallback")
		return AnalyzeFallback, nil
	}
	c.metrics.ObserveTriage("ok")
	return reply, nil
}

// RecommendSpecialists never returns an error; failures resolve to
// RecommendFallback.
func (c *FallbackClient) RecommendSpecialists(ctx context.Context, query string) (string, error) {
	if c.inner == nil || strings.TrimSpace(query) == "" {
		c.metrics.ObserveTriage("fallback")
		return RecommendFallback, nil
	}
	reply, err := c.inner.RecommendSpecialists(ctx, query)
	if err != nil {
		c.logger.Warn("triage recommend failed, using fallback", "error", err)
		c.metrics.ObserveTriage("fallback")
		return RecommendFallback, nil
	}
	c.metrics.ObserveTriage("ok")
	return reply, nil
}
