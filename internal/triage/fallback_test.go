package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply string
	err   error
	calls int
}

func (s *stubClient) Analyze(ctx context.Context, symptoms string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubClient) RecommendSpecialists(ctx context.Context, query string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	stub := &stubClient{reply: "Procure um dermatologista."}
	c := WithFallback(stub, nil, nil)

	reply, err := c.Analyze(context.Background(), "manchas na pele")
	require.NoError(t, err)
	assert.Equal(t, "Procure um dermatologista.", reply)
	assert.Equal(t, 1, stub.calls)
}

func TestFallbackOnProviderError(t *testing.T) {
	stub := &stubClient{err: errors.New("quota exceeded")}
	c := WithFallback(stub, nil, nil)

	reply, err := c.Analyze(context.Background(), "enxaqueca")
	require.NoError(t, err, "triage must never surface a hard error")
	assert.Equal(t, AnalyzeFallback, reply)

	reply, err = c.RecommendSpecialists(context.Background(), "dor no joelho")
	require.NoError(t, err)
	assert.Equal(t, RecommendFallback, reply)
}

func TestFallbackWithoutInnerClient(t *testing.T) {
	c := WithFallback(nil, nil, nil)

	reply, err := c.Analyze(context.Background(), "enxaqueca")
	require.NoError(t, err)
	assert.Equal(t, AnalyzeFallback, reply)
}

func TestFallbackOnEmptyInput(t *testing.T) {
	stub := &stubClient{reply: "should not be called"}
	c := WithFallback(stub, nil, nil)

	reply, err := c.Analyze(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, AnalyzeFallback, reply)
	assert.Zero(t, stub.calls)
}
