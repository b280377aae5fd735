package llm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendezap/atendezap/modules/assistant/infrastructure/llm"
	"github.com/atendezap/atendezap/pkg/testutils"
)

type stubProvider struct {
	name  string
	calls []llm.CompletionRequest
	// reply decides the outcome for each call, keyed by model.
	reply func(model string) (string, error)
}

func (p *stubProvider) Name() string {
	return p.name
}

func (p *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	p.calls = append(p.calls, req)
	return p.reply(req.Model)
}

func TestFallbackClient_FirstSuccessWins(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	provider := &stubProvider{
		name: "groq",
		reply: func(model string) (string, error) {
			if model == "model-c" {
				return "olá!", nil
			}
			return "", assert.AnError
		},
	}
	client := llm.NewFallbackClient([]llm.Tier{
		{Name: "primary", Provider: provider, Models: []string{"model-a", "model-b"}},
		{Name: "secondary", Provider: provider, Models: []string{"model-c", "model-d"}},
	}, 0, nil)

	reply, err := client.Complete(env.Ctx, "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "olá!", reply)

	// model-d is never tried once model-c succeeds.
	require.Len(t, provider.calls, 3)
	assert.Equal(t, "model-a", provider.calls[0].Model)
	assert.Equal(t, "model-b", provider.calls[1].Model)
	assert.Equal(t, "model-c", provider.calls[2].Model)
}

func TestFallbackClient_EmptyContentIsSoftFailure(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	provider := &stubProvider{
		name: "groq",
		reply: func(model string) (string, error) {
			if model == "blank" {
				return "   ", nil
			}
			return "resposta", nil
		},
	}
	client := llm.NewFallbackClient([]llm.Tier{
		{Name: "primary", Provider: provider, Models: []string{"blank", "ok"}},
	}, 0, nil)

	reply, err := client.Complete(env.Ctx, "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "resposta", reply)
	assert.Len(t, provider.calls, 2)
}

func TestFallbackClient_Exhaustion(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	provider := &stubProvider{
		name: "groq",
		reply: func(string) (string, error) {
			return "", assert.AnError
		},
	}
	client := llm.NewFallbackClient([]llm.Tier{
		{Name: "primary", Provider: provider, Models: []string{"model-a", "model-b"}},
		{Name: "secondary", Provider: provider, Models: []string{"model-c"}},
	}, 0, nil)

	_, err := client.Complete(env.Ctx, "system", "user")
	require.ErrorIs(t, err, llm.ErrAllModelsFailed)
	// Per-candidate error text stays in the logs, not in the returned error.
	assert.NotContains(t, err.Error(), assert.AnError.Error())
	assert.Len(t, provider.calls, 3)
}

func TestFallbackClient_TierParameters(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	provider := &stubProvider{
		name:  "openrouter",
		reply: func(string) (string, error) { return "ok", nil },
	}
	client := llm.NewFallbackClient([]llm.Tier{
		{Name: "openrouter", Provider: provider, Models: []string{"m"}, Temperature: 0.7, MaxTokens: 2048},
	}, 0, nil)

	_, err := client.Complete(env.Ctx, "system prompt", "user message")
	require.NoError(t, err)

	call := provider.calls[0]
	assert.Equal(t, "system prompt", call.SystemPrompt)
	assert.Equal(t, "user message", call.UserMessage)
	assert.InEpsilon(t, 0.7, call.Temperature, 1e-9)
	assert.EqualValues(t, 2048, call.MaxTokens)
}

func TestOpenAICompatProvider_AgainstHTTPServer(t *testing.T) {
	env := testutils.NewTestContext().Build(t)

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"tudo certo"}}]}`))
	}))
	defer server.Close()

	provider := llm.NewOpenAICompatProvider("groq", server.URL, "test-key", nil)
	client := llm.NewFallbackClient([]llm.Tier{
		{Name: "primary", Provider: provider, Models: []string{"a", "b", "c"}, Temperature: 0.7, MaxTokens: 1024},
	}, 0, nil)

	reply, err := client.Complete(env.Ctx, "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "tudo certo", reply)
	// One request per candidate, no HTTP-level retries.
	assert.EqualValues(t, 3, requests.Load())
}
