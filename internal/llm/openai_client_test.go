package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_EmptyKey(t *testing.T) {
	assert.Nil(t, NewOpenAIClient("", ""))
}

func TestGenerateInsights_NilClient(t *testing.T) {
	var c *OpenAIClient
	_, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	assert.ErrorIs(t, err, ErrOpenAIUnavailable)
}

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain", `{"summary":"ok","observations":["a"],"guidance":["b"]}`, false},
		{"fenced", "```json\n{\"summary\":\"ok\",\"observations\":[],\"guidance\":[]}\n```", false},
		{"not json", "Your sleep looks fine.", true},
		{"empty summary", `{"summary":"","observations":[],"guidance":[]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseInsights(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOpenAIResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", out.Summary)
		})
	}
}

func TestGenerateInsights_AgainstFakeServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "test-model",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"summary\":\"Steady week.\",\"observations\":[\"x\"],\"guidance\":[\"y\"]}"}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("sk-test", "test-model", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NotNil(t, c)

	out, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	require.NoError(t, err)
	assert.Equal(t, "Steady week.", out.Summary)
	assert.Equal(t, []string{"x"}, out.Guidance)
}
