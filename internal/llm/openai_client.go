package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	temperature = 0.4
)

const systemPrompt = `You are a non-medical sleep tracking assistant.

You receive nightly sleep scores computed from wearable sleep-stage data, score trends, and a chronotype classification for a single user. Base your conclusions only on the provided data.

Each nightly score is 0-100 and is the sum of six components:
- duration (0-25, best at 7-9 hours of actual sleep),
- efficiency (0-20, actual sleep divided by time in bed),
- deep sleep (0-10, best at 15-25% of actual sleep),
- REM sleep (0-10, best at 18-28% of actual sleep),
- fragmentation (-10 to 10, fewer and shorter awakenings score higher),
- regularity (0-5, how close the sleep midpoint is to previous nights).
Quality labels: excellent (80+), good (60-79), fair (40-59), poor (below 40).

Your goals:
- Describe the user's recent sleep in clear, neutral language.
- Point out which components are holding the score back.
- Compare last night to the recent period and the longer history.
- Factor in the user's chronotype and weekend shift when they help explain patterns.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, handling naps, etc.).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's sleep, comparing last night to the recent period and longer history.",
  "observations": [
    "3-6 items about score components, sleep stages, fragmentation and midpoint regularity.",
    "At least one item comparing the recent window to the longer history.",
    "If relevant, one item about how their sleep aligns or conflicts with their chronotype."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if the midpoint std is above 45 minutes or social jetlag exceeds 60 minutes."
  ]
}

No extra fields. No comments.`

const userPromptTemplate = `Here is JSON describing this user's sleep.

- "chronotype" describes their typical mid-sleep time and type, how much the midpoint varies (mid_sleep_spread_minutes) and, when present, social_jetlag_minutes: how much later they sleep on Friday and Saturday nights than on work nights.
- "history" and "recent" summarize stored nightly scores: score, sleep_hours, efficiency, deep_pct, rem_pct and midpoint (minutes after local midnight) as avg/std/min/max, plus quality_counts and nap readiness_credit.
- "last_night" is the most recent scored night with its component breakdown, if any.

Use:
- "history" to understand the long-term baseline (about 30 nights),
- "recent" to see short-term changes (about 7 nights),
- "last_night" to judge how the most recent night compares to both.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating sleep insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// GenerateInsights asks the model for a JSON narrative about insightsCtx. The
// call is wrapped in a span carrying the model and token usage.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	ctx, span := otel.Tracer("sleep-scorer/llm").Start(ctx, "chat "+c.model,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.system", "openai"),
			attribute.String("gen_ai.request.model", c.model),
		),
	)
	defer span.End()

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "chat completion failed")
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	span.SetAttributes(
		attribute.String("gen_ai.response.model", resp.Model),
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
	)

	if len(resp.Choices) == 0 {
		span.SetStatus(codes.Error, "no choices")
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	out, err := parseInsights(resp.Choices[0].Message.Content)
	if err != nil {
		span.SetStatus(codes.Error, "unparseable answer")
		return nil, err
	}
	return out, nil
}

// parseInsights decodes the model's JSON answer. Models occasionally wrap it in a
// markdown fence despite the prompt, so a surrounding fence is stripped first.
func parseInsights(content string) (*domain.LLMInsightsOutput, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
