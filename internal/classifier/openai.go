package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/pkg/formatting"
)

const classifyFunction = "classify_document"

const systemPrompt = `You are a freight document classifier. Given the text of an
uploaded document, determine which of the following types it is:

- bol: a bill of lading issued by a carrier acknowledging receipt of cargo
- pod: a proof of delivery signed at the destination
- invoice: a freight invoice or bill for transportation charges
- other: any document that does not fit the above types

Call the classify_document function with the type, your confidence between
0 and 1, and a short reason for the decision.`

var classifySchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"type": {
			Type:        jsonschema.String,
			Description: "The freight document type.",
			Enum:        []string{"bol", "pod", "invoice", "other"},
		},
		"confidence": {
			Type:        jsonschema.Number,
			Description: "Classification confidence between 0 and 1.",
		},
		"reason": {
			Type:        jsonschema.String,
			Description: "Short rationale for the classification.",
		},
	},
	Required: []string{"type", "confidence", "reason"},
}

type classifyPayload struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// OpenAI classifies document text through a chat completion with a forced
// function call constrained to the taxonomy schema. The client is
// explicitly constructed and injected; it holds no global state.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewOpenAI creates an OpenAI classifier from the given configuration.
func NewOpenAI(cfg *Config, logger *slog.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.TimeoutDuration(),
		logger:  logger.With("system", "classifier"),
	}
}

// Classify performs exactly one external call and decodes the response.
// Service errors and timeouts wrap ErrServiceFailure; unusable response
// content degrades to the fallback parser rather than failing.
func (c *OpenAI) Classify(ctx context.Context, in Input) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: in.Text},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        classifyFunction,
					Description: "Record the classification of a freight document.",
					Parameters:  classifySchema,
				},
			},
		},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: classifyFunction},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceFailure, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response contained no choices", ErrServiceFailure)
	}

	result := decodeMessage(resp.Choices[0].Message)

	c.logger.Debug("classification decoded",
		"type", result.Type,
		"confidence", result.Confidence,
		"source", result.Source,
	)

	return &result, nil
}

// decodeMessage resolves the response into a tagged Result: a valid
// function-call payload yields a structured result; JSON emitted as plain
// or fenced message content is decoded next; anything else degrades to
// regex extraction over the content.
func decodeMessage(msg openai.ChatCompletionMessage) Result {
	for _, call := range msg.ToolCalls {
		if call.Function.Name != classifyFunction {
			continue
		}

		var payload classifyPayload
		if err := json.Unmarshal([]byte(call.Function.Arguments), &payload); err != nil {
			break
		}

		if result, ok := structuredResult(payload); ok {
			return result
		}
		break
	}

	if payload, err := formatting.Parse[classifyPayload](msg.Content); err == nil {
		if result, ok := structuredResult(payload); ok {
			return result
		}
	}

	return ParseFallback(msg.Content)
}

func structuredResult(payload classifyPayload) (Result, bool) {
	t, err := documents.ParseDocumentType(payload.Type)
	if err != nil {
		return Result{}, false
	}

	return Result{
		Type:       t,
		Confidence: clamp(payload.Confidence),
		Reason:     payload.Reason,
		Source:     SourceStructured,
	}, true
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
