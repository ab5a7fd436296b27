package c1

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/internal/retry"
)

// DefaultBaseURL is the Thesys C1 embed endpoint.
const DefaultBaseURL = "https://api.thesys.dev/v1/embed"

// DefaultModel is the C1 model route used when none is configured.
const DefaultModel = "openai/c1/anthropic/claude-sonnet-4/v-20251230"

// Client wraps the OpenAI SDK to implement voyage.ChatProvider against the
// C1 endpoint.
type Client struct {
	client   *openai.Client
	baseURL  string
	model    string
	metadata map[string]string
	retries  retry.Config
}

// RetryConfig holds retry parameters for transient request failures.
type RetryConfig = retry.Config

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return retry.DefaultConfig()
}

// DisabledRetryConfig returns a configuration that disables retries.
func DisabledRetryConfig() RetryConfig {
	return retry.Disabled()
}

// ClientOption configures the C1 client.
type ClientOption func(*Client)

// WithModel sets the default model route for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL overrides the C1 endpoint URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithMetadata sets metadata attached to every request, merged with any
// per-request metadata. Custom component schemas go here.
func WithMetadata(metadata map[string]string) ClientOption {
	return func(c *Client) {
		c.metadata = metadata
	}
}

// WithRetry overrides the retry behavior for transient request failures.
func WithRetry(cfg RetryConfig) ClientOption {
	return func(c *Client) {
		c.retries = cfg
	}
}

// New creates a C1 client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		retries: retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
	)
	c.client = &client
	return c
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []voyage.Message, opts ...voyage.Option) (*voyage.Response, error) {
	options := voyage.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	resp, err := retry.Do(ctx, c.retries, func() (*openai.ChatCompletion, error) {
		return c.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	return &voyage.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: voyage.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		ToolCalls: extractToolCalls(resp.Choices[0].Message.ToolCalls),
	}, nil
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []voyage.Message, opts ...voyage.Option) (<-chan voyage.StreamEvent, error) {
	options := voyage.ApplyOptions(opts...)
	params := c.buildParams(messages, options)
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	// Establishment failures surface on the first Next, so attempt it before
	// handing the stream off; transient failures get a fresh connection.
	return retry.DoStream(ctx, c.retries, func() (<-chan voyage.StreamEvent, error) {
		stream := c.client.Chat.Completions.NewStreaming(ctx, params)
		hasFirst := stream.Next()
		if !hasFirst {
			if err := stream.Err(); err != nil {
				return nil, err
			}
		}

		ch := make(chan voyage.StreamEvent)
		go func() {
			defer close(ch)
			var acc openai.ChatCompletionAccumulator

			for ok := hasFirst; ok; ok = stream.Next() {
				chunk := stream.Current()
				acc.AddChunk(chunk)

				if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
					ch <- voyage.StreamEvent{
						Delta: chunk.Choices[0].Delta.Content,
					}
				}
			}

			if err := stream.Err(); err != nil {
				ch <- voyage.StreamEvent{Err: err}
				return
			}

			response := &voyage.Response{
				Usage: voyage.Usage{
					InputTokens:  int(acc.Usage.PromptTokens),
					OutputTokens: int(acc.Usage.CompletionTokens),
				},
			}
			if len(acc.Choices) > 0 {
				completion := acc.Choices[0]
				response.Content = completion.Message.Content
				response.FinishReason = string(completion.FinishReason)
				response.ToolCalls = extractToolCalls(completion.Message.ToolCalls)
			}
			ch <- voyage.StreamEvent{Done: true, Response: response}
		}()

		return ch, nil
	})
}

func (c *Client) buildParams(messages []voyage.Message, options *voyage.Options) openai.ChatCompletionNewParams {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
	}

	if metadata := c.mergeMetadata(options.Metadata); len(metadata) > 0 {
		params.SetExtraFields(map[string]any{"metadata": metadata})
	}
	return params
}

// mergeMetadata overlays per-request metadata on the client-level metadata.
func (c *Client) mergeMetadata(override map[string]string) map[string]string {
	if len(c.metadata) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]string, len(c.metadata)+len(override))
	for k, v := range c.metadata {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func convertMessages(messages []voyage.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case voyage.RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		case voyage.RoleAssistant:
			if len(msg.ToolCalls) > 0 {
				toolCalls := make([]openai.ChatCompletionMessageToolCallParam, len(msg.ToolCalls))
				for i, tc := range msg.ToolCalls {
					toolCalls[i] = openai.ChatCompletionMessageToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: tc.Arguments,
						},
					}
				}
				assistantMsg := openai.ChatCompletionAssistantMessageParam{
					ToolCalls: toolCalls,
				}
				result = append(result, openai.ChatCompletionMessageParamUnion{
					OfAssistant: &assistantMsg,
				})
			} else {
				result = append(result, openai.AssistantMessage(msg.Content))
			}
		case voyage.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case voyage.RoleTool:
			// One tool message per result
			for _, tr := range msg.ToolResults {
				result = append(result, openai.ToolMessage(tr.Content, tr.ToolCallID))
			}
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}

func convertTools(tools []voyage.Tool) []openai.ChatCompletionToolParam {
	if len(tools) == 0 {
		return nil
	}
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		var params shared.FunctionParameters
		if len(t.Parameters) > 0 {
			json.Unmarshal(t.Parameters, &params)
		}
		result[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  params,
			},
		}
	}
	return result
}

func extractToolCalls(toolCalls []openai.ChatCompletionMessageToolCall) []voyage.ToolCall {
	if len(toolCalls) == 0 {
		return nil
	}
	result := make([]voyage.ToolCall, len(toolCalls))
	for i, tc := range toolCalls {
		result[i] = voyage.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}
	return result
}

var _ voyage.ChatProvider = (*Client)(nil)
