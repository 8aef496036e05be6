package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/yoockh/askbedrock/internal/utils"
)

const (
	MaxTokensToSample = 200
	Temperature       = 0.7

	contentTypeJSON = "application/json"
)

type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockAnthropic calls an Anthropic text-completion model hosted on Bedrock.
type BedrockAnthropic struct {
	client  invoker
	modelID string
}

func NewBedrockAnthropic(client invoker, modelID string) *BedrockAnthropic {
	return &BedrockAnthropic{client: client, modelID: modelID}
}

type completionRequest struct {
	Prompt            string  `json:"prompt"`
	MaxTokensToSample int     `json:"max_tokens_to_sample"`
	Temperature       float64 `json:"temperature"`
}

type completionResponse struct {
	Completion *string `json:"completion"`
}

// AnthropicPrompt formats a single-turn conversation for Anthropic text completion.
func AnthropicPrompt(question string) string {
	return fmt.Sprintf("\n\nHuman: %s\n\nAssistant:", question)
}

func (b *BedrockAnthropic) Close() error { return nil }

func (b *BedrockAnthropic) Complete(ctx context.Context, question string) (string, error) {
	const op = "BedrockAnthropic.Complete"

	body, err := json.Marshal(completionRequest{
		Prompt:            AnthropicPrompt(question),
		MaxTokensToSample: MaxTokensToSample,
		Temperature:       Temperature,
	})
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "encode request", err)
	}

	// modelID is passed through even when empty; Bedrock rejects it as a provider error.
	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		Body:        body,
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
	})
	if err != nil {
		if isProviderError(err) {
			return "", utils.E(utils.CodeProvider, op, "invoke model", err)
		}
		return "", utils.E(utils.CodeTransport, op, "invoke model", err)
	}
	if out == nil {
		return "", utils.E(utils.CodeMalformedResponse, op, "empty response", errors.New("no response from model"))
	}

	var res completionResponse
	if err := json.Unmarshal(out.Body, &res); err != nil {
		return "", utils.E(utils.CodeMalformedResponse, op, "decode response", err)
	}
	if res.Completion == nil {
		return "", utils.E(utils.CodeMalformedResponse, op, "decode response", errors.New(`response has no "completion" field`))
	}
	return *res.Completion, nil
}

// isProviderError reports whether Bedrock answered at all: a modeled exception,
// or any HTTP error response even when its body could not be decoded.
func isProviderError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() != 0
}
