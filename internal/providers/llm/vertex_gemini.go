package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"github.com/yoockh/askbedrock/internal/utils"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type generator interface {
	GenerateContent(ctx context.Context, parts ...vertexgenai.Part) (*vertexgenai.GenerateContentResponse, error)
}

type VertexGemini struct {
	client *vertexgenai.Client
	model  generator
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	m.SetMaxOutputTokens(MaxTokensToSample)
	m.SetTemperature(Temperature)
	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error {
	if v.client == nil {
		return nil
	}
	return v.client.Close()
}

// Complete sends the question as a single user turn; Gemini needs no prompt wrapper.
func (v *VertexGemini) Complete(ctx context.Context, question string) (string, error) {
	const op = "VertexGemini.Complete"

	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(question))
	if err != nil {
		if isAPIError(err) {
			return "", utils.E(utils.CodeProvider, op, "generate content", err)
		}
		return "", utils.E(utils.CodeTransport, op, "generate content", err)
	}
	if resp == nil {
		return "", utils.E(utils.CodeMalformedResponse, op, "empty response", errors.New("no response from model"))
	}

	var sb strings.Builder
	found := false
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
				found = true
			}
		}
		// first candidate with content wins
		if found {
			break
		}
	}
	if !found {
		return "", utils.E(utils.CodeMalformedResponse, op, "decode response", errors.New("response has no text candidates"))
	}
	return sb.String(), nil
}

// isAPIError reports whether the backend answered with a status, as opposed to the call failing in transit.
func isAPIError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return true
	}
	if s, ok := status.FromError(err); ok && s != nil {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.Unknown:
			return false
		}
		return true
	}
	return false
}
