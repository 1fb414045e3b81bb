package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techsync/techsync-backend/errs"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel answers every prompt with a fixed text or error
type fakeModel struct {
	answer  string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.answer}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestProposalGenerator_Generate(t *testing.T) {
	model := &fakeModel{answer: labelledAnswer}
	gen := NewProposalGenerator(model, "fake")

	got, err := gen.Generate(context.Background(), "  a chess engine  ")
	require.NoError(t, err)

	assert.Equal(t, "Chess AI", got.Proposal.Title)
	assert.Equal(t, labelledAnswer, got.Raw)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Idea: a chess engine")
}

func TestProposalGenerator_BlankPrompt(t *testing.T) {
	model := &fakeModel{answer: labelledAnswer}
	gen := NewProposalGenerator(model, "fake")

	_, err := gen.Generate(context.Background(), " \n ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
	assert.Empty(t, model.prompts)
}

func TestProposalGenerator_EmptyAnswer(t *testing.T) {
	gen := NewProposalGenerator(&fakeModel{answer: "   "}, "fake")

	_, err := gen.Generate(context.Background(), "idea")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmptyModelResponse)
}

func TestProposalGenerator_ModelErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited", errors.New("googleapi: Error 429: Resource has been exhausted"), http.StatusTooManyRequests},
		{"overloaded", errors.New("googleapi: Error 503: The model is overloaded"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewProposalGenerator(&fakeModel{err: tt.err}, "fake")

			_, err := gen.Generate(context.Background(), "idea")
			require.Error(t, err)
			assert.Equal(t, tt.status, errs.StatusCode(err))
		})
	}
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), "", "gemini-1.5-flash")
	require.Error(t, err)
	assert.Nil(t, gen)
}
