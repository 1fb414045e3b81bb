package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/ingestion"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const geminiService = "gemini"

const proposalPrompt = `You help developers turn project ideas into collaborative coding projects.
Describe one project for the idea below using exactly these labelled lines:

Title: <short project title>
Description: <one or two sentence summary>
Detailed Description: <a paragraph on scope and goals>
Programming Languages: <comma separated languages>
Topics: <comma separated topics, most important first>
Difficulty: <easy, medium, hard or expert>
Experience Level: <beginner, intermediate, advanced or expert>
Estimated Duration: <number> weeks
Team Size: <number of members>

Idea: %s`

// GeneratedProposal is an assistant answer and the proposal parsed from it
type GeneratedProposal struct {
	Proposal ingestion.ProjectProposal `json:"projectData"`
	Raw      string                    `json:"rawResponse"`
}

// ProposalGenerator asks a language model to describe a project and parses
// the answer into a proposal
type ProposalGenerator struct {
	llm     llms.Model
	service string
	logger  zerolog.Logger
	options []llms.CallOption
}

func NewProposalGenerator(llm llms.Model, service string, options ...llms.CallOption) *ProposalGenerator {
	if len(options) == 0 {
		options = []llms.CallOption{llms.WithTemperature(0.7), llms.WithMaxTokens(2048)}
	}
	return &ProposalGenerator{
		llm:     llm,
		service: service,
		logger:  log.With().Str("service", service).Logger(),
		options: options,
	}
}

// NewGeminiGenerator builds a generator backed by Google Gemini
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*ProposalGenerator, error) {
	if apiKey == "" {
		return nil, errs.NewInvalidConfigError("GEMINI_API_KEY", "must be set to enable the AI assistant")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, errs.NewConfigError(geminiService, err)
	}
	return NewProposalGenerator(llm, geminiService), nil
}

// Generate returns the parsed proposal for an idea. Model failures are
// classified into rate limit, overload, content policy and availability errors.
func (g *ProposalGenerator) Generate(ctx context.Context, idea string) (*GeneratedProposal, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, errs.NewMissingRequiredFieldError("prompt")
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, fmt.Sprintf(proposalPrompt, idea), g.options...)
	if err != nil {
		g.logger.Error().Err(err).Msg("proposal generation failed")
		return nil, errs.NewLLMError(g.service, err)
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn().Msg("model returned an empty proposal")
		return nil, errs.NewEmptyModelResponseError(g.service)
	}

	proposal := ParseProposal(text)
	g.logger.Debug().
		Str("title", proposal.Title).
		Int("languages", len(proposal.ProgrammingLanguages)).
		Int("topics", len(proposal.Topics)).
		Msg("proposal generated")
	return &GeneratedProposal{Proposal: proposal, Raw: text}, nil
}
