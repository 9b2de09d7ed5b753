package service

import (
	"context"
	"fmt"

	"github.com/parthk02/zomato-recommender/internal/dataset"
	"github.com/parthk02/zomato-recommender/internal/dto"
	"github.com/parthk02/zomato-recommender/internal/entity"
	"github.com/parthk02/zomato-recommender/internal/llm"
)

// GeneratorFactory produces an LLM generator on demand. Construction is
// deferred to request time so a missing credential surfaces as a recoverable
// per-request condition instead of preventing startup.
type GeneratorFactory func() (llm.Generator, error)

// RecommendService coordinates the full flow: validate and normalize user
// input, filter the dataset, then prompt the LLM and parse its answer.
type RecommendService struct {
	store         *dataset.Store
	validator     *Validator
	normalizer    *Normalizer
	newGenerator  GeneratorFactory
	maxCandidates int
}

// NewRecommendService wires the orchestrator. maxCandidates caps how many
// rows the prompt describes; values <= 0 fall back to the default.
func NewRecommendService(
	store *dataset.Store,
	validator *Validator,
	normalizer *Normalizer,
	newGenerator GeneratorFactory,
	maxCandidates int,
) *RecommendService {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxPromptCandidates
	}
	return &RecommendService{
		store:         store,
		validator:     validator,
		normalizer:    normalizer,
		newGenerator:  newGenerator,
		maxCandidates: maxCandidates,
	}
}

// PrepareResult is the outcome of validating input and selecting candidates.
// A non-empty Errors slice means the input was rejected and Query/Candidates
// are zero values.
type PrepareResult struct {
	Errors     []entity.FieldError
	Query      NormalizedQuery
	Candidates []entity.Restaurant
}

// Prepare validates and normalizes raw input, then filters the dataset.
// Validation errors short-circuit before any filtering happens.
func (s *RecommendService) Prepare(raw dto.RecommendationRequest) PrepareResult {
	if errs := s.validator.Validate(raw); len(errs) > 0 {
		return PrepareResult{Errors: errs}
	}

	query := s.normalizer.Normalize(raw)
	candidates := FilterCandidates(s.store.Rows(), query)

	return PrepareResult{Query: query, Candidates: candidates}
}

// Recommend asks the LLM to rank and explain the candidates.
//
// An empty candidate set returns an empty list without constructing the
// generator or touching the network. Gateway and parser failures come back
// as typed errors (*llm.ConfigError, *llm.TransportError, *llm.ProtocolError,
// *MalformedResponseError) so the boundary layer can map them to a response;
// none of them is fatal for the process.
func (s *RecommendService) Recommend(
	ctx context.Context,
	query NormalizedQuery,
	candidates []entity.Restaurant,
) ([]entity.Recommendation, error) {
	if len(candidates) == 0 {
		return []entity.Recommendation{}, nil
	}

	prompt := BuildPrompt(query, candidates, s.maxCandidates)

	generator, err := s.newGenerator()
	if err != nil {
		return nil, fmt.Errorf("configure LLM client: %w", err)
	}

	completion, err := generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("error calling LLM: %w", err)
	}

	return ParseRecommendations(completion)
}
