package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/domain/service"
	"finsight/internal/infra/insight"
	"finsight/internal/usecase"

	"github.com/google/uuid"
)

type insightService struct {
	cfg             *config.Config
	generators      []service.InsightGenerator
	fallback        service.InsightGenerator
	transactionRepo repository.TransactionRepository
	profileRepo     repository.UserProfileRepository
	goalRepo        repository.GoalRepository
	messageRepo     repository.InsightMessageRepository
	logger          *slog.Logger
	now             func() time.Time
}

// NewInsightService creates a new insight service instance. The generators
// are remote model candidates in priority order; the fallback always
// produces an answer locally and is consulted last.
func NewInsightService(
	cfg *config.Config,
	generators []service.InsightGenerator,
	fallback service.InsightGenerator,
	transactionRepo repository.TransactionRepository,
	profileRepo repository.UserProfileRepository,
	goalRepo repository.GoalRepository,
	messageRepo repository.InsightMessageRepository,
	logger *slog.Logger,
) usecase.InsightUsecase {
	return &insightService{
		cfg:             cfg,
		generators:      generators,
		fallback:        fallback,
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		goalRepo:        goalRepo,
		messageRepo:     messageRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Generate builds the financial context for the user, walks the generator
// cascade until one produces an answer, and records the exchange in the
// chat history. The call never fails for model availability reasons.
func (s *insightService) Generate(ctx context.Context, userID uuid.UUID, query string) (*usecase.InsightOutput, error) {
	insightCtx, err := s.buildContext(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	answer, source := s.generate(ctx, insightCtx)

	s.recordExchange(ctx, userID, query, answer)

	return &usecase.InsightOutput{
		Answer: answer,
		Source: source,
	}, nil
}

// buildContext assembles the read-only generation input from the user's
// recent transactions, goals, profile and chat history.
func (s *insightService) buildContext(ctx context.Context, userID uuid.UUID, query string) (*entity.InsightContext, error) {
	cfg := s.cfg.Insight

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load user profile: %w", err)
		}
		// No profile is fine; generators fall back to neutral wording.
		profile = nil
	}

	since := entity.NormalizeDate(s.now()).AddDate(0, 0, -cfg.ContextWindowDays)
	transactions, err := s.transactionRepo.FindRecentByUser(ctx, userID, since, cfg.ContextLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	goals, err := s.goalRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	history, err := s.messageRepo.FindRecentByUser(ctx, userID, cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	return &entity.InsightContext{
		Profile:      profile,
		Transactions: transactions,
		Goals:        goals,
		History:      history,
		Query:        query,
	}, nil
}

// generate walks the cascade: remote candidates in order, then the local
// fallback. A candidate failure only skips to the next candidate.
func (s *insightService) generate(ctx context.Context, insightCtx *entity.InsightContext) (answer, source string) {
	for _, generator := range s.generators {
		text, err := generator.Generate(ctx, insightCtx)
		if err == nil {
			return text, generator.Name()
		}

		s.logger.Warn("insight candidate failed, trying next",
			slog.String("model", generator.Name()),
			slog.String("reason", insight.SkipReason(err)),
			slog.Any("error", err),
		)
	}

	// The local generator is deterministic and never fails.
	text, _ := s.fallback.Generate(ctx, insightCtx)

	return text, s.fallback.Name()
}

// recordExchange appends the question and answer to the chat history.
// History write failures are logged and swallowed; the answer was already
// produced and the user should still receive it.
func (s *insightService) recordExchange(ctx context.Context, userID uuid.UUID, query, answer string) {
	now := s.now()

	if query != "" {
		userMsg := &entity.InsightMessage{
			ID:        uuid.New(),
			UserID:    userID,
			Role:      entity.InsightRoleUser,
			Content:   query,
			CreatedAt: now,
		}
		if err := s.messageRepo.Create(ctx, userMsg); err != nil {
			s.logger.Warn("failed to record user message", slog.Any("error", err))

			return
		}
	}

	assistantMsg := &entity.InsightMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      entity.InsightRoleAssistant,
		Content:   answer,
		CreatedAt: now,
	}
	if err := s.messageRepo.Create(ctx, assistantMsg); err != nil {
		s.logger.Warn("failed to record assistant message", slog.Any("error", err))
	}
}
