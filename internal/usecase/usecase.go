package usecase

import (
	"context"

	"github.com/thuli-tech/style-backend/internal/domain"
)

type TasteUC interface {
	SubmitInitialQuiz(ctx context.Context, req *SubmitQuizReq) (*OutboxEvent, error)
	RefineTaste(ctx context.Context, req *RefineTasteReq) (*OutboxEvent, error)
	InitialQuizRequired(ctx context.Context, userID string) (bool, error)
	InitialQuiz(ctx context.Context) ([]domain.QuizImage, error)
	RefineQuiz(ctx context.Context, userID string) ([]domain.QuizImage, error)
}

type RecommendationUC interface {
	Generate(ctx context.Context, userID string) ([]domain.Recommendation, error)
}
