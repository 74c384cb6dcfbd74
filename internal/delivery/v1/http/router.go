package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/thuli-tech/style-backend/docs" // Импорт сгенерированных файлов
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(tasteUC usecase.TasteUC, recUC usecase.RecommendationUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		quizHandler := NewQuizHandler(tasteUC, r.logger)
		recHandler := NewRecommendationHandler(recUC, r.logger)

		registerQuizRoutes(v1, quizHandler)
		registerRecommendationRoutes(v1, recHandler)
	})
}

func registerQuizRoutes(router chi.Router, quizHandler *QuizHandler) {
	router.Route("/quiz", func(q chi.Router) {
		q.Get("/initial", quizHandler.getInitialQuiz)
		q.Post("/initial", quizHandler.submitInitialQuiz)
		q.Get("/initial/required", quizHandler.initialQuizRequired)
		q.Get("/refine", quizHandler.getRefineQuiz)
	})

	router.Post("/refine-taste", quizHandler.refineTaste)
}

func registerRecommendationRoutes(router chi.Router, recHandler *RecommendationHandler) {
	router.Post("/recommendations", recHandler.getRecommendations)
}
