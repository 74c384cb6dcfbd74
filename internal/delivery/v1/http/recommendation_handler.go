package http

import (
	"net/http"

	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUC
	logger                logger.Logger
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendationUsecase: recommendationUsecase, logger: logger}
}

// getRecommendations
//
//	@Summary		Персональные рекомендации
//	@Description	Подбирает до 10 предметов инвентаря по вкусовому профилю пользователя
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecommendationsRequest	true	"Идентификатор пользователя"
//	@Success		200		{array}		domain.Recommendation
//	@Failure		400		{object}	ErrorResponse	"user_id не передан"
//	@Failure		500		{object}	ErrorResponse	"Движок не инициализирован"
//	@Router			/recommendations [post]
func (h *RecommendationHandler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := decodeJSONBody(r, maxSwipeBodySize, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	recommendations, err := h.recommendationUsecase.Generate(r.Context(), req.UserID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, recommendations)
}
