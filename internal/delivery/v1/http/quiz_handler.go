package http

import (
	"net/http"

	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

const maxSwipeBodySize = 1 << 20

type QuizHandler struct {
	tasteUsecase usecase.TasteUC
	logger       logger.Logger
}

func NewQuizHandler(tasteUsecase usecase.TasteUC, logger logger.Logger) *QuizHandler {
	return &QuizHandler{tasteUsecase: tasteUsecase, logger: logger}
}

// getInitialQuiz
//
//	@Summary		Изображения начального квиза
//	@Description	Возвращает полный набор изображений начального квиза
//	@Tags			quiz
//	@Produce		json
//	@Success		200	{array}		domain.QuizImage
//	@Failure		500	{object}	ErrorResponse
//	@Router			/quiz/initial [get]
func (q *QuizHandler) getInitialQuiz(w http.ResponseWriter, r *http.Request) {
	images, err := q.tasteUsecase.InitialQuiz(r.Context())
	if err != nil {
		q.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, images)
}

// submitInitialQuiz
//
//	@Summary		Отправка результатов начального квиза
//	@Description	Создает вкусовой профиль пользователя по свайпам начального квиза
//	@Tags			quiz
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwipeRequest			true	"Свайпы пользователя"
//	@Success		201		{object}	map[string]interface{}	"Профиль создан"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации или пользователь не найден"
//	@Router			/quiz/initial [post]
func (q *QuizHandler) submitInitialQuiz(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if err := decodeJSONBody(r, maxSwipeBodySize, &req); err != nil {
		q.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	event, err := q.tasteUsecase.SubmitInitialQuiz(r.Context(), usecase.NewSubmitQuizReq(req.UserID, req.Swipes))
	if err != nil {
		q.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"EventID": event.EventID,
	})
}

// initialQuizRequired
//
//	@Summary		Нужен ли начальный квиз
//	@Description	Проверяет, существует ли уже вкусовой профиль пользователя
//	@Tags			quiz
//	@Produce		json
//	@Param			user_id	query		string					true	"Идентификатор пользователя"
//	@Success		200		{object}	map[string]interface{}	"required: bool"
//	@Failure		400		{object}	ErrorResponse
//	@Router			/quiz/initial/required [get]
func (q *QuizHandler) initialQuizRequired(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	required, err := q.tasteUsecase.InitialQuizRequired(r.Context(), userID)
	if err != nil {
		q.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"required": required,
	})
}

// getRefineQuiz
//
//	@Summary		Изображения уточняющего квиза
//	@Description	Возвращает случайную подборку из пула, исключая уже показанные пользователю
//	@Tags			quiz
//	@Produce		json
//	@Param			user_id	query		string	false	"Идентификатор пользователя для исключения просмотренных"
//	@Success		200		{array}		domain.QuizImage
//	@Failure		404		{object}	ErrorResponse	"Пул квиза пуст"
//	@Router			/quiz/refine [get]
func (q *QuizHandler) getRefineQuiz(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	images, err := q.tasteUsecase.RefineQuiz(r.Context(), userID)
	if err != nil {
		q.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, images)
}

// refineTaste
//
//	@Summary		Уточнение вкусового профиля
//	@Description	Вливает новые свайпы в существующий профиль пользователя
//	@Tags			quiz
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwipeRequest			true	"Свайпы пользователя"
//	@Success		200		{object}	map[string]interface{}	"Профиль обновлен"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Профиль не найден"
//	@Router			/refine-taste [post]
func (q *QuizHandler) refineTaste(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if err := decodeJSONBody(r, maxSwipeBodySize, &req); err != nil {
		q.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	event, err := q.tasteUsecase.RefineTaste(r.Context(), usecase.NewRefineTasteReq(req.UserID, req.Swipes))
	if err != nil {
		q.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"EventID": event.EventID,
	})
}
