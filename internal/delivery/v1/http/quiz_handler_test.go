package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

type fakeTasteUC struct {
	submitEvent *usecase.OutboxEvent
	submitErr   error
	refineEvent *usecase.OutboxEvent
	refineErr   error
	required    bool
	requiredErr error
	images      []domain.QuizImage
	imagesErr   error

	gotSubmit *usecase.SubmitQuizReq
	gotRefine *usecase.RefineTasteReq
}

func (f *fakeTasteUC) SubmitInitialQuiz(ctx context.Context, req *usecase.SubmitQuizReq) (*usecase.OutboxEvent, error) {
	f.gotSubmit = req
	return f.submitEvent, f.submitErr
}

func (f *fakeTasteUC) RefineTaste(ctx context.Context, req *usecase.RefineTasteReq) (*usecase.OutboxEvent, error) {
	f.gotRefine = req
	return f.refineEvent, f.refineErr
}

func (f *fakeTasteUC) InitialQuizRequired(ctx context.Context, userID string) (bool, error) {
	return f.required, f.requiredErr
}

func (f *fakeTasteUC) InitialQuiz(ctx context.Context) ([]domain.QuizImage, error) {
	return f.images, f.imagesErr
}

func (f *fakeTasteUC) RefineQuiz(ctx context.Context, userID string) ([]domain.QuizImage, error) {
	return f.images, f.imagesErr
}

type fakeRecommendationUC struct {
	recs []domain.Recommendation
	err  error
}

func (f *fakeRecommendationUC) Generate(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	return f.recs, f.err
}

func newTestServer(taste usecase.TasteUC, rec usecase.RecommendationUC) *httptest.Server {
	r := chi.NewRouter()
	r.Route("/api/v1", func(v1 chi.Router) {
		quizHandler := NewQuizHandler(taste, logger.NewSlogLogger())
		recHandler := NewRecommendationHandler(rec, logger.NewSlogLogger())
		registerQuizRoutes(v1, quizHandler)
		registerRecommendationRoutes(v1, recHandler)
	})
	return httptest.NewServer(r)
}

func TestSubmitInitialQuiz(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		taste := &fakeTasteUC{submitEvent: &usecase.OutboxEvent{EventID: "evt-1"}}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		body := `{"user_id": "u1", "swipes": [{"imageId": 7, "swipe": 1, "metadata": {"fit": "slim"}}]}`
		res, err := http.Post(srv.URL+"/api/v1/quiz/initial", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusCreated, res.StatusCode)

		var got map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, "evt-1", got["EventID"])

		require.NotNil(t, taste.gotSubmit)
		assert.Equal(t, "u1", taste.gotSubmit.UserID)
		require.Len(t, taste.gotSubmit.Swipes, 1)
		assert.Equal(t, domain.ImageID("7"), taste.gotSubmit.Swipes[0].ImageID)
	})

	t.Run("unknown user maps to 400", func(t *testing.T) {
		taste := &fakeTasteUC{submitErr: e.Wrap("TasteUseCase.SubmitInitialQuiz", e.ErrUserNotFound)}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		body := `{"user_id": "ghost", "swipes": [{"imageId": "1", "swipe": 1}]}`
		res, err := http.Post(srv.URL+"/api/v1/quiz/initial", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		srv := newTestServer(&fakeTasteUC{}, &fakeRecommendationUC{})
		defer srv.Close()

		res, err := http.Post(srv.URL+"/api/v1/quiz/initial", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestRefineTaste(t *testing.T) {
	t.Run("missing profile maps to 404", func(t *testing.T) {
		taste := &fakeTasteUC{refineErr: e.Wrap("TasteUseCase.RefineTaste", e.ErrProfileNotFound)}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		body := `{"user_id": "u1", "swipes": [{"imageId": "1", "swipe": 0}]}`
		res, err := http.Post(srv.URL+"/api/v1/refine-taste", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("ok", func(t *testing.T) {
		taste := &fakeTasteUC{refineEvent: &usecase.OutboxEvent{EventID: "evt-2"}}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		body := `{"user_id": "u1", "swipes": [{"imageId": "1", "swipe": 1}]}`
		res, err := http.Post(srv.URL+"/api/v1/refine-taste", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestInitialQuizRequired(t *testing.T) {
	taste := &fakeTasteUC{required: true}
	srv := newTestServer(taste, &fakeRecommendationUC{})
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/v1/quiz/initial/required?user_id=u1")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got map[string]bool
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.True(t, got["required"])
}

func TestGetRefineQuiz(t *testing.T) {
	t.Run("empty pool maps to 404", func(t *testing.T) {
		taste := &fakeTasteUC{imagesErr: e.Wrap("TasteUseCase.RefineQuiz", e.ErrQuizPoolEmpty)}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		res, err := http.Get(srv.URL + "/api/v1/quiz/refine")
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("ok", func(t *testing.T) {
		taste := &fakeTasteUC{images: []domain.QuizImage{
			domain.NewQuizImage(1, "img1", "http://img/1.jpg", map[string]any{"fit": "slim"}),
		}}
		srv := newTestServer(taste, &fakeRecommendationUC{})
		defer srv.Close()

		res, err := http.Get(srv.URL + "/api/v1/quiz/refine?user_id=u1")
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)

		var got []domain.QuizImage
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "img1", got[0].Name)
	})
}

func TestGetRecommendations(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec := &fakeRecommendationUC{recs: []domain.Recommendation{
			{ID: "a", Name: "item a", Image: "http://img/a.jpg", Brand: "Acme", Price: 49.99},
		}}
		srv := newTestServer(&fakeTasteUC{}, rec)
		defer srv.Close()

		res, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader(`{"user_id": "u1"}`))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)

		var got []domain.Recommendation
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("engine failure is opaque 500", func(t *testing.T) {
		rec := &fakeRecommendationUC{err: e.Wrap("RecommendationUseCase.Generate", e.ErrEngineNotLoaded)}
		srv := newTestServer(&fakeTasteUC{}, rec)
		defer srv.Close()

		res, err := http.Post(srv.URL+"/api/v1/recommendations", "application/json", strings.NewReader(`{"user_id": "u1"}`))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

		var got ErrorResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, e.ErrInternalServerError.Error(), got.Message)
	})
}
