package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	sourceInitialQuiz = "initial_quiz"
	sourceRefineTaste = "refine_taste"

	refineQuizSize = 20
)

// TasteUseCase реализует бизнес-логику квизов и профиля вкуса.
type TasteUseCase struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	catalogRepo CatalogRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	producer    MessageProducer
	logger      logger.Logger
}

func NewTasteUC(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	catalogRepo CatalogRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	producer MessageProducer,
	logger logger.Logger,
) *TasteUseCase {
	return &TasteUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		producer:    producer,
		logger:      logger,
	}
}

// SubmitInitialQuiz сохраняет свайпы начального квиза: агрегирует счётчики
// атрибутов по лайкам, запоминает просмотренные изображения и полностью
// заменяет профиль. Профиль и outbox-событие пишутся в одной транзакции.
func (t *TasteUseCase) SubmitInitialQuiz(ctx context.Context, req *SubmitQuizReq) (*OutboxEvent, error) {
	const op = "TasteUseCase.SubmitInitialQuiz"

	var err error
	err = t.validateSwipeRequest(req.UserID, req.Swipes)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	exists, err := t.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !exists {
		return nil, e.Wrap(op, e.ErrUserNotFound)
	}

	prefs := aggregatePreferences(req.Swipes)
	seenIDs := swipedImageIDs(req.Swipes)
	profile := domain.NewUserProfile(req.UserID, prefs, seenIDs)

	event, err := t.persistProfileWithEvent(ctx, profile, sourceInitialQuiz, len(req.Swipes))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return event, nil
}

// RefineTaste объединяет новые свайпы с сохранёнными: слияние по imageId
// (последняя запись побеждает), объединение множества просмотренных ID.
// Отсутствие профиля — сигнал пройти начальный квиз, а не ошибка сервера.
func (t *TasteUseCase) RefineTaste(ctx context.Context, req *RefineTasteReq) (*OutboxEvent, error) {
	const op = "TasteUseCase.RefineTaste"

	var err error
	err = t.validateSwipeRequest(req.UserID, req.Swipes)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	profile, err := t.profileRepo.Get(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Профили начального квиза хранят агрегированные счётчики; для слияния
	// нужна форма списка. Нераспознанная форма деградирует до пустого списка.
	existing := profile.Preferences.Swipes
	if profile.Preferences.Kind != domain.PreferencesList {
		if profile.Preferences.Kind != domain.PreferencesEmpty {
			t.logger.Warnf("style_preferences for user %s is not a list, resetting to empty", req.UserID)
		}
		existing = nil
	}

	profile.Preferences = domain.NewListPreferences(mergeSwipes(existing, req.Swipes))
	profile.SeenQuizIDs = unionSeenIDs(profile.SeenQuizIDs, req.Swipes)

	event, err := t.persistProfileWithEvent(ctx, profile, sourceRefineTaste, len(req.Swipes))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return event, nil
}

// InitialQuizRequired сообщает, нужно ли пользователю пройти начальный квиз
// (строки профиля ещё нет).
func (t *TasteUseCase) InitialQuizRequired(ctx context.Context, userID string) (bool, error) {
	const op = "TasteUseCase.InitialQuizRequired"

	if strings.TrimSpace(userID) == "" {
		return false, e.Wrap(op, e.ErrUserIDRequired)
	}

	exists, err := t.userRepo.Exists(ctx, userID)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	if !exists {
		return false, e.Wrap(op, e.ErrUserNotFound)
	}

	hasProfile, err := t.profileRepo.Exists(ctx, userID)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return !hasProfile, nil
}

// InitialQuiz возвращает полный набор изображений начального квиза.
func (t *TasteUseCase) InitialQuiz(ctx context.Context) ([]domain.QuizImage, error) {
	const op = "TasteUseCase.InitialQuiz"

	images, err := t.catalogRepo.InitialQuizImages(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return images, nil
}

// RefineQuiz возвращает до 20 случайных изображений пула, исключая уже
// просмотренные пользователем (если userID передан и профиль существует).
func (t *TasteUseCase) RefineQuiz(ctx context.Context, userID string) ([]domain.QuizImage, error) {
	const op = "TasteUseCase.RefineQuiz"

	var seen []string
	if strings.TrimSpace(userID) != "" {
		profile, err := t.profileRepo.Get(ctx, userID)
		switch {
		case err == nil:
			seen = profile.SeenQuizIDs
		case errors.Is(err, e.ErrProfileNotFound):
			// без профиля показываем весь пул
		default:
			return nil, e.Wrap(op, err)
		}
	}

	images, err := t.catalogRepo.RefinePoolImages(ctx, seen, refineQuizSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(images) == 0 {
		return nil, e.Wrap(op, e.ErrQuizPoolEmpty)
	}

	return images, nil
}

// persistProfileWithEvent в одной транзакции заменяет профиль и кладёт
// outbox-событие об обновлении вкуса.
func (t *TasteUseCase) persistProfileWithEvent(ctx context.Context, profile *domain.UserProfile, source string, swipeCount int) (*OutboxEvent, error) {
	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	err = t.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	eventID := uuid.NewString()
	payload, err := t.producer.GetPayloadBytes(NewTasteEventReq(eventID, profile.UserID, source, swipeCount))
	if err != nil {
		return nil, err
	}

	event, err := t.outboxRepo.Create(ctx, NewOutboxEvent(eventID, TasteProfileUpdated, profile.UserID, payload))
	if err != nil {
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (t *TasteUseCase) validateSwipeRequest(userID string, swipes []domain.Swipe) error {
	if strings.TrimSpace(userID) == "" {
		return e.ErrUserIDRequired
	}
	if len(swipes) == 0 {
		return e.ErrNoSwipes
	}
	return nil
}

// aggregatePreferences тальирует по одному счётчику на пару
// (атрибут, значение) метаданных каждого лайкнутого свайпа.
func aggregatePreferences(swipes []domain.Swipe) domain.StylePreferences {
	counts := make(map[string]map[string]int)
	for _, swipe := range swipes {
		if swipe.Swipe != domain.Like {
			continue
		}
		for key, raw := range swipe.Meta {
			value, ok := raw.(string)
			if !ok || value == "" {
				continue
			}
			if counts[key] == nil {
				counts[key] = make(map[string]int)
			}
			counts[key][value]++
		}
	}

	if len(counts) == 0 {
		return domain.StylePreferences{Kind: domain.PreferencesEmpty}
	}
	return domain.NewAggregatePreferences(counts)
}

// swipedImageIDs возвращает ID свайпнутых изображений в исходном порядке,
// дубликаты сохраняются.
func swipedImageIDs(swipes []domain.Swipe) []string {
	ids := make([]string, 0, len(swipes))
	for _, swipe := range swipes {
		ids = append(ids, swipe.ImageID.String())
	}
	return ids
}

// mergeSwipes сливает свайпы по imageId, новые перекрывают старые.
// Старые записи сохраняют исходный порядок, новые добавляются за ними.
func mergeSwipes(existing, incoming []domain.Swipe) []domain.Swipe {
	index := make(map[domain.ImageID]int, len(existing))
	merged := make([]domain.Swipe, 0, len(existing)+len(incoming))

	for _, swipe := range existing {
		if pos, ok := index[swipe.ImageID]; ok {
			merged[pos] = swipe
			continue
		}
		index[swipe.ImageID] = len(merged)
		merged = append(merged, swipe)
	}
	for _, swipe := range incoming {
		if pos, ok := index[swipe.ImageID]; ok {
			merged[pos] = swipe
			continue
		}
		index[swipe.ImageID] = len(merged)
		merged = append(merged, swipe)
	}

	return merged
}

// unionSeenIDs объединяет просмотренные ID с ID новых свайпов без дубликатов.
func unionSeenIDs(existing []string, swipes []domain.Swipe) []string {
	set := make(map[string]struct{}, len(existing)+len(swipes))
	out := make([]string, 0, len(existing)+len(swipes))

	for _, id := range existing {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}
	for _, swipe := range swipes {
		id := swipe.ImageID.String()
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
