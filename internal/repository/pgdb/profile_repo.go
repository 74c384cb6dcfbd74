package pgdb

import (
	"context"
	"errors"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/repository/pgdb/converter"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProfileRepo реализует репозиторий профилей вкуса поверх PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
	conv converter.ProfileConverter
}

func NewProfileRepo(pool *pgxpool.Pool, conv converter.ProfileConverter) *ProfileRepo {
	return &ProfileRepo{
		pool: pool,
		conv: conv,
	}
}

// Get возвращает профиль пользователя или e.ErrProfileNotFound.
func (p *ProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, style_preferences, seen_quiz_ids, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var model converter.ProfileModel
	err := p.pool.QueryRow(ctx, query, userID).
		Scan(&model.UserID, &model.StylePreferences, &model.SeenQuizIDs, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProfileNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Exists сообщает, есть ли у пользователя строка профиля.
func (p *ProfileRepo) Exists(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// Upsert полностью заменяет предпочтения и историю просмотров пользователя.
// Выполняется в транзакции из контекста.
func (p *ProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(profile)
	query := `
		INSERT INTO profiles (user_id, style_preferences, seen_quiz_ids, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			style_preferences = EXCLUDED.style_preferences,
			seen_quiz_ids = EXCLUDED.seen_quiz_ids,
			updated_at = NOW();
	`

	if _, err := tx.Exec(ctx, query, model.UserID, model.StylePreferences, model.SeenQuizIDs); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
