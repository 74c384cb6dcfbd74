package converter

import "time"

// ProfileModel представляет запись таблицы profiles в PostgreSQL.
// Предпочтения и история просмотров хранятся как JSONB.
type ProfileModel struct {
	UserID           string     `db:"user_id"`
	StylePreferences []byte     `db:"style_preferences"`
	SeenQuizIDs      []byte     `db:"seen_quiz_ids"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// QuizImageModel представляет запись одной из таблиц изображений квизов.
type QuizImageModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ImageURL string `db:"image_url"`
	Metadata []byte `db:"metadata"`
}

// ItemModel представляет запись таблицы inventory_items в PostgreSQL.
type ItemModel struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	ImageURL   string `db:"image_url"`
	Metadata   []byte `db:"metadata"`
	Brand      string `db:"brand"`
	PriceCents int64  `db:"price_cents"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	UserID      string     `db:"user_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
