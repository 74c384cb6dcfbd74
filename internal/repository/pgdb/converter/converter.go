//go:generate goverter gen github.com/thuli-tech/style-backend/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/usecase"
)

// ProfileConverter преобразует сущности UserProfile между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPreferencesToBytes
// goverter:extend ConvertBytesToPreferences
// goverter:extend ConvertSeenIDsToBytes
// goverter:extend ConvertBytesToSeenIDs
type ProfileConverter interface {
	// goverter:map Preferences StylePreferences
	// goverter:map SeenQuizIDs SeenQuizIDs
	// goverter:ignore UpdatedAt
	ToModel(entity *domain.UserProfile) *ProfileModel
	// goverter:map StylePreferences Preferences
	ToEntity(model *ProfileModel) *domain.UserProfile
}

// QuizImageConverter преобразует записи изображений квиза в domain-сущности.
// goverter:converter
// goverter:extend ConvertBytesToMeta
type QuizImageConverter interface {
	// goverter:map ImageURL URI
	// goverter:map Metadata Meta
	ToEntity(model *QuizImageModel) *domain.QuizImage
	ToArrEntity(models []*QuizImageModel) []*domain.QuizImage
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertStringToOutboxStatus
// goverter:extend ConvertStringToOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutboxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertStringToOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertStringToOutboxEventType(s string) usecase.OutboxEventType {
	return usecase.OutboxEventType(s)
}

func ConvertPreferencesToBytes(p domain.StylePreferences) []byte {
	data, err := json.Marshal(p)
	if err != nil {
		return []byte("null")
	}
	return data
}

func ConvertBytesToPreferences(data []byte) domain.StylePreferences {
	var p domain.StylePreferences
	if err := json.Unmarshal(data, &p); err != nil {
		// Нераспознанная форма всплывает выше по ErrInvalidPreferences из
		// репозитория; здесь деградируем до пустых предпочтений.
		return domain.StylePreferences{Kind: domain.PreferencesEmpty}
	}
	return p
}

func ConvertSeenIDsToBytes(ids []string) []byte {
	data, err := json.Marshal(ids)
	if err != nil {
		return []byte("[]")
	}
	return data
}

func ConvertBytesToSeenIDs(data []byte) []string {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	return ids
}

func ConvertBytesToMeta(data []byte) map[string]any {
	var meta map[string]any
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return meta
}
