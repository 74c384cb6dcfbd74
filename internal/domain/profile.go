package domain

import (
	"bytes"
	"encoding/json"

	"github.com/thuli-tech/style-backend/pkg/e"
)

// PreferencesKind — форма хранения стилевых предпочтений.
// Старые профили хранят агрегированные счётчики (начальный квиз),
// новые — список сырых свайпов (уточнение вкуса); обе формы читаются.
type PreferencesKind int

const (
	PreferencesEmpty PreferencesKind = iota
	PreferencesList
	PreferencesAggregate
)

// StylePreferences — tagged-вариант предпочтений пользователя.
// Форма определяется один раз при разборе JSON, дальше код работает только с Kind.
type StylePreferences struct {
	Kind   PreferencesKind
	Swipes []Swipe
	Counts map[string]map[string]int
}

// NewListPreferences создаёт предпочтения в форме списка свайпов.
func NewListPreferences(swipes []Swipe) StylePreferences {
	return StylePreferences{Kind: PreferencesList, Swipes: swipes}
}

// NewAggregatePreferences создаёт предпочтения в форме счётчиков атрибутов.
func NewAggregatePreferences(counts map[string]map[string]int) StylePreferences {
	return StylePreferences{Kind: PreferencesAggregate, Counts: counts}
}

func (p *StylePreferences) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = StylePreferences{Kind: PreferencesEmpty}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var swipes []Swipe
		if err := json.Unmarshal(trimmed, &swipes); err != nil {
			return e.Wrap("style_preferences list form", e.ErrInvalidPreferences)
		}
		*p = NewListPreferences(swipes)
		return nil
	case '{':
		var counts map[string]map[string]int
		if err := json.Unmarshal(trimmed, &counts); err != nil {
			return e.Wrap("style_preferences aggregate form", e.ErrInvalidPreferences)
		}
		if len(counts) == 0 {
			*p = StylePreferences{Kind: PreferencesEmpty}
			return nil
		}
		*p = NewAggregatePreferences(counts)
		return nil
	default:
		return e.Wrap("style_preferences unrecognized shape", e.ErrInvalidPreferences)
	}
}

func (p StylePreferences) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PreferencesList:
		return json.Marshal(p.Swipes)
	case PreferencesAggregate:
		return json.Marshal(p.Counts)
	default:
		return []byte("null"), nil
	}
}

// IsEmpty сообщает, что профиль не содержит полезного сигнала.
func (p StylePreferences) IsEmpty() bool {
	switch p.Kind {
	case PreferencesList:
		return len(p.Swipes) == 0
	case PreferencesAggregate:
		return len(p.Counts) == 0
	default:
		return true
	}
}

// UserProfile — профиль вкуса пользователя.
// Создаётся на первом прохождении начального квиза, изменяется при каждом уточнении.
type UserProfile struct {
	UserID      string
	Preferences StylePreferences
	SeenQuizIDs []string
}

func NewUserProfile(userID string, prefs StylePreferences, seenIDs []string) *UserProfile {
	return &UserProfile{
		UserID:      userID,
		Preferences: prefs,
		SeenQuizIDs: seenIDs,
	}
}
