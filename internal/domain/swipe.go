package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Direction — направление свайпа пользователя.
type Direction int

const (
	Dislike Direction = 0
	Like    Direction = 1
)

// ImageID — идентификатор изображения квиза.
// Клиенты присылают его то строкой, то числом, поэтому при разборе JSON
// значение приводится к канонической строковой форме.
type ImageID string

func (id *ImageID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty imageId")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ImageID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("imageId must be a string or a number: %w", err)
	}
	*id = ImageID(n.String())
	return nil
}

// Swipe — один лайк/дизлайк пользователя по изображению каталога.
// Неизменяем после создания.
type Swipe struct {
	ImageID ImageID        `json:"imageId"`
	Swipe   Direction      `json:"swipe"`
	Meta    map[string]any `json:"metadata"`
}

func NewSwipe(imageID string, direction Direction, meta map[string]any) Swipe {
	return Swipe{
		ImageID: ImageID(imageID),
		Swipe:   direction,
		Meta:    meta,
	}
}

// MetaString возвращает строковый атрибут метаданных свайпа или значение по умолчанию.
func (s Swipe) MetaString(key, fallback string) string {
	if s.Meta == nil {
		return fallback
	}
	v, ok := s.Meta[key].(string)
	if !ok || v == "" {
		return fallback
	}
	return v
}

// String каноническая строковая форма ID для использования в качестве ключа.
func (id ImageID) String() string {
	return string(id)
}

// ParseImageID приводит произвольное значение к каноническому ImageID.
func ParseImageID(v any) ImageID {
	switch t := v.(type) {
	case string:
		return ImageID(t)
	case float64:
		return ImageID(strconv.FormatInt(int64(t), 10))
	case int64:
		return ImageID(strconv.FormatInt(t, 10))
	case int:
		return ImageID(strconv.Itoa(t))
	default:
		return ImageID(fmt.Sprintf("%v", t))
	}
}
