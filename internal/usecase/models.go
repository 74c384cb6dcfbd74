package usecase

import (
	"time"

	"github.com/thuli-tech/style-backend/internal/domain"
)

// TASTE USECASE

// SubmitQuizReq — запрос на сохранение свайпов начального квиза.
type SubmitQuizReq struct {
	UserID string
	Swipes []domain.Swipe
}

// RefineTasteReq — запрос на уточнение профиля вкуса новыми свайпами.
type RefineTasteReq struct {
	UserID string
	Swipes []domain.Swipe
}

// ItemInfo — DTO с актуальной информацией о предмете инвентаря
// (используется при гидрации рекомендаций и как строка кэша).
type ItemInfo struct {
	ID       string
	Name     string
	ImageURL string
	Attrs    domain.Attrs
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const TasteProfileUpdated OutboxEventType = "taste_profile_updated"

// OutboxEvent — событие изменения профиля вкуса, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	UserID      string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

// TasteEventReq — данные для сборки protobuf-события об обновлении профиля.
type TasteEventReq struct {
	EventID    string
	UserID     string
	Source     string
	SwipeCount int
}

type WriteRawMessageReq struct {
	UserID  string
	Payload []byte
}

// UploadImageReq — запрос на загрузку изображения в объектное хранилище.
type UploadImageReq struct {
	Bucket    string
	ObjectKey string
	Data      []byte
	MimeType  string
}

// MAPPERS

func NewSubmitQuizReq(userID string, swipes []domain.Swipe) *SubmitQuizReq {
	return &SubmitQuizReq{
		UserID: userID,
		Swipes: swipes,
	}
}

func NewRefineTasteReq(userID string, swipes []domain.Swipe) *RefineTasteReq {
	return &RefineTasteReq{
		UserID: userID,
		Swipes: swipes,
	}
}

func NewItemInfo(id, name, imageURL string, attrs domain.Attrs) ItemInfo {
	return ItemInfo{
		ID:       id,
		Name:     name,
		ImageURL: imageURL,
		Attrs:    attrs,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, userID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewTasteEventReq(eventID, userID, source string, swipeCount int) *TasteEventReq {
	return &TasteEventReq{
		EventID:    eventID,
		UserID:     userID,
		Source:     source,
		SwipeCount: swipeCount,
	}
}

func NewWriteRawMessageReq(userID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		UserID:  userID,
		Payload: payload,
	}
}

func NewUploadImageReq(bucket, objectKey string, data []byte, mimeType string) *UploadImageReq {
	return &UploadImageReq{
		Bucket:    bucket,
		ObjectKey: objectKey,
		Data:      data,
		MimeType:  mimeType,
	}
}
