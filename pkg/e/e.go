package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки движка рекомендаций
	ErrEngineNotLoaded     = fmt.Errorf("recommendation engine not loaded")
	ErrDimensionMismatch   = fmt.Errorf("vector dimension mismatch")
	ErrEmptyIndex          = fmt.Errorf("index contains no vectors")
	ErrIndexMetadataLength = fmt.Errorf("index and metadata length mismatch")
	ErrEmptyVectors        = fmt.Errorf("empty vectors")

	// Ошибки профилей и квизов
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrProfileNotFound      = fmt.Errorf("user profile not found")
	ErrInvalidPreferences   = fmt.Errorf("invalid style_preferences format")
	ErrQuizPoolEmpty        = fmt.Errorf("no quiz pool images available")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrUserIDRequired   = fmt.Errorf("user_id is required")
	ErrNoSwipes         = fmt.Errorf("no swipes provided")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
