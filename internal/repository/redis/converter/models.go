package converter

import "github.com/thuli-tech/style-backend/internal/domain"

type ItemInfoRedisModel struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	ImageURL string       `json:"image_url"`
	Attrs    domain.Attrs `json:"attrs"`
}
