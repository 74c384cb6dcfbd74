//go:generate goverter gen github.com/thuli-tech/style-backend/internal/repository/redis/converter

package converter

import (
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertAttrs
type ItemInfoConverter interface {
	ToRedisModel(entity *usecase.ItemInfo) *ItemInfoRedisModel
	ToUseCase(model *ItemInfoRedisModel) *usecase.ItemInfo
	ToArrRedisModel(entities []usecase.ItemInfo) []ItemInfoRedisModel
	ToArrUseCase(models []ItemInfoRedisModel) []usecase.ItemInfo
}

func ConvertAttrs(a domain.Attrs) domain.Attrs {
	return a
}
