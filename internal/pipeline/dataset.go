package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
)

// Item — предмет датасета на входе пайплайна: локальный путь к изображению
// и нормализованные атрибуты. PublicURL заполняется на этапе загрузки в S3.
type Item struct {
	ID        string
	LocalPath string
	PublicURL string
	Attrs     domain.Attrs
}

type labelDescriptions struct {
	Categories []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Attributes []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"attributes"`
}

// LoadDataset читает CSV-аннотации и описания меток, группирует строки по
// изображению и сводит наборы категорий/атрибутов к нормализованной схеме.
// Порядок результата перемешивается переданным генератором.
func LoadDataset(annotationsPath, labelsPath, imageDir string, rnd *rand.Rand) ([]Item, error) {
	const op = "pipeline.LoadDataset"

	labels, err := loadLabels(labelsPath)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoriesMap := make(map[int64]string, len(labels.Categories))
	for _, c := range labels.Categories {
		categoriesMap[c.ID] = c.Name
	}
	attributesMap := make(map[int64]string, len(labels.Attributes))
	for _, a := range labels.Attributes {
		attributesMap[a.ID] = a.Name
	}

	f, err := os.Open(annotationsPath)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"ImageId", "ClassId", "AttributesIds"} {
		if _, ok := col[required]; !ok {
			return nil, e.Wrap(op, fmt.Errorf("annotations csv missing column %s", required))
		}
	}

	type annotation struct {
		categories map[string]struct{}
		attributes map[string]struct{}
	}
	byImage := make(map[string]*annotation)
	var order []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		imageID := record[col["ImageId"]]
		ann, ok := byImage[imageID]
		if !ok {
			ann = &annotation{
				categories: make(map[string]struct{}),
				attributes: make(map[string]struct{}),
			}
			byImage[imageID] = ann
			order = append(order, imageID)
		}

		classID, err := strconv.ParseInt(record[col["ClassId"]], 10, 64)
		if err == nil {
			if name, ok := categoriesMap[classID]; ok {
				ann.categories[name] = struct{}{}
			}
		}

		for _, raw := range strings.Split(record[col["AttributesIds"]], ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			attrID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			if name, ok := attributesMap[attrID]; ok {
				ann.attributes[name] = struct{}{}
			}
		}
	}

	items := make([]Item, 0, len(order))
	for _, imageID := range order {
		ann := byImage[imageID]
		items = append(items, Item{
			ID:        imageID,
			LocalPath: filepath.Join(imageDir, imageID+".jpg"),
			Attrs:     MapAttributes(ann.categories, ann.attributes),
		})
	}

	rnd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	return items, nil
}

func loadLabels(path string) (*labelDescriptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var labels labelDescriptions
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &labels, nil
}

// ApplyPriceList накладывает на предметы бренды и цены из CSV вида
// name,brand,price. Цена парсится как десятичная величина с ограничением
// в два знака после запятой; предметы без строки в прайс-листе не меняются.
func ApplyPriceList(items []Item, priceListPath string) error {
	const op = "pipeline.ApplyPriceList"

	f, err := os.Open(priceListPath)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return e.Wrap(op, err)
	}

	type priced struct {
		brand string
		price float64
	}
	prices := make(map[string]priced, len(records))
	for i, record := range records {
		if i == 0 && strings.EqualFold(record[0], "name") {
			continue
		}
		if len(record) < 3 {
			return e.Wrap(op, fmt.Errorf("price list row %d has %d columns, want 3", i, len(record)))
		}

		price, err := parsePrice(record[2])
		if err != nil {
			return e.Wrap(fmt.Sprintf("%s: row %d", op, i), err)
		}

		prices[record[0]] = priced{brand: record[1], price: price}
	}

	for i := range items {
		p, ok := prices[items[i].ID]
		if !ok {
			continue
		}
		if p.brand != "" {
			items[i].Attrs.Brand = p.brand
		}
		items[i].Attrs.Price = p.price
	}

	return nil
}

func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, e.ErrInvalidPrice
	}
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	f, _ := d.Float64()
	return f, nil
}
