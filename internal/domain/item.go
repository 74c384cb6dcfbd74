package domain

// IndexedItem — запись метаданных, спаренная позиционно с вектором в индексе.
// Позиция i в индексе всегда соответствует позиции i в последовательности метаданных.
type IndexedItem struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Attrs Attrs  `json:"structured_metadata"`
}

func NewIndexedItem(id, path string, attrs Attrs) IndexedItem {
	return IndexedItem{
		ID:    id,
		Path:  path,
		Attrs: attrs,
	}
}
