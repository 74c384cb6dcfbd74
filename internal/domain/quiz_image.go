package domain

// QuizImage — изображение квиза, показываемое пользователю для свайпа.
type QuizImage struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	URI  string         `json:"uri"`
	Meta map[string]any `json:"metadata"`
}

func NewQuizImage(id int64, name, uri string, meta map[string]any) QuizImage {
	return QuizImage{
		ID:   id,
		Name: name,
		URI:  uri,
		Meta: meta,
	}
}
