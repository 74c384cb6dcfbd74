package domain

// Recommendation — проекция предмета инвентаря для выдачи пользователю.
// Собирается на лету, никогда не персистится.
type Recommendation struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Fit          string  `json:"fit,omitempty"`
	PrimaryColor string  `json:"primary_color,omitempty"`
	Brand        string  `json:"brand,omitempty"`
	Price        float64 `json:"price,omitempty"`
}
