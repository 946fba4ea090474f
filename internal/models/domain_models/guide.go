package domain_models

type TourGuide struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	ImageURL   string   `json:"imageUrl"`
	Languages  []string `json:"languages"`
	Experience int      `json:"experience"`
	Rating     float64  `json:"rating"`
}
