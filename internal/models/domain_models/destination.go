package domain_models

type Destination struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Country          string    `json:"country"`
	Continent        Continent `json:"continent"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	ImageURL         string    `json:"imageUrl"`
	Rating           float64   `json:"rating"`
	ReviewCount      int       `json:"reviewCount"`
	PriceFrom        int       `json:"priceFrom"`
	Featured         bool      `json:"featured"`
	Trending         bool      `json:"trending"`
	Popular          bool      `json:"popular"`
	IsNew            bool      `json:"isNew"`
}
