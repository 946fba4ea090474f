package domain_models

type Tour struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	DestinationID    string       `json:"destinationId"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Duration         string       `json:"duration"`
	Price            int          `json:"price"`
	OriginalPrice    *int         `json:"originalPrice"`
	Rating           float64      `json:"rating"`
	ReviewCount      int          `json:"reviewCount"`
	MaxGroupSize     int          `json:"maxGroupSize"`
	SpotsLeft        int          `json:"spotsLeft"`
	Category         TourCategory `json:"category"`
	ImageURL         string       `json:"imageUrl"`
	GalleryImages    []string     `json:"galleryImages"`
	Inclusions       []string     `json:"inclusions"`
	Exclusions       []string     `json:"exclusions"`
	Highlights       []string     `json:"highlights"`
	Featured         bool         `json:"featured"`
}
