package domain_models

type Testimonial struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	ImageURL        string `json:"imageUrl"`
	Rating          int    `json:"rating"`
	Review          string `json:"review"`
	TourID          string `json:"tourId,omitempty"`
	DestinationName string `json:"destinationName,omitempty"`
	Featured        bool   `json:"featured"`
}
