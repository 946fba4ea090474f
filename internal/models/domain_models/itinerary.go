package domain_models

// TourItinerary is a single day of a tour program. Days for one tour are
// always served sorted ascending by Day.
type TourItinerary struct {
	ID          string   `json:"id"`
	TourID      string   `json:"tourId"`
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}
