package domain_models

type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	TourID   string `json:"tourId,omitempty"`
}
