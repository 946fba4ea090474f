package domain_models

type TeamMember struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Bio      string  `json:"bio"`
	ImageURL string  `json:"imageUrl"`
	LinkedIn string  `json:"linkedIn,omitempty"`
	Twitter  *string `json:"twitter"`
}
