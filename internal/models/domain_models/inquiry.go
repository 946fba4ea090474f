package domain_models

import "time"

// Inquiry references a tour or destination by plain id only; the referenced
// record may have been removed from the catalog and lookups must tolerate that.
type Inquiry struct {
	ID                string            `json:"id"`
	FullName          string            `json:"fullName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	TourID            string            `json:"tourId,omitempty"`
	DestinationID     string            `json:"destinationId,omitempty"`
	TravelDate        string            `json:"travelDate,omitempty"`
	Travelers         int               `json:"travelers"`
	Message           string            `json:"message,omitempty"`
	ContactPreference ContactPreference `json:"contactPreference"`
	CreatedAt         time.Time         `json:"createdAt"`
}
