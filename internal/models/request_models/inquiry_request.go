package request_models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. Inquiry forms submit
// travelers both ways; anything non-numeric is rejected rather than truncated.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a whole number: %q", s)
		}
		*n = FlexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

type CreateInquiryRequest struct {
	FullName          string  `json:"fullName" binding:"required,min=2"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             string  `json:"phone" binding:"required"`
	TourID            string  `json:"tourId"`
	DestinationID     string  `json:"destinationId"`
	TravelDate        string  `json:"travelDate"`
	Travelers         FlexInt `json:"travelers" binding:"omitempty,min=1,max=20"`
	Message           string  `json:"message"`
	ContactPreference string  `json:"contactPreference" binding:"omitempty,oneof=email phone whatsapp"`
}
