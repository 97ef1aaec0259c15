package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"pasteleria/internal/domain"
)

// GuestCount accepts the guest count either as a JSON string or a number.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestCount(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return err
	}
	*g = GuestCount(n.String())
	return nil
}

type CreateInquiryRequest struct {
	Name      string      `json:"name" validate:"max=255"`
	Email     string      `json:"email" validate:"max=255"`
	EventDate string      `json:"eventDate" validate:"required,datetime=2006-01-02"`
	Guests    *GuestCount `json:"guests" validate:"omitempty,max=50"`
	Details   *string     `json:"details" validate:"omitempty,max=5000"`
}

// ToInput converts the request once Validate has accepted the event date.
func (r CreateInquiryRequest) ToInput() (domain.InquiryInput, error) {
	eventDate, err := time.Parse(domain.DateLayout, r.EventDate)
	if err != nil {
		return domain.InquiryInput{}, err
	}

	in := domain.InquiryInput{
		Name:      r.Name,
		Email:     r.Email,
		EventDate: eventDate,
		Details:   r.Details,
	}
	if r.Guests != nil {
		guests := string(*r.Guests)
		in.Guests = &guests
	}
	return in, nil
}

type InquiryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventDate string    `json:"eventDate"`
	Guests    *string   `json:"guests"`
	Details   *string   `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewInquiryResponse(i domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		EventDate: i.EventDate.Format(domain.DateLayout),
		Guests:    i.Guests,
		Details:   i.Details,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}

func NewInquiryListResponse(inquiries []domain.Inquiry) []InquiryResponse {
	resp := make([]InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		resp[i] = NewInquiryResponse(inq)
	}
	return resp
}
