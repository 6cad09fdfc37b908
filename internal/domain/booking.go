package domain

import "time"

// Booking is a reservation of a tour by a user.
// TourName and TourImageURL are filled in when bookings are listed.
type Booking struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	TourID         int64     `json:"tour_id" validate:"required,gt=0"`
	NumberOfPeople int       `json:"number_of_people" validate:"required,min=1,max=20"`
	BookingDate    time.Time `json:"booking_date" validate:"required"`
	CreatedAt      time.Time `json:"created_at"`
	TourName       string    `json:"tour_name,omitempty"`
	TourImageURL   string    `json:"tour_image_url,omitempty"`
}
