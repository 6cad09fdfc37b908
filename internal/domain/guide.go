package domain

// TourGuide is a guide attached to a tour.
type TourGuide struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	Age             int    `json:"age" validate:"min=18,max=100"`
	Location        string `json:"location" validate:"required"`
	Languages       string `json:"languages" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"min=0"`
	TourID          int64  `json:"tour_id" validate:"required,gt=0"`
}
