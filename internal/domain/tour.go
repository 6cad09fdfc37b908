package domain

import "time"

// TourState is the lifecycle state of a tour.
// The only transition is TourActive → TourDeleted; deleted tours are never restored.
type TourState string

const (
	TourActive  TourState = "active"
	TourDeleted TourState = "deleted"
)

// Tour is a bookable travel offering (a "destination" in the schema).
// AuthorName and CategoryName are read-only projections filled in by joins.
type Tour struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author,omitempty"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
	State        TourState `json:"-"`
}

// Active reports whether the tour is visible to normal reads.
func (t Tour) Active() bool {
	return t.State == TourActive
}

// TourInput carries the user-editable fields of a tour for create and edit.
type TourInput struct {
	Name        string    `json:"name" validate:"required,min=3,max=80"`
	Description string    `json:"description" validate:"required,min=10,max=250"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	CategoryID  int64     `json:"category_id" validate:"required,gt=0"`
	CreatedOn   time.Time `json:"created_on" validate:"required"`
}

// TourFilter narrows the tour listing.
// Search is matched case-insensitively against the tour name.
type TourFilter struct {
	Search string
	Page   PaginationParams
}

// TourSummary is one row of the tour index, annotated for the viewing user.
type TourSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url,omitempty"`
	SavedCount int    `json:"saved_count"`
	IsAuthor   bool   `json:"is_author"`
	IsSaved    bool   `json:"is_saved"`
}

// TourDetails is the full read view of a single tour.
// CreatedOn is pre-formatted as dd-MM-yyyy for display.
type TourDetails struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category"`
	CreatedOn   string `json:"created_on"`
	Author      string `json:"author"`
	AuthorID    string `json:"author_id"`
	IsAuthor    bool   `json:"is_author"`
	IsSaved     bool   `json:"is_saved"`
}

// TourEditForm pre-fills the edit form for the tour's author.
// CreatedOn uses the yyyy-MM-dd form expected by date inputs.
type TourEditForm struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url,omitempty"`
	CategoryID  int64      `json:"category_id"`
	CreatedOn   string     `json:"created_on"`
	Categories  []Category `json:"categories"`
}

// TourDeleteView is shown to the author before confirming a delete.
type TourDeleteView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Author   string `json:"author"`
	AuthorID string `json:"author_id"`
}

// FavoriteTour is one entry of a user's saved tours.
type FavoriteTour struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}
