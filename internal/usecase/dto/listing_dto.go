package dto

import (
	"github.com/VinayNoogler000/RentEase/internal/domain"
)

// Outcome is the per-request flash payload an operation produces
// alongside its result. Exactly one of Success/Error is set when the
// operation has something to tell the user; handlers write it into the
// session flash channel and pick the redirect target.
type Outcome struct {
	Success string
	Error   string
}

func (o Outcome) HasError() bool {
	return o.Error != ""
}

// ImageUpload is what the file-upload collaborator hands over for an
// image field: the original filename and the stored asset's URL. A nil
// *ImageUpload means the request carried no new image.
type ImageUpload struct {
	Filename string
	URL      string
}

// ListingInput carries the form fields of a create or update request.
type ListingInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Country     string
	Category    string
	Image       *ImageUpload
}

// ReviewWithAuthor pairs a review with its expanded author.
type ReviewWithAuthor struct {
	Review domain.Review
	Author *domain.User
}

// ListingDetail is the view operation's result: the listing with owner
// and reviews (each with its author) expanded.
type ListingDetail struct {
	Listing domain.Listing
	Owner   *domain.User
	Reviews []ReviewWithAuthor
}

// EditFormData backs the edit form: the listing plus a width-constrained
// thumbnail URL derived from the stored image.
type EditFormData struct {
	Listing         domain.Listing
	OptimizedImgURL string
}
