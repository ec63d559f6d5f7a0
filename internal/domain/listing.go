package domain

import (
	"strings"
	"time"
)

// Geometry is the GeoJSON point derived from a listing's location and
// country through the geocoder. Coordinates are [lon, lat].
type Geometry struct {
	Type        string    `bson:"type" json:"type" validate:"required,eq=Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" validate:"required,len=2"`
}

// Image is the stored image reference for a listing. Filename may be a
// title-derived placeholder with an empty URL when nothing was uploaded.
type Image struct {
	Filename string `bson:"filename" json:"filename"`
	URL      string `bson:"url" json:"url"`
}

// Listing is the central entity: one rentable property record.
type Listing struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Price       float64  `bson:"price" json:"price" validate:"gte=0"`
	Location    string   `bson:"location" json:"location" validate:"required"`
	Country     string   `bson:"country" json:"country" validate:"required"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	Geometry    Geometry `bson:"geometry" json:"geometry" validate:"required"`
	Image       Image    `bson:"image" json:"image"`
	Owner       string   `bson:"owner" json:"owner" validate:"required"`
	Reviews     []string `bson:"reviews" json:"reviews"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MergeImage resolves the image to persist on update. An incoming upload
// wins; without one the previously stored image is carried forward
// unchanged, so an update request without an image never nulls it out.
func MergeImage(existing Image, incoming *Image) Image {
	if incoming == nil {
		return existing
	}
	return *incoming
}

// PlaceholderImage is the image stored when a listing is created without
// an upload: a title-derived filename and an empty URL.
func PlaceholderImage(title string) Image {
	return Image{
		Filename: title + " Property Image",
		URL:      "",
	}
}

// OptimizedImageURL rewrites a stored image URL's upload-path segment to
// request a width-constrained thumbnail for the edit form.
func OptimizedImageURL(url string) string {
	return strings.Replace(url, "/upload", "/upload/w_200", 1)
}
