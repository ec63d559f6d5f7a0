package domain

import "time"

// Review is owned by the review subsystem; listings only reference and
// expand it.
type Review struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Comment   string    `bson:"comment" json:"comment" validate:"required"`
	Rating    int       `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Author    string    `bson:"author" json:"author" validate:"required"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
