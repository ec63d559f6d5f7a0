package dto

type ReviewInput struct {
	Comment string
	Rating  int
}
