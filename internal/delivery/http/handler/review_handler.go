package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// ReviewHandler serves the review form submissions nested under a
// listing; both redirect back to the listing's detail page.
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	sessions *session.Manager
	logger   *zap.Logger
}

func NewReviewHandler(reviewUC *usecase.ReviewUseCase, sessions *session.Manager, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		sessions: sessions,
		logger:   logger,
	}
}

// Create adds a review to a listing.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	listingID := c.Params("id")

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil {
		return apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"rating": "must be a number"})
	}
	in := dto.ReviewInput{
		Comment: c.FormValue("comment"),
		Rating:  rating,
	}

	outcome, err := h.reviewUC.Create(c.Context(), listingID, h.sessions.UserID(c), in)
	if err != nil {
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	if outcome.HasError() {
		return c.Redirect("/listings")
	}
	return c.Redirect("/listings/" + listingID)
}

// Delete removes a review, author only.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	listingID := c.Params("id")
	reviewID := c.Params("reviewId")

	outcome, err := h.reviewUC.Delete(c.Context(), listingID, reviewID, h.sessions.UserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			h.sessions.Error(c, "You are not the Author of this Review!")
			return c.Redirect("/listings/" + listingID)
		}
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	return c.Redirect("/listings/" + listingID)
}
