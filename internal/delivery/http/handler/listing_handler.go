package handler

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// ListingHandler serves the listing pages: index, detail, the
// create/edit forms and the mutating form submissions.
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	images    repository.ImageStorage
	sessions  *session.Manager
	logger    *zap.Logger
}

func NewListingHandler(
	listingUC *usecase.ListingUseCase,
	images repository.ImageStorage,
	sessions *session.Manager,
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		images:    images,
		sessions:  sessions,
		logger:    logger,
	}
}

// Index renders all listings.
func (h *ListingHandler) Index(c *fiber.Ctx) error {
	listings, err := h.listingUC.List(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.sessions, "listings/index", fiber.Map{"Listings": listings})
}

// NewForm renders the create form.
func (h *ListingHandler) NewForm(c *fiber.Ctx) error {
	return render(c, h.sessions, "listings/new", nil)
}

// Create handles the new-listing form submission.
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	in, err := h.parseForm(c)
	if err != nil {
		return err
	}

	listing, outcome, err := h.listingUC.Create(c.Context(), in, h.sessions.UserID(c))
	if err != nil {
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	if outcome.HasError() {
		return c.Redirect("/listings/new")
	}

	h.logger.Debug("Listing created via form", zap.String("listing_id", listing.ID))
	return c.Redirect("/listings")
}

// Show renders a listing in detail, with owner and reviews expanded.
func (h *ListingHandler) Show(c *fiber.Ctx) error {
	detail, outcome, err := h.listingUC.View(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if outcome.HasError() {
		h.sessions.FlashOutcome(c, outcome)
		return c.Redirect("/listings")
	}
	return render(c, h.sessions, "listings/show", fiber.Map{"Detail": detail})
}

// Filter renders listings of one category; an empty result flashes and
// falls back to the index.
func (h *ListingHandler) Filter(c *fiber.Ctx) error {
	listings, outcome, err := h.listingUC.FilterByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	if outcome.HasError() {
		h.sessions.FlashOutcome(c, outcome)
		return c.Redirect("/listings")
	}
	return render(c, h.sessions, "listings/index", fiber.Map{"Listings": listings})
}

// Search renders listings matching the destination query.
func (h *ListingHandler) Search(c *fiber.Ctx) error {
	listings, outcome, err := h.listingUC.Search(c.Context(), c.Query("dest"))
	if err != nil {
		return err
	}
	if outcome.HasError() {
		h.sessions.FlashOutcome(c, outcome)
		return c.Redirect("/listings")
	}
	return render(c, h.sessions, "listings/index", fiber.Map{"Listings": listings})
}

// EditForm renders the edit form, owner only.
func (h *ListingHandler) EditForm(c *fiber.Ctx) error {
	id := c.Params("id")
	data, outcome, err := h.listingUC.EditData(c.Context(), id, h.sessions.UserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			h.sessions.Error(c, "You are not the Owner of this Listing!")
			return c.Redirect("/listings/" + id)
		}
		return err
	}
	if outcome.HasError() {
		h.sessions.FlashOutcome(c, outcome)
		return c.Redirect("/listings")
	}
	return render(c, h.sessions, "listings/edit", fiber.Map{
		"Listing":         data.Listing,
		"OptimizedImgURL": data.OptimizedImgURL,
	})
}

// Update handles the edit form submission, owner only.
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, err := h.parseForm(c)
	if err != nil {
		return err
	}

	_, outcome, err := h.listingUC.Update(c.Context(), id, h.sessions.UserID(c), in)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			h.sessions.Error(c, "You are not the Owner of this Listing!")
			return c.Redirect("/listings/" + id)
		}
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	if outcome.HasError() {
		return c.Redirect("/listings/" + id + "/edit")
	}
	return c.Redirect("/listings/" + id)
}

// Delete removes a listing and its reviews, owner only.
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	outcome, err := h.listingUC.Delete(c.Context(), id, h.sessions.UserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			h.sessions.Error(c, "You are not the Owner of this Listing!")
			return c.Redirect("/listings/" + id)
		}
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	return c.Redirect("/listings")
}

// parseForm reads the shared create/update form fields and, when a file
// was attached, uploads it to the object store.
func (h *ListingHandler) parseForm(c *fiber.Ctx) (dto.ListingInput, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil {
		return dto.ListingInput{}, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"price": "must be a number"})
	}

	in := dto.ListingInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       price,
		Location:    strings.TrimSpace(c.FormValue("location")),
		Country:     strings.TrimSpace(c.FormValue("country")),
		Category:    c.FormValue("category"),
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return in, nil
	}

	src, err := file.Open()
	if err != nil {
		return dto.ListingInput{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return dto.ListingInput{}, err
	}

	url, err := h.images.Upload(c.Context(), file.Filename, data)
	if err != nil {
		h.logger.Error("Image upload failed", zap.String("filename", file.Filename), zap.Error(err))
		return dto.ListingInput{}, err
	}

	in.Image = &dto.ImageUpload{Filename: file.Filename, URL: url}
	return in, nil
}
