package handler

import (
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// ListByPlace serves GET /places/:place_id/reviews.
func (h *ReviewHandler) ListByPlace(c echo.Context, req *PlaceIDRequest) ([]map[string]any, error) {
	reviews, err := h.reviews.ListByPlace(c.Request().Context(), req.PlaceID)
	if err != nil {
		return nil, err
	}
	return serializeAll(reviews), nil
}

func (h *ReviewHandler) Get(c echo.Context, req *ReviewIDRequest) (map[string]any, error) {
	review, err := h.reviews.Get(c.Request().Context(), req.ReviewID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(review), nil
}

func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (map[string]any, error) {
	review, err := h.reviews.Create(c.Request().Context(), req.PlaceID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(review), nil
}

func (h *ReviewHandler) Update(c echo.Context, req *UpdateReviewRequest) (map[string]any, error) {
	review, err := h.reviews.Update(c.Request().Context(), req.ReviewID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(review), nil
}

func (h *ReviewHandler) Delete(c echo.Context, req *ReviewIDRequest) (map[string]any, error) {
	if err := h.reviews.Delete(c.Request().Context(), req.ReviewID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
