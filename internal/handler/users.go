package handler

import (
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the user resource. Responses never include the
// password hash.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) List(c echo.Context, _ *EmptyRequest) ([]map[string]any, error) {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return serializeAll(users), nil
}

func (h *UserHandler) Get(c echo.Context, req *UserIDRequest) (map[string]any, error) {
	user, err := h.users.Get(c.Request().Context(), req.UserID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(user), nil
}

func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (map[string]any, error) {
	user, err := h.users.Create(c.Request().Context(), req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(user), nil
}

func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (map[string]any, error) {
	user, err := h.users.Update(c.Request().Context(), req.UserID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(user), nil
}

func (h *UserHandler) Delete(c echo.Context, req *UserIDRequest) (map[string]any, error) {
	if err := h.users.Delete(c.Request().Context(), req.UserID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
