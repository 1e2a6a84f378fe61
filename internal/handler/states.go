package handler

import (
	"github.com/deppfellow/hbnb/internal/model"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/deppfellow/hbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type StateHandler struct {
	Handler
	states *service.StateService
}

func NewStateHandler(s *server.Server, states *service.StateService) *StateHandler {
	return &StateHandler{
		Handler: NewHandler(s),
		states:  states,
	}
}

func (h *StateHandler) List(c echo.Context, _ *EmptyRequest) ([]map[string]any, error) {
	states, err := h.states.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return serializeAll(states), nil
}

func (h *StateHandler) Get(c echo.Context, req *StateIDRequest) (map[string]any, error) {
	state, err := h.states.Get(c.Request().Context(), req.StateID)
	if err != nil {
		return nil, err
	}
	return model.ToMap(state), nil
}

func (h *StateHandler) Create(c echo.Context, req *CreateStateRequest) (map[string]any, error) {
	state, err := h.states.Create(c.Request().Context(), req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(state), nil
}

func (h *StateHandler) Update(c echo.Context, req *UpdateStateRequest) (map[string]any, error) {
	state, err := h.states.Update(c.Request().Context(), req.StateID, req.Body)
	if err != nil {
		return nil, err
	}
	return model.ToMap(state), nil
}

func (h *StateHandler) Delete(c echo.Context, req *StateIDRequest) (map[string]any, error) {
	if err := h.states.Delete(c.Request().Context(), req.StateID); err != nil {
		return nil, err
	}
	return deleted(), nil
}
