package submission

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/provide-and-register", h.ProvideAndRegister)
}

// ProvideAndRegister accepts a Provide and Register Document Set request.
// Resolution and storage failures come back as a structured failure
// registry response with HTTP 200, never as a transport-level error; only
// an unreadable request body is a 400.
func (h *Handler) ProvideAndRegister(c echo.Context) error {
	var req ProvideAndRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := h.svc.ProvideAndRegister(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, resp)
}
