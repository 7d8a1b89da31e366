package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/queries/latest_products"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_user_products"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound

	case errors.As(err, &verr),
		errors.Is(err, domain.ErrInvalidSort),
		errors.Is(err, list_user_products.ErrUnknownScope),
		errors.Is(err, latest_products.ErrInvalidLimit):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Internal errors are attached
// to the gin context for the logging middleware and hidden from the client.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}

	resp := ErrorResponse{Error: err.Error()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Error = "invalid product"
		resp.Fields = make(map[string]string, len(verr.Fields))
		for field, ferr := range verr.Fields {
			resp.Fields[field] = ferr.Error()
		}
	}

	c.JSON(status, resp)
}
