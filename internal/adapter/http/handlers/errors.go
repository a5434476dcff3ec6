package handlers

import (
	"errors"
	"log"
	"net/http"

	"motofix/pkg"

	"github.com/gin-gonic/gin"
)

// writeError renders any use case failure. Structured AppErrors carry their
// own status; anything else is an internal error and gets logged with the
// cause, never echoed to the client.
func writeError(c *gin.Context, err error) {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[http][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	internal := pkg.NewInternalError(err)
	c.JSON(internal.HTTPStatus, internal.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context, code, message string) {
	appErr := pkg.NewValidationError(code, message)
	c.JSON(http.StatusBadRequest, appErr.ToHTTPError())
}
