package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/utils"
)

// ErrorHandler is the single boundary turning errors attached via c.Error
// into HTTP responses. Business errors keep their message; anything internal
// is logged and replaced with a generic one so store details never reach the
// client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.StatusOf(err)

		if status == http.StatusInternalServerError {
			utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			utils.RespondError(c, status, errors.New("internal server error"))
			return
		}

		utils.RespondError(c, status, err)
	}
}
