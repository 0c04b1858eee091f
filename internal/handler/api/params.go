package api

import (
	"net/http"
	"strconv"

	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.New("id must be a positive integer")

// parseID aborts with 400 when the path param is not a positive integer.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err == nil && id <= 0 {
		err = errInvalidID
	}
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidInput, err, "ID inválido", nil)
		return 0, false
	}
	return id, true
}
