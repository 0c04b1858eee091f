package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the failure envelope. Error carries internal detail outside release mode only.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse is the envelope of every successful call.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// AbortWithError preserves the original error on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, msg string, data any) {
	AbortWithCode(c, status, CodeForStatus(status), err, msg, data)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, data any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Message: msg,
		Code:    code,
		Data:    data,
	}
	if gin.Mode() != gin.ReleaseMode {
		resp.Error = err.Error()
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError reports a request that failed binding or tag validation.
func AbortWithBindError(c *gin.Context, err error) {
	AbortWithCode(c, http.StatusBadRequest, CodeInvalidInput, err, "Datos de entrada inválidos", nil)
}

func Success(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// CodeForStatus derives a machine code from the status text, e.g. 404 -> NOT_FOUND.
func CodeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
