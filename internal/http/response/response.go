package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
	// Response carries safety text that must reach the user even when
	// the request itself failed (crisis overlay on a generation error).
	Response string `json:"response,omitempty"`
	IsCrisis bool   `json:"isCrisis,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondErrorWithCrisis is RespondError plus the crisis overlay text
// riding along in the error payload.
func RespondErrorWithCrisis(c *gin.Context, status int, code string, err error, overlay string) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
		Response: overlay,
		IsCrisis: true,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
