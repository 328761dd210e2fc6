package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Redirect string `json:"redirect,omitempty"`
	Detail   any    `json:"detail,omitempty"`
}

// AbortWithError records err for the error middleware and writes the public body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

// AbortWithRedirect is used when a page precondition is missing; the client
// navigates to redirect instead of rendering the page.
func AbortWithRedirect(c *gin.Context, status int, err error, msg, redirect string) {
	abort(c, status, err, msg, redirect, nil)
}

func abort(c *gin.Context, status int, err error, msg, redirect string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status, Redirect: redirect, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
