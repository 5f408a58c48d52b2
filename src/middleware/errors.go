// Package middleware holds gin middleware shared across every route
// group. The teacher inlines ctx.JSON(status, body) in each
// controller; this engine centralizes it because every handler here
// needs the exact same three-way ValidationError/NotFoundError/
// InternalError mapping (see utils.ErrorResponse), so one middleware
// replaces N copies of the same switch.
package middleware

import (
	"fleetstatus/src/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached via ctx.Error(err) as
// the structured {code, message} body from utils.ErrorResponse, after
// the handler chain has run. Controllers that already wrote a body
// (ctx.Writer.Written()) are left untouched.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Writer.Written() || len(ctx.Errors) == 0 {
			return
		}

		status, body := utils.ErrorResponse(ctx.Errors.Last().Err)
		ctx.JSON(status, body)
	}
}
