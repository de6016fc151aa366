package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/pkg"

	"github.com/gin-gonic/gin"
)

// Recovery 捕获 panic，返回 INTERNAL_ERROR
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("panic recovered",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			typeName := pkg.TypeName(rec)
			if err, ok := rec.(error); ok {
				typeName = pkg.TypeName(pkg.RootCause(err))
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalError(typeName))
		}()
		c.Next()
	}
}
