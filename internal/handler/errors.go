package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/pkg"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析并校验请求体，解析失败也按校验错误返回
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	if errors.Is(err, io.EOF) {
		return &dto.ValidationError{Details: []string{"Request body is required"}}
	}
	return &dto.ValidationError{Details: []string{"Malformed request body: " + err.Error()}}
}

// respondError 把服务层错误翻译为统一错误响应
func respondError(c *gin.Context, err error) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.CodeValidation,
			Message: "The request body is invalid",
			Details: verr.Details,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   dto.CodeNotFound,
			Message: notFoundMessage(err),
		})
	case errors.Is(err, service.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.CodeAlreadyLiked,
			Message: sentence(service.ErrAlreadyLiked.Error()),
		})
	default:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, dto.InternalError(pkg.TypeName(pkg.RootCause(err))))
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{service.ErrPostNotFound, service.ErrCommentNotFound} {
		if errors.Is(err, target) {
			return sentence(target.Error())
		}
	}
	return sentence(service.ErrNotFound.Error())
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
