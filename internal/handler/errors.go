package handler

import (
	"errors"
	"net/http"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotAuthorized    = errors.New("user is not authorized")
	errInvalidPostID    = errors.New("invalid post ID")
	errInvalidCommentID = errors.New("invalid comment ID")
)

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
}

// statusFromError maps service errors onto the HTTP taxonomy: validation and
// conflicts are 400, missing resources 404, ownership failures 403, everything
// unrecognized 500.
func statusFromError(err error) int {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotPostAuthor), errors.Is(err, service.ErrNotCommentAuthor):
		return http.StatusForbidden
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrPostDoesNotExist):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
