package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), postID, user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommentResponse{Comment: *createdComment})
}

func (h *Handler) commentsGet(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), postID, input.Limit, input.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentID, err := strconv.ParseInt(strings.TrimSpace(c.Param("commentID")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), commentID, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteCommentResponse{Success: true})
}
