package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/model"
	"github.com/gin-gonic/gin"
)

func postIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("postID")), 10, 64)
	if err != nil {
		return 0, errInvalidPostID
	}

	return id, nil
}

func (h *Handler) postsList(c *gin.Context) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts, err := h.services.Post.FindPublished(c.Request.Context(), input.Limit, input.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostResponse{Post: *createdPost})
}

func (h *Handler) postsGetMy(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), user.ID, input.Limit, input.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetBySlug(c *gin.Context) {
	user := h.getUserFromRequest(c)

	slug := strings.TrimSpace(c.Param("slug"))

	post, err := h.services.Post.FindBySlug(c.Request.Context(), slug, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondPostDetail(c, post)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondPostDetail(c, post)
}

func (h *Handler) respondPostDetail(c *gin.Context, post *model.FullPost) {
	user := h.getUserFromRequest(c)

	response := dto.GetPostResponse{Post: *post}
	if user != nil {
		liked, err := h.services.Like.IsLiked(c.Request.Context(), post.Post.ID, user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		response.IsLiked = liked
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) postsUpdate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), postID, user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostResponse{Post: *updatedPost})
}

func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletePostResponse{Ok: true})
}

func (h *Handler) postsLike(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	count, err := h.services.Like.Like(c.Request.Context(), postID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Liked: true, Count: count})
}

func (h *Handler) postsUnlike(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	count, err := h.services.Like.Unlike(c.Request.Context(), postID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Liked: false, Count: count})
}

// postsIsLiked never fails on a missing session; it degrades to liked=false.
func (h *Handler) postsIsLiked(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, dto.IsLikedResponse{Liked: false})
		return
	}

	liked, err := h.services.Like.IsLiked(c.Request.Context(), postID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IsLikedResponse{Liked: liked})
}
