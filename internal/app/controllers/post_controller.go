package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/app/services"
	"github.com/buddybridge/backend/internal/middleware"
	"github.com/buddybridge/backend/internal/pkg/helpers"
)

// PostController handles assistance post endpoints
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// GetPostByID retrieves a single post
// @Summary Get post by ID
// @Description Retrieves a post with its author and derived status
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [get]
func (c *PostController) GetPostByID(ctx *gin.Context) {
	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	post, err := c.postService.GetPost(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// GetPosts retrieves a page of posts
// @Summary List posts
// @Description Retrieves posts ordered by creation time, optionally filtered by post type
// @Tags posts
// @Accept json
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(10)
// @Param sort query string false "Sort direction (asc or desc)" default(desc)
// @Param postType query string false "Post type filter" Enums(TAKER, GIVER)
// @Success 200 {object} dto.APIResponse{data=dto.PostCustomPage} "Posts retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid sort method or post type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	sort := ctx.DefaultQuery("sort", "desc")

	var postType *models.PostType
	if typeParam := ctx.Query("postType"); typeParam != "" {
		parsed := models.PostType(typeParam)
		if parsed != models.PostTypeTaker && parsed != models.PostTypeGiver {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post type").
				WithField("postType")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		postType = &parsed
	}

	posts, err := c.postService.GetPosts(ctx, page, size, sort, postType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      posts,
		Timestamp: time.Now(),
	})
}

// CreatePost creates a post owned by the authenticated member
// @Summary Create a post
// @Description Creates a new assistance post owned by the authenticated member
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostRequest true "Post fields"
// @Success 201 {object} dto.APIResponse{data=dto.CreatePostResponse} "Post created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	memberID, ok := authenticatedMemberID(ctx)
	if !ok {
		return
	}

	var req dto.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	postID, err := c.postService.CreatePost(ctx, &req, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CreatePostResponse{PostID: postID},
		Timestamp: time.Now(),
	})
}

// UpdatePost replaces the mutable fields of a post
// @Summary Update a post
// @Description Replaces the mutable fields of a post; only the author may update it
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.PostRequest true "Post fields"
// @Success 200 {object} dto.APIResponse{data=dto.CreatePostResponse} "Post updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Requesting member is not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	memberID, ok := authenticatedMemberID(ctx)
	if !ok {
		return
	}

	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	var req dto.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updatedID, err := c.postService.UpdatePost(ctx, postID, &req, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CreatePostResponse{PostID: updatedID},
		Timestamp: time.Now(),
	})
}

// DeletePost permanently removes a post
// @Summary Delete a post
// @Description Permanently removes a post; only the author may delete it
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204 "Post deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Requesting member is not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	memberID, ok := authenticatedMemberID(ctx)
	if !ok {
		return
	}

	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	if err := c.postService.DeletePost(ctx, postID, memberID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetPostMatchings lists the matchings attached to a post
// @Summary List post matchings
// @Description Retrieves the matchings attached to a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Matching} "Matchings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/matchings [get]
func (c *PostController) GetPostMatchings(ctx *gin.Context) {
	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	matchings, err := c.postService.GetPostMatchings(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matchings,
		Timestamp: time.Now(),
	})
}

// parsePostID reads the :id path parameter, writing a 400 response on
// malformed input
func parsePostID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID").
			WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// authenticatedMemberID reads the member id set by the auth middleware,
// writing a 401 response when it is missing
func authenticatedMemberID(ctx *gin.Context) (int64, bool) {
	memberID, exists := ctx.Get("memberID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	id, ok := memberID.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithDetails("Invalid member ID format")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return id, true
}
