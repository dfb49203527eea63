package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	postdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/post"
)

type PostService interface {
	Create(ctx context.Context, in postdomain.CreateInput) (*postdomain.Entity, error)
	Update(ctx context.Context, id string, in postdomain.UpdateInput) (*postdomain.Entity, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	GetBySlug(ctx context.Context, slug string) (*postdomain.Entity, error)
	List(ctx context.Context, f postdomain.ListFilter) ([]postdomain.Entity, error)
	CreateCategory(ctx context.Context, name string) (*postdomain.Category, error)
	ListCategories(ctx context.Context) ([]postdomain.Category, error)
}

type PostHandler struct {
	posts PostService
}

func NewPostHandler(posts PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPublished is the public blog feed.
func (h *PostHandler) ListPublished(c *gin.Context) {
	limit, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "20")), 10, 32)
	offset, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)
	items, err := h.posts.List(c.Request.Context(), postdomain.ListFilter{
		CategorySlug:  strings.TrimSpace(c.Query("category")),
		PublishedOnly: true,
		Limit:         int32(limit),
		Offset:        int32(offset),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_posts_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_slug"})
		return
	}
	item, err := h.posts.GetBySlug(c.Request.Context(), slug)
	if err != nil || !item.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PostHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "20")), 10, 32)
	offset, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)
	items, err := h.posts.List(c.Request.Context(), postdomain.ListFilter{
		CategorySlug: strings.TrimSpace(c.Query("category")),
		Limit:        int32(limit),
		Offset:       int32(offset),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_posts_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required"`
		Body       string `json:"body" binding:"required"`
		CategoryID string `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	created, err := h.posts.Create(c.Request.Context(), postdomain.CreateInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: strings.TrimSpace(req.CategoryID),
		AuthorID:   c.GetString("user_id"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "create_post_failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PostHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("postId"))
	var req struct {
		Title      string `json:"title"`
		Body       string `json:"body"`
		CategoryID string `json:"category_id"`
	}
	if id == "" || c.ShouldBindJSON(&req) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.posts.Update(c.Request.Context(), id, postdomain.UpdateInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: strings.TrimSpace(req.CategoryID),
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("postId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete_post_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *PostHandler) SetPublished(c *gin.Context) {
	id := strings.TrimSpace(c.Param("postId"))
	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if id == "" || c.ShouldBindJSON(&req) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if err := h.posts.SetPublished(c.Request.Context(), id, *req.Published); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "publish_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *PostHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	created, err := h.posts.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "create_category_failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PostHandler) ListCategories(c *gin.Context) {
	items, err := h.posts.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_categories_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
