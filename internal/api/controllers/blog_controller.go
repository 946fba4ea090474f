package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{blogService: blogService}
}

func (b *BlogController) ListPosts(c *gin.Context) {
	posts, err := b.blogService.ListPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Blog posts fetched successfully")
}

func (b *BlogController) ListFeaturedPosts(c *gin.Context) {
	posts, err := b.blogService.ListFeaturedPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Featured blog posts fetched successfully")
}

// GetPostBySlug looks a post up by its URL slug, not its id.
func (b *BlogController) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post slug is required")
		return
	}

	post, err := b.blogService.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Blog post fetched successfully")
}
