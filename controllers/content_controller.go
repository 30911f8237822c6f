package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rttsite/content"
	"rttsite/utils"
)

// ContentController serves the static localized site content. One
// parameterized source of truth per content type; the locale comes from the
// lang query parameter or the Accept-Language header.
type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

func (c *ContentController) locale(ctx *gin.Context) string {
	return content.ResolveLocale(ctx.Query("lang"), ctx.GetHeader("Accept-Language"))
}

func (c *ContentController) GetJobs(ctx *gin.Context) {
	locale := c.locale(ctx)
	ctx.JSON(http.StatusOK, gin.H{"locale": locale, "jobs": content.Jobs(locale)})
}

func (c *ContentController) GetBlogPosts(ctx *gin.Context) {
	locale := c.locale(ctx)
	ctx.JSON(http.StatusOK, gin.H{"locale": locale, "posts": content.Posts(locale)})
}

func (c *ContentController) GetBlogPost(ctx *gin.Context) {
	locale := c.locale(ctx)
	post, ok := content.PostBySlug(locale, ctx.Param("slug"))
	if !ok {
		utils.NotFoundError(ctx, "Blog post not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"locale": locale, "post": post})
}

func (c *ContentController) GetEvents(ctx *gin.Context) {
	locale := c.locale(ctx)
	ctx.JSON(http.StatusOK, gin.H{"locale": locale, "events": content.Events(locale)})
}

func (c *ContentController) GetContactInfo(ctx *gin.Context) {
	locale := c.locale(ctx)
	ctx.JSON(http.StatusOK, gin.H{"locale": locale, "contact": content.Contact(locale)})
}

func (c *ContentController) GetCountryCodes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"countries": content.CountryCodes,
		"default":   content.DefaultCountryCode,
	})
}
