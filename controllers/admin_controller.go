package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"rttsite/config"
	"rttsite/services"
	"rttsite/utils"
)

// AdminController exposes the small back-office API: login and review of
// stored contact messages.
type AdminController struct {
	Messages ContactMessageStore
	JWT      *services.JWTService
	Admin    config.AdminConfig
}

func NewAdminController(messages ContactMessageStore, jwt *services.JWTService, admin config.AdminConfig) *AdminController {
	return &AdminController{
		Messages: messages,
		JWT:      jwt,
		Admin:    admin,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login implements POST /api/admin/login.
func (c *AdminController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request body", err)
		return
	}

	if c.Admin.PasswordHash == "" || req.Email != c.Admin.Email {
		utils.UnauthorizedError(ctx, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.Admin.PasswordHash), []byte(req.Password)); err != nil {
		utils.UnauthorizedError(ctx, "Invalid credentials")
		return
	}

	token, err := c.JWT.GenerateToken(req.Email)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to generate token", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Login successful", gin.H{"token": token})
}

// ListMessages implements GET /api/admin/messages.
func (c *AdminController) ListMessages(ctx *gin.Context) {
	if c.Messages == nil {
		utils.ErrorResponseWithCode(ctx, http.StatusServiceUnavailable, "Message store is not configured", nil)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := c.Messages.List(limit, offset)
	if err != nil {
		utils.LogError("Failed to list contact messages", err)
		utils.InternalServerError(ctx, "Failed to fetch messages", nil)
		return
	}

	total, err := c.Messages.Count()
	if err != nil {
		utils.LogError("Failed to count contact messages", err)
		utils.InternalServerError(ctx, "Failed to fetch messages", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Messages fetched", gin.H{
		"messages": messages,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}
