package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rttsite/content"
	"rttsite/models"
	"rttsite/services"
	"rttsite/utils"
)

// ContactMessageStore is the slice of the model layer the contact and admin
// controllers need.
type ContactMessageStore interface {
	Create(name, email, subject, message, locale string) (*models.ContactMessage, error)
	List(limit, offset int) ([]models.ContactMessage, error)
	Count() (int, error)
}

type ContactController struct {
	Messages      ContactMessageStore
	Notifications *services.EmailNotificationService
}

func NewContactController(messages ContactMessageStore, notifications *services.EmailNotificationService) *ContactController {
	return &ContactController{
		Messages:      messages,
		Notifications: notifications,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required,min=20"`
}

// SubmitMessage implements POST /api/contact.
func (c *ContactController) SubmitMessage(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Validation failed", err)
		return
	}

	if c.Messages == nil {
		utils.ErrorResponseWithCode(ctx, http.StatusServiceUnavailable, "Contact form is temporarily unavailable", nil)
		return
	}

	locale := content.ResolveLocale(ctx.Query("lang"), ctx.GetHeader("Accept-Language"))

	message, err := c.Messages.Create(req.Name, req.Email, req.Subject, req.Message, locale)
	if err != nil {
		utils.LogError("Failed to store contact message", err, gin.H{"email": req.Email})
		utils.InternalServerError(ctx, "Failed to send message. Please try again later.", nil)
		return
	}

	if c.Notifications != nil {
		if err := c.Notifications.SendContactNotification(req.Name, req.Email, req.Subject, req.Message); err != nil {
			log.Printf("Failed to send contact notification: %v", err)
		}
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Message received", gin.H{"id": message.ID})
}
