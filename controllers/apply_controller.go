package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rttsite/services"
	"rttsite/utils"
	"rttsite/wizard"
)

// ApplyController handles the application submission flow: validate the
// multipart payload, normalize the phone number and orchestrate the ATS
// calls. The external ATS is the system of record; nothing is stored locally.
type ApplyController struct {
	ATS           *services.TeamtailorService
	Storage       *services.S3Service
	Notifications *services.EmailNotificationService
}

func NewApplyController(ats *services.TeamtailorService, storage *services.S3Service, notifications *services.EmailNotificationService) *ApplyController {
	return &ApplyController{
		ATS:           ats,
		Storage:       storage,
		Notifications: notifications,
	}
}

// SubmitApplication implements POST /api/apply.
//
// The two ATS calls are sequential and not transactional: if the job
// application call fails after the candidate was created, the candidate is
// left behind in the ATS. That is accepted - candidates merge by email, so a
// retry converges on the same record.
func (c *ApplyController) SubmitApplication(ctx *gin.Context) {
	firstName := ctx.PostForm("firstName")
	lastName := ctx.PostForm("lastName")
	email := ctx.PostForm("email")
	countryCode := ctx.PostForm("countryCode")
	phone := ctx.PostForm("phone")
	language := ctx.PostForm("language")

	if firstName == "" || lastName == "" || email == "" || countryCode == "" || phone == "" || language == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if language != "fr" && language != "nl" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid language selection"})
		return
	}

	fullPhone := utils.NormalizePhone(countryCode, phone)

	// The CV is optional. Upload failures are deliberately non-fatal: an
	// otherwise valid application must not be blocked by the resume step.
	resumeURL := c.handleCV(ctx)

	candidateID, err := c.ATS.CreateCandidate(services.CandidateData{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     fullPhone,
		ResumeURL: resumeURL,
	})
	if err != nil {
		utils.LogError("Application submission error", err, gin.H{"email": email})
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application. Please try again later."})
		return
	}

	jobID := c.ATS.GetJobIDByLanguage(language)

	if _, err := c.ATS.CreateJobApplication(candidateID, jobID); err != nil {
		utils.LogError("Application submission error", err, gin.H{"candidateId": candidateID, "jobId": jobID})
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application. Please try again later."})
		return
	}

	if c.Notifications != nil {
		if err := c.Notifications.SendApplicationConfirmation(email, firstName, language); err != nil {
			log.Printf("Failed to send confirmation email: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"candidateId": candidateID,
	})
}

// handleCV reads the optional CV part, forwards it to the ATS upload store
// and archives a copy when S3 is configured. Returns the resume URL for the
// candidate payload, or "" when no usable CV is present.
func (c *ApplyController) handleCV(ctx *gin.Context) string {
	file, header, err := ctx.Request.FormFile("cv")
	if err != nil {
		return ""
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if err := wizard.ValidateCV(header.Size, mimeType); err != nil {
		log.Printf("Rejected CV %q: %v", header.Filename, err)
		return ""
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read CV %q: %v", header.Filename, err)
		return ""
	}

	if c.Storage != nil {
		if _, err := c.Storage.ArchiveCV(content, header.Filename, mimeType); err != nil {
			log.Printf("Failed to archive CV %q: %v", header.Filename, err)
		}
	}

	resumeURL, err := c.ATS.UploadFile(content, header.Filename, mimeType)
	if err != nil {
		log.Printf("Failed to upload CV %q to ATS, continuing without resume: %v", header.Filename, err)
		return ""
	}
	return resumeURL
}

// ValidateStepRequest carries one wizard step's fields for validation.
type ValidateStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=3"`
	wizard.Form
}

// ValidateStep implements POST /api/apply/validate. The client calls it to
// gate forward wizard transitions; the same rules run again on final submit.
func (c *ApplyController) ValidateStep(ctx *gin.Context) {
	var req ValidateStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request body", err)
		return
	}

	fieldErrors := wizard.ValidateStep(wizard.Step(req.Step), req.Form)

	ctx.JSON(http.StatusOK, gin.H{
		"valid":  len(fieldErrors) == 0,
		"errors": fieldErrors,
	})
}
