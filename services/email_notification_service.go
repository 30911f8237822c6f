package services

import (
	"fmt"
	"log"
	"os"
	"time"
)

type EmailNotificationService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewEmailNotificationService() *EmailNotificationService {
	return &EmailNotificationService{
		smtpHost:     os.Getenv("SMTP_HOST"),
		smtpPort:     os.Getenv("SMTP_PORT"),
		smtpUsername: os.Getenv("SMTP_USERNAME"),
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		fromEmail:    os.Getenv("FROM_EMAIL"),
	}
}

// SendApplicationConfirmation confirms to an applicant that their
// application reached the ATS.
func (s *EmailNotificationService) SendApplicationConfirmation(applicantEmail, firstName, language string) error {
	log.Printf("Sending application confirmation email to: %s", applicantEmail)

	var template EmailTemplate

	switch language {
	case "fr":
		template = EmailTemplate{
			Subject: "Votre candidature chez RTT Commerce",
			Body: fmt.Sprintf(`
Bonjour %s,

Merci pour votre candidature chez RTT Commerce !

Notre équipe de recrutement examinera votre profil et vous contactera
dans les 24 heures.

Envoyée le : %s

Cordialement,
L'équipe RTT Commerce
			`, firstName, time.Now().Format("2 January 2006 15:04")),
		}
	default:
		template = EmailTemplate{
			Subject: "Je sollicitatie bij RTT Commerce",
			Body: fmt.Sprintf(`
Hallo %s,

Bedankt voor je sollicitatie bij RTT Commerce!

Ons recruitmentteam bekijkt je profiel en neemt binnen 24 uur contact
met je op.

Verzonden op: %s

Met vriendelijke groet,
Het RTT Commerce team
			`, firstName, time.Now().Format("2 January 2006 15:04")),
		}
	}

	// For now, just log the email instead of actually sending it.
	// In production, you would integrate with an email service like SendGrid, AWS SES, etc.
	log.Printf("EMAIL NOTIFICATION:")
	log.Printf("To: %s", applicantEmail)
	log.Printf("Subject: %s", template.Subject)
	log.Printf("Body: %s", template.Body)

	return nil
}

// SendContactNotification alerts the support mailbox about a new contact
// message.
func (s *EmailNotificationService) SendContactNotification(name, email, subject, message string) error {
	to := s.fromEmail
	if to == "" {
		to = "support@rtt-commerce.com"
	}

	template := EmailTemplate{
		Subject: fmt.Sprintf("New contact message from %s", name),
		Body: fmt.Sprintf(`
New message via the contact form.

From: %s <%s>
Subject: %s
Received: %s

%s
		`, name, email, subject, time.Now().Format("January 2, 2006 at 3:04 PM"), message),
	}

	log.Printf("EMAIL NOTIFICATION:")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", template.Subject)
	log.Printf("Body: %s", template.Body)

	return nil
}
