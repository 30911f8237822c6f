// Package wizard implements the three-step application form flow: per-step
// field validation, CV attachment constraints and the submit transition.
package wizard

import (
	"errors"
	"regexp"
	"strings"

	"rttsite/content"
)

type Step int

const (
	StepIdentity Step = 1
	StepLanguage Step = 2
	StepReview   Step = 3

	TotalSteps = 3
)

const (
	// MaxCVSize is the upload ceiling for CV files (5 MB).
	MaxCVSize = 5 * 1024 * 1024
	// CVMimeType is the only accepted CV content type.
	CVMimeType = "application/pdf"
)

var (
	ErrCVTooLarge  = errors.New("CV must be 5 MB or smaller")
	ErrCVWrongType = errors.New("CV must be a PDF file")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the applicant fields collected across the wizard steps.
type Form struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
	Language    string `json:"language"`
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// ValidateStep checks only the fields relevant to the given step, mirroring
// how the form gates each forward transition.
func ValidateStep(step Step, f Form) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepIdentity:
		if len(strings.TrimSpace(f.FirstName)) < 2 {
			errs["firstName"] = "First name must be at least 2 characters"
		}
		if len(strings.TrimSpace(f.LastName)) < 2 {
			errs["lastName"] = "Last name must be at least 2 characters"
		}
		if !emailPattern.MatchString(f.Email) {
			errs["email"] = "Please enter a valid email"
		}
		if !content.IsValidCountryCode(f.CountryCode) {
			errs["countryCode"] = "Please select a country code"
		}
		if len(strings.ReplaceAll(f.Phone, " ", "")) < 6 {
			errs["phone"] = "Please enter a valid phone number"
		}
	case StepLanguage:
		if f.Language != "fr" && f.Language != "nl" {
			errs["language"] = "Please select a language"
		}
	case StepReview:
		for s := StepIdentity; s < StepReview; s++ {
			for field, msg := range ValidateStep(s, f) {
				errs[field] = msg
			}
		}
	}

	return errs
}

// ValidateCV enforces the CV constraints. A rejected CV never blocks the
// wizard; it only prevents the file from being attached.
func ValidateCV(size int64, mimeType string) error {
	if mimeType != CVMimeType {
		return ErrCVWrongType
	}
	if size > MaxCVSize {
		return ErrCVTooLarge
	}
	return nil
}

// Wizard tracks a single applicant's progress through the form.
type Wizard struct {
	step        Step
	form        Form
	cvAttached  bool
	fieldErrors FieldErrors
	submitted   bool
	submitError string
}

func New() *Wizard {
	return &Wizard{step: StepIdentity, fieldErrors: FieldErrors{}}
}

func (w *Wizard) Step() Step               { return w.step }
func (w *Wizard) Form() Form               { return w.form }
func (w *Wizard) FieldErrors() FieldErrors { return w.fieldErrors }
func (w *Wizard) CVAttached() bool         { return w.cvAttached }
func (w *Wizard) Submitted() bool          { return w.submitted }
func (w *Wizard) SubmitError() string      { return w.submitError }

func (w *Wizard) SetForm(f Form) {
	w.form = f
}

// Next validates the current step and advances on success. Returns whether
// the transition happened; on failure the field errors are retained.
func (w *Wizard) Next() bool {
	if w.submitted || w.step >= StepReview {
		return false
	}

	w.fieldErrors = ValidateStep(w.step, w.form)
	if len(w.fieldErrors) > 0 {
		return false
	}

	w.step++
	return true
}

// Prev moves back one step. Backward transitions are unconditional.
func (w *Wizard) Prev() {
	if w.submitted || w.step <= StepIdentity {
		return
	}
	w.step--
}

// AttachCV validates and attaches the optional CV. The returned error is
// field-local: progression is never blocked by it.
func (w *Wizard) AttachCV(size int64, mimeType string) error {
	if err := ValidateCV(size, mimeType); err != nil {
		w.cvAttached = false
		return err
	}
	w.cvAttached = true
	return nil
}

// Submit runs the full validation and the provided send function. On success
// the wizard reaches its terminal state; on failure it stays on the review
// step with the error message surfaced and the form data untouched.
func (w *Wizard) Submit(send func(Form) error) error {
	if w.submitted {
		return errors.New("application already submitted")
	}
	if w.step != StepReview {
		return errors.New("submission is only allowed from the review step")
	}

	w.fieldErrors = ValidateStep(StepReview, w.form)
	if len(w.fieldErrors) > 0 {
		return errors.New("form has validation errors")
	}

	if err := send(w.form); err != nil {
		w.submitError = err.Error()
		return err
	}

	w.submitError = ""
	w.submitted = true
	return nil
}
