package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		FirstName:   "Jan",
		LastName:    "Peeters",
		Email:       "jan@example.com",
		CountryCode: "+32",
		Phone:       "0492525183",
		Language:    "nl",
	}
}

func TestWizard_InvalidEmailBlocksStepOne(t *testing.T) {
	w := New()

	form := validForm()
	form.Email = "not-an-email"
	w.SetForm(form)

	assert.False(t, w.Next())
	assert.Equal(t, StepIdentity, w.Step())
	assert.Contains(t, w.FieldErrors(), "email")

	// Correcting the email allows the transition.
	form.Email = "jan@example.com"
	w.SetForm(form)
	assert.True(t, w.Next())
	assert.Equal(t, StepLanguage, w.Step())
	assert.Empty(t, w.FieldErrors())
}

func TestWizard_FullProgression(t *testing.T) {
	w := New()
	w.SetForm(validForm())

	assert.True(t, w.Next())
	assert.True(t, w.Next())
	assert.Equal(t, StepReview, w.Step())

	// Forward past the review step is not a thing.
	assert.False(t, w.Next())

	// Backward transitions are unconditional.
	w.Prev()
	assert.Equal(t, StepLanguage, w.Step())
	w.Prev()
	assert.Equal(t, StepIdentity, w.Step())
	w.Prev()
	assert.Equal(t, StepIdentity, w.Step())
}

func TestWizard_LanguageGatesStepTwo(t *testing.T) {
	w := New()

	form := validForm()
	form.Language = "en"
	w.SetForm(form)

	assert.True(t, w.Next())
	assert.False(t, w.Next())
	assert.Equal(t, StepLanguage, w.Step())
	assert.Contains(t, w.FieldErrors(), "language")
}

func TestValidateStep_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"short first name", func(f *Form) { f.FirstName = "J" }, "firstName"},
		{"short last name", func(f *Form) { f.LastName = "P" }, "lastName"},
		{"unknown country code", func(f *Form) { f.CountryCode = "+999" }, "countryCode"},
		{"short phone", func(f *Form) { f.Phone = "12 34" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := ValidateStep(StepIdentity, form)
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateCV(t *testing.T) {
	// 6 MB PDF: too large.
	assert.ErrorIs(t, ValidateCV(6*1024*1024, "application/pdf"), ErrCVTooLarge)

	// 2 MB plain text: wrong type.
	assert.ErrorIs(t, ValidateCV(2*1024*1024, "text/plain"), ErrCVWrongType)

	// 2 MB PDF: accepted.
	assert.NoError(t, ValidateCV(2*1024*1024, "application/pdf"))

	// Exactly at the limit is still accepted.
	assert.NoError(t, ValidateCV(MaxCVSize, "application/pdf"))
	assert.ErrorIs(t, ValidateCV(MaxCVSize+1, "application/pdf"), ErrCVTooLarge)
}

func TestWizard_RejectedCVDoesNotBlockProgression(t *testing.T) {
	w := New()
	w.SetForm(validForm())
	assert.True(t, w.Next())

	err := w.AttachCV(6*1024*1024, "application/pdf")
	assert.ErrorIs(t, err, ErrCVTooLarge)
	assert.False(t, w.CVAttached())

	// The CV error is field-local; the wizard still advances.
	assert.True(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
}

func TestWizard_AttachValidCV(t *testing.T) {
	w := New()
	assert.NoError(t, w.AttachCV(2*1024*1024, "application/pdf"))
	assert.True(t, w.CVAttached())
}

func TestWizard_SubmitFailureKeepsState(t *testing.T) {
	w := New()
	w.SetForm(validForm())
	w.Next()
	w.Next()

	err := w.Submit(func(Form) error { return errors.New("network down") })
	assert.Error(t, err)
	assert.False(t, w.Submitted())
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, "network down", w.SubmitError())
	// Form data survives the failure for a manual retry.
	assert.Equal(t, validForm(), w.Form())

	// Retry succeeds and reaches the terminal state.
	assert.NoError(t, w.Submit(func(Form) error { return nil }))
	assert.True(t, w.Submitted())
	assert.Empty(t, w.SubmitError())

	// Terminal: no further transitions or submissions.
	assert.False(t, w.Next())
	assert.Error(t, w.Submit(func(Form) error { return nil }))
}

func TestWizard_SubmitOnlyFromReview(t *testing.T) {
	w := New()
	w.SetForm(validForm())

	called := false
	err := w.Submit(func(Form) error { called = true; return nil })
	assert.Error(t, err)
	assert.False(t, called)
}
