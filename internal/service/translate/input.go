package translate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// TranslateInput holds the parameters of one translation call. Empty
// language and tone fields take the defaults auto → th, polite.
type TranslateInput struct {
	Text       string
	Source     domain.Language
	Target     domain.Language
	Tone       domain.Tone
	Credential string
}

// Validate checks all fields and collects all errors.
func (i TranslateInput) Validate(maxTextLength int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxTextLength)})
	}
	if i.Source != "" && !i.Source.IsValidSource() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be auto, ko, th or en"})
	}
	if i.Target != "" && !i.Target.IsValidTarget() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be auto, ko, th or en"})
	}
	if i.Tone != "" && !i.Tone.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tone", Message: "must be polite, normal, casual or playful"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Request builds the immutable request with defaults applied.
func (i TranslateInput) Request() domain.TranslationRequest {
	req := domain.TranslationRequest{
		Text:   strings.TrimSpace(i.Text),
		Source: i.Source,
		Target: i.Target,
		Tone:   i.Tone,
	}
	if req.Source == "" {
		req.Source = domain.LanguageAuto
	}
	if req.Target == "" {
		req.Target = domain.LanguageThai
	}
	if req.Tone == "" {
		req.Tone = domain.TonePolite
	}
	return req
}
