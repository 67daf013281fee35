package domain

// TranslationRequest is one translation task. It is not modified after
// it has been turned into a prompt.
type TranslationRequest struct {
	Text   string
	Source Language
	Target Language
	Tone   Tone
}

// TranslationResult is the validated payload returned by the model.
type TranslationResult struct {
	DetectedSource Language       `json:"detectedSource"`
	TranslatedText string         `json:"translatedText"`
	WordGuide      []GlossaryItem `json:"wordGuide"`
}

// EffectiveTarget resolves the language the translation was written in.
// An explicit target wins; for auto, Korean input means Thai output and
// anything else means Korean output.
func (r *TranslationResult) EffectiveTarget(requested Language) Language {
	if requested != LanguageAuto && requested != "" {
		return requested
	}
	if r.DetectedSource == LanguageKorean {
		return LanguageThai
	}
	return LanguageKorean
}

// GlossaryItem is one vocabulary unit extracted by the model.
// Pronunciation is only expected for Thai words. Example is requested from
// the model on every item but must not be relied upon.
type GlossaryItem struct {
	Word          string  `json:"word"`
	Meaning       string  `json:"meaning"`
	Pronunciation *string `json:"pronunciation,omitempty"`
	Example       *string `json:"example,omitempty"`
}

// PronunciationText returns the pronunciation or an empty string.
func (g GlossaryItem) PronunciationText() string {
	if g.Pronunciation == nil {
		return ""
	}
	return *g.Pronunciation
}

// WordMatch is one occurrence of a glossary word inside rendered text.
// Start and End are rune offsets; End is exclusive.
type WordMatch struct {
	Word  string       `json:"word"`
	Item  GlossaryItem `json:"data"`
	Start int          `json:"startIndex"`
	End   int          `json:"endIndex"`
}
