package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedWord is a glossary item the user bookmarked.
// (Word, Language) is unique.
type SavedWord struct {
	ID            uuid.UUID
	Word          string
	Meaning       string
	Pronunciation *string
	Language      Language
	CreatedAt     time.Time
}

// PronunciationText returns the pronunciation or an empty string.
func (w SavedWord) PronunciationText() string {
	if w.Pronunciation == nil {
		return ""
	}
	return *w.Pronunciation
}

// WordKey identifies a saved word without its id.
type WordKey struct {
	Word     string
	Language Language
}
