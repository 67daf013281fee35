package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

var (
	errMissingField = errors.New("missing required field")
	errBadLanguage  = errors.New("unsupported language code")
)

type rawResult struct {
	DetectedSource *string         `json:"detectedSource"`
	TranslatedText *string         `json:"translatedText"`
	WordGuide      json.RawMessage `json:"wordGuide"`
}

type rawItem struct {
	Word          *string `json:"word"`
	Meaning       *string `json:"meaning"`
	Pronunciation *string `json:"pronunciation"`
	Example       *string `json:"example"`
}

// ParseResult validates the model's JSON payload. A missing or malformed
// detectedSource or translatedText, or a wordGuide that is not an array, is
// a json_parse_error. wordGuide may be absent or null, and entries that are
// not usable glossary items are dropped.
func ParseResult(payload string) (*domain.TranslationResult, error) {
	result, _, err := parseResult(payload)
	return result, err
}

// parseResult is ParseResult that also reports why each dropped wordGuide
// entry was rejected.
func parseResult(payload string) (*domain.TranslationResult, []error, error) {
	var raw rawResult
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, nil, parseError(fmt.Errorf("decode result: %w", err))
	}

	detected := strings.ToLower(strings.TrimSpace(deref(raw.DetectedSource)))
	if detected == "" {
		return nil, nil, parseError(fmt.Errorf("detectedSource: %w", errMissingField))
	}
	lang := domain.Language(detected)
	if !lang.IsValid() {
		return nil, nil, parseError(fmt.Errorf("detectedSource %q: %w", detected, errBadLanguage))
	}

	translated := deref(raw.TranslatedText)
	if strings.TrimSpace(translated) == "" {
		return nil, nil, parseError(fmt.Errorf("translatedText: %w", errMissingField))
	}

	guide, skipped, err := parseGuide(raw.WordGuide)
	if err != nil {
		return nil, nil, parseError(err)
	}

	return &domain.TranslationResult{
		DetectedSource: lang,
		TranslatedText: translated,
		WordGuide:      guide,
	}, skipped, nil
}

func parseGuide(data json.RawMessage) ([]domain.GlossaryItem, []error, error) {
	guide := []domain.GlossaryItem{}
	if len(data) == 0 || string(data) == "null" {
		return guide, nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("decode wordGuide: %w", err)
	}

	var skipped []error
	for i, entry := range entries {
		item, err := parseItem(entry)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("wordGuide[%d]: %w", i, err))
			continue
		}
		guide = append(guide, item)
	}
	return guide, skipped, nil
}

func parseItem(entry json.RawMessage) (domain.GlossaryItem, error) {
	var it rawItem
	if err := json.Unmarshal(entry, &it); err != nil {
		return domain.GlossaryItem{}, err
	}
	word := strings.TrimSpace(deref(it.Word))
	if word == "" {
		return domain.GlossaryItem{}, fmt.Errorf("word: %w", errMissingField)
	}
	if it.Meaning == nil {
		return domain.GlossaryItem{}, fmt.Errorf("meaning: %w", errMissingField)
	}
	return domain.GlossaryItem{
		Word:          word,
		Meaning:       strings.TrimSpace(*it.Meaning),
		Pronunciation: optional(it.Pronunciation),
		Example:       optional(it.Example),
	}, nil
}

func parseError(err error) error {
	return domain.NewTranslationError(domain.ErrorKindJSONParse, 0, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional trims s and returns nil when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
