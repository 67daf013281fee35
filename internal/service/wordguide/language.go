package wordguide

import (
	"unicode"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Pair is the language context a glossary was produced in.
type Pair struct {
	Detected domain.Language
	Target   domain.Language
}

// Rule returns the language of item, or false to defer to the next rule.
type Rule func(item domain.GlossaryItem, p Pair) (domain.Language, bool)

// DefaultRules is the attribution order used by Attribute: the word's own
// script, then a Thai pronunciation, then the language pair (Thai, English,
// Korean in that order).
var DefaultRules = []Rule{
	ByScript,
	ByPronunciation,
	ByPair(domain.LanguageThai),
	ByPair(domain.LanguageEnglish),
	ByPair(domain.LanguageKorean),
}

// Attribute runs DefaultRules and falls back to Thai.
func Attribute(item domain.GlossaryItem, p Pair) domain.Language {
	return AttributeWith(DefaultRules, item, p)
}

// AttributeWith runs rules in order and falls back to Thai.
func AttributeWith(rules []Rule, item domain.GlossaryItem, p Pair) domain.Language {
	for _, rule := range rules {
		if lang, ok := rule(item, p); ok {
			return lang
		}
	}
	return domain.LanguageThai
}

// ByScript decides from the first letter of the word that belongs to the
// Thai, Hangul or Latin script.
func ByScript(item domain.GlossaryItem, _ Pair) (domain.Language, bool) {
	for _, r := range item.Word {
		switch {
		case unicode.Is(unicode.Thai, r):
			return domain.LanguageThai, true
		case unicode.Is(unicode.Hangul, r):
			return domain.LanguageKorean, true
		case unicode.Is(unicode.Latin, r):
			return domain.LanguageEnglish, true
		}
	}
	return "", false
}

// ByPronunciation attributes items with a pronunciation to Thai; the model
// is only asked for pronunciations of Thai words.
func ByPronunciation(item domain.GlossaryItem, _ Pair) (domain.Language, bool) {
	if item.PronunciationText() != "" {
		return domain.LanguageThai, true
	}
	return "", false
}

// ByPair returns lang when either side of the pair is lang.
func ByPair(lang domain.Language) Rule {
	return func(_ domain.GlossaryItem, p Pair) (domain.Language, bool) {
		if p.Target == lang || p.Detected == lang {
			return lang, true
		}
		return "", false
	}
}

// Split partitions a glossary into items in the source language and the
// rest, which belong to the translated side.
func Split(items []domain.GlossaryItem, p Pair) (source, target []domain.GlossaryItem) {
	source = []domain.GlossaryItem{}
	target = []domain.GlossaryItem{}
	for _, item := range items {
		if Attribute(item, p) == p.Detected {
			source = append(source, item)
		} else {
			target = append(target, item)
		}
	}
	return source, target
}
