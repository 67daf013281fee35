package domain

// Language is a language code understood by the translator.
type Language string

const (
	LanguageAuto    Language = "auto"
	LanguageKorean  Language = "ko"
	LanguageThai    Language = "th"
	LanguageEnglish Language = "en"
)

func (l Language) String() string { return string(l) }

// IsValid reports whether l is one of the concrete languages (auto excluded).
func (l Language) IsValid() bool {
	switch l {
	case LanguageKorean, LanguageThai, LanguageEnglish:
		return true
	}
	return false
}

// IsValidSource reports whether l may be used as a translation source.
func (l Language) IsValidSource() bool {
	return l == LanguageAuto || l.IsValid()
}

// IsValidTarget reports whether l may be used as a translation target.
// Auto lets the model pick: Korean input goes to Thai, everything else to Korean.
func (l Language) IsValidTarget() bool {
	return l == LanguageAuto || l.IsValid()
}

// Languages lists the concrete languages in display order.
func Languages() []Language {
	return []Language{LanguageThai, LanguageKorean, LanguageEnglish}
}

// Tone is the register the translation should be written in.
type Tone string

const (
	TonePolite  Tone = "polite"
	ToneNormal  Tone = "normal"
	ToneCasual  Tone = "casual"
	TonePlayful Tone = "playful"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case TonePolite, ToneNormal, ToneCasual, TonePlayful:
		return true
	}
	return false
}

// ToggleAction reports what a vocabulary toggle did.
type ToggleAction string

const (
	ToggleActionSave   ToggleAction = "save"
	ToggleActionDelete ToggleAction = "delete"
)

func (a ToggleAction) String() string { return string(a) }

// SortColumn is a vocabulary list column that can be sorted on.
type SortColumn string

const (
	SortColumnWord          SortColumn = "word"
	SortColumnPronunciation SortColumn = "pronunciation"
	SortColumnMeaning       SortColumn = "meaning"
	SortColumnCreatedAt     SortColumn = "created_at"
)

func (c SortColumn) String() string { return string(c) }

func (c SortColumn) IsValid() bool {
	switch c {
	case SortColumnWord, SortColumnPronunciation, SortColumnMeaning, SortColumnCreatedAt:
		return true
	}
	return false
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
