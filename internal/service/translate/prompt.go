package translate

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Persona builds the persona clause for a tone. Unknown tones get no tone
// clause.
func Persona(tone domain.Tone) string {
	persona := "Gender: Male. "
	switch tone {
	case domain.TonePolite:
		persona += "Tone: Very Polite & Formal. "
	case domain.ToneNormal:
		persona += "Tone: Standard/Neutral. "
	case domain.ToneCasual:
		persona += "Tone: Casual/Friendly. "
	case domain.TonePlayful:
		persona += "Tone: Witty, Playful. "
	}
	return persona
}

// BuildPrompt renders the instruction sent to the model. The output depends
// only on req.
func BuildPrompt(req domain.TranslationRequest) string {
	var b strings.Builder

	b.WriteString("Role: Expert AI Interpreter.\n")
	fmt.Fprintf(&b, "Input: \"%s\"\n", req.Text)
	fmt.Fprintf(&b, "Config: Source=%s, Target=%s\n", req.Source, req.Target)
	fmt.Fprintf(&b, "Persona: %s\n\n", Persona(req.Tone))
	b.WriteString(promptRules)
	b.WriteString("\n")
	b.WriteString(promptSchema)
	b.WriteString("\n")
	b.WriteString(promptNotes)

	return b.String()
}

const promptRules = `Rules:
1. If Source is 'auto', detect the language.
2. Language codes: ko=Korean, th=Thai, en=English.
3. If the input is Thai or English, translate to Korean.
4. If the input is Korean, translate to Target (Thai when Target is 'auto').
5. IMPORTANT: apply the Persona tone strictly. For Thai output ALWAYS use the male polite ending 'Krub'.
6. Extract important words and expressions and give their Korean meanings:
   - Source is Thai (th): extract Thai words from the INPUT TEXT.
   - Target is Thai (th): extract Thai words from the TRANSLATED TEXT.
   - Source is English (en): extract English words from the INPUT TEXT.
   - Target is English (en): extract English words from the TRANSLATED TEXT.
   - Short texts (under 50 words): at least 5-8 items.
   - Medium texts (50-200 words): at least 10-15 items.
   - Long texts (over 200 words): at least 15-20 items.
   - Include significant nouns, verbs, adjectives, phrases and idioms.
7. Add a "pronunciation" field with the Korean (Hangul) pronunciation for every Thai word in wordGuide.
8. ALWAYS add an "example" field for EVERY item in wordGuide:
   - A natural sentence or phrase in the word's original language using the word.
   - Followed by the Korean pronunciation and meaning in parentheses: "원문 표현/문장 (한국어 발음, 한국어 의미)".
   - Korean examples only need the meaning: "한국어 문장 (한국어 의미)".
`

const promptSchema = `Output JSON ONLY:
{
  "detectedSource": "LANG_CODE",
  "translatedText": "TEXT",
  "wordGuide": [
    {
      "word": "원문단어",
      "meaning": "한국어 의미",
      "pronunciation": "한글발음 (Thai words only)",
      "example": "예문 (단어가 사용된 표현/문장 (한국어 발음, 한국어 의미))"
    }
  ]
}
`

const promptNotes = `Notes:
- Extraction side by direction:
  * Thai -> Korean: Thai words from the INPUT TEXT
  * Korean -> Thai: Thai words from the TRANSLATED TEXT
  * English -> Korean: English words from the INPUT TEXT
  * Korean -> English: English words from the TRANSLATED TEXT
  * Thai -> English: Thai words from the INPUT TEXT
  * English -> Thai: Thai words from the TRANSLATED TEXT
- Prefer words that are common, culturally significant or hard to understand.
- ALWAYS give Korean meanings.
- "detectedSource" MUST be one of ko, th, en.
`
