package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/translate"
	"github.com/heartmarshall/polyglot-backend/internal/service/wordguide"
)

type translator interface {
	Translate(ctx context.Context, in translate.TranslateInput) (*domain.TranslationResult, error)
}

type savedMarker interface {
	MarkSaved(ctx context.Context, lang domain.Language, items []domain.GlossaryItem) ([]bool, error)
}

type sayer interface {
	Say(ctx context.Context, text string, lang domain.Language) error
}

// translation is what the translate command runs against. saved and
// speaker may be nil.
type translation struct {
	translator translator
	saved      savedMarker
	speaker    sayer
}

func newTranslateCommand(open func(context.Context) (*translation, func(), error)) *cobra.Command {
	var (
		in                   translate.TranslateInput
		source, target, tone string
		speak, noColor       bool
	)

	cmd := &cobra.Command{
		Use:   "translate [TEXT...]",
		Short: "Translate text and print the word guide",
		Long: `Translate text between Korean, Thai and English. Words of the guide are
highlighted in the translation and saved words are marked with *.
Reads the text from stdin when no argument is given.`,
		Example: `  polyglot translate "안녕하세요" --to th
  echo "good morning" | polyglot translate --from en --to ko --tone casual`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(raw)
			}
			in.Text = strings.TrimSpace(text)
			in.Source = domain.Language(source)
			in.Target = domain.Language(target)
			in.Tone = domain.Tone(tone)

			t, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := t.translator.Translate(cmd.Context(), in)
			if err != nil {
				return err
			}
			lang := result.EffectiveTarget(in.Request().Target)

			r := renderer{w: cmd.OutOrStdout(), color: !noColor}
			r.translation(result, lang)
			r.guide(result.WordGuide, savedFlags(cmd, t.saved, result, lang))

			if speak {
				if t.speaker == nil {
					return fmt.Errorf("speech is disabled: set SPEECH_ENABLED=true")
				}
				if err := t.speaker.Say(cmd.Context(), result.TranslatedText, lang); err != nil {
					return fmt.Errorf("speak: %w", err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&source, "from", "auto", "source language: auto, ko, th, en")
	f.StringVar(&target, "to", "th", "target language: auto, ko, th, en")
	f.StringVar(&tone, "tone", "polite", "tone: polite, normal, casual, playful")
	f.StringVar(&in.Credential, "key", "", "API key for this call (overrides the stored one)")
	f.BoolVar(&speak, "speak", false, "read the translation aloud")
	f.BoolVar(&noColor, "no-color", false, "disable ANSI highlighting")

	return cmd
}

// savedFlags reports which guide items are in the vocabulary. Lookup errors
// are printed as warnings and leave the items unmarked.
func savedFlags(cmd *cobra.Command, saved savedMarker, result *domain.TranslationResult, target domain.Language) []bool {
	flags := make([]bool, len(result.WordGuide))
	if saved == nil {
		return flags
	}

	pair := wordguide.Pair{Detected: result.DetectedSource, Target: target}
	byLang := make(map[domain.Language][]int)
	for i, item := range result.WordGuide {
		lang := wordguide.Attribute(item, pair)
		byLang[lang] = append(byLang[lang], i)
	}
	for lang, idx := range byLang {
		items := make([]domain.GlossaryItem, len(idx))
		for j, i := range idx {
			items[j] = result.WordGuide[i]
		}
		marks, err := saved.MarkSaved(cmd.Context(), lang, items)
		if err != nil {
			cmd.PrintErrf("warning: saved-word lookup for %s failed: %v\n", lang, err)
			continue
		}
		for j, i := range idx {
			flags[i] = marks[j]
		}
	}
	return flags
}
