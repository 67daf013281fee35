// Package speech reads text aloud through an external espeak-ng compatible
// command.
package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// DefaultLocale is used for languages without a mapping.
const DefaultLocale = "th-TH"

const baseWordsPerMinute = 175

// DefaultTimeout bounds one background Speak.
const DefaultTimeout = 30 * time.Second

var locales = map[domain.Language]string{
	domain.LanguageThai:    "th-TH",
	domain.LanguageKorean:  "ko-KR",
	domain.LanguageEnglish: "en-US",
}

// voices maps a locale to the espeak-ng voice name.
var voices = map[string]string{
	"th-TH": "th",
	"ko-KR": "ko",
	"en-US": "en-us",
}

// Locale returns the BCP 47 locale used to voice lang.
func Locale(lang domain.Language) string {
	if l, ok := locales[lang]; ok {
		return l
	}
	return DefaultLocale
}

// CmdRunner executes external commands.
type CmdRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

// NewCmdRunner returns a CmdRunner backed by os/exec.
func NewCmdRunner() CmdRunner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Speaker voices text with a fixed command and speaking rate.
type Speaker struct {
	runner  CmdRunner
	command string
	rate    float64
	timeout time.Duration
	onError func(text string, lang domain.Language, err error)
	log     *slog.Logger
}

// Option configures a Speaker.
type Option func(*Speaker)

// WithErrorHandler sets the callback invoked when a fire-and-forget Speak fails.
func WithErrorHandler(fn func(text string, lang domain.Language, err error)) Option {
	return func(s *Speaker) { s.onError = fn }
}

// WithTimeout bounds each background Speak. Non-positive values keep
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Speaker) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSpeaker creates a Speaker. rate scales the command's default speed.
func NewSpeaker(runner CmdRunner, command string, rate float64, logger *slog.Logger, opts ...Option) *Speaker {
	s := &Speaker{
		runner:  runner,
		command: command,
		rate:    rate,
		timeout: DefaultTimeout,
		log:     logger.With("adapter", "speech"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Say voices text and waits for the command to finish.
func (s *Speaker) Say(ctx context.Context, text string, lang domain.Language) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError("text", "required")
	}

	locale := Locale(lang)
	out, err := s.runner.Run(ctx, s.command, s.args(locale, text)...)
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			return fmt.Errorf("speech: %s %s: %w: %s", s.command, locale, err, detail)
		}
		return fmt.Errorf("speech: %s %s: %w", s.command, locale, err)
	}

	s.log.DebugContext(ctx, "speech done",
		slog.String("locale", locale),
		slog.Int("text_len", len([]rune(text))),
	)
	return nil
}

// Speak voices text in the background. It outlives the caller's context but
// is killed after the speaker's timeout. Failures go to the error handler and
// the log; the caller is never blocked.
func (s *Speaker) Speak(ctx context.Context, text string, lang domain.Language) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	go func() {
		defer cancel()
		if err := s.Say(ctx, text, lang); err != nil {
			s.log.WarnContext(ctx, "speech failed", slog.String("error", err.Error()))
			if s.onError != nil {
				s.onError(text, lang, err)
			}
		}
	}()
}

func (s *Speaker) args(locale, text string) []string {
	wpm := int(float64(baseWordsPerMinute) * s.rate)
	return []string{"-v", voices[locale], "-s", strconv.Itoa(wpm), "--", text}
}
