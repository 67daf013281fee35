package ws

import (
	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/realtime"
)

// Client message types.
const (
	typeInput     = "input"
	typeClear     = "clear"
	typeSwap      = "swap"
	typeConfigure = "configure"
)

// Server-only message type; the others mirror realtime.UpdateKind.
const typeSettings = "settings"

type clientMessage struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Source     string `json:"source,omitempty"`
	Target     string `json:"target,omitempty"`
	Tone       string `json:"tone,omitempty"`
	Credential string `json:"credential,omitempty"`
}

type serverMessage struct {
	Type           string                `json:"type"`
	RequestID      uint64                `json:"requestId,omitempty"`
	Text           string                `json:"text,omitempty"`
	Source         domain.Language       `json:"source,omitempty"`
	Target         domain.Language       `json:"target,omitempty"`
	Tone           domain.Tone           `json:"tone,omitempty"`
	DetectedSource domain.Language       `json:"detectedSource,omitempty"`
	TranslatedText string                `json:"translatedText,omitempty"`
	SourceGuide    []domain.GlossaryItem `json:"sourceGuide,omitempty"`
	TargetGuide    []domain.GlossaryItem `json:"targetGuide,omitempty"`
	Kind           string                `json:"kind,omitempty"`
	Error          string                `json:"error,omitempty"`
}

func fromUpdate(u realtime.Update) serverMessage {
	switch u.Kind {
	case realtime.UpdateError:
		msg := errorMessage(u.RequestID, u.Err)
		msg.Text = u.Text
		return msg
	case realtime.UpdateCleared:
		return serverMessage{Type: string(realtime.UpdateCleared), RequestID: u.RequestID}
	}

	msg := serverMessage{
		Type:        string(realtime.UpdateResult),
		RequestID:   u.RequestID,
		Text:        u.Text,
		Source:      u.Source,
		Target:      u.Target,
		SourceGuide: u.SourceGuide,
		TargetGuide: u.TargetGuide,
	}
	if u.Result != nil {
		msg.DetectedSource = u.Result.DetectedSource
		msg.TranslatedText = u.Result.TranslatedText
	}
	return msg
}

func errorMessage(requestID uint64, err error) serverMessage {
	kind := "internal"
	if k, ok := domain.KindOf(err); ok {
		kind = k.String()
	}
	return serverMessage{Type: string(realtime.UpdateError), RequestID: requestID, Kind: kind, Error: err.Error()}
}

func settingsMessage(s realtime.Settings) serverMessage {
	return serverMessage{Type: typeSettings, Source: s.Source, Target: s.Target, Tone: s.Tone}
}
