package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Fixed replies shown in place of generated notes
const (
	NoteMissingKeywords = "Please enter some keywords to generate notes."
	NoteUnavailable     = "AI service is unavailable. API key not configured."
	NoteFailed          = "Failed to generate AI notes. Please enter manually."
)

const noteTimeout = 30 * time.Second

// NoteResult is the note text and whether it came from the model
type NoteResult struct {
	Notes     string `json:"notes"`
	Generated bool   `json:"generated"`
}

// NoteService drafts service log notes from technician keywords. It never
// fails: every problem turns into one of the fixed replies.
type NoteService struct {
	model llms.Model
	log   *zap.Logger
}

// NewNoteService accepts a nil model, which disables generation
func NewNoteService(model llms.Model, log *zap.Logger) *NoteService {
	return &NoteService{model: model, log: log.Named("notes")}
}

func (s *NoteService) GenerateNotes(ctx context.Context, keywords string) NoteResult {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return NoteResult{Notes: NoteMissingKeywords}
	}
	if s.model == nil {
		return NoteResult{Notes: NoteUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, noteTimeout)
	defer cancel()

	text, err := llms.GenerateFromSinglePrompt(ctx, s.model, notePrompt(keywords), llms.WithTemperature(0.3))
	if err != nil {
		s.log.Warn("note generation failed", zap.Error(err))
		return NoteResult{Notes: NoteFailed}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return NoteResult{Notes: NoteFailed}
	}
	return NoteResult{Notes: text, Generated: true}
}

func notePrompt(keywords string) string {
	return fmt.Sprintf("Based on the following keywords from a medical equipment service, generate a concise "+
		"and professional service log note. The keywords are: %q. The note should be structured and clear for official records.",
		keywords)
}
