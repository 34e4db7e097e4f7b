package narrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini speech model IDs.
var geminiModels = map[string]string{
	"gemini-flash-tts": "gemini-2.5-flash-preview-tts",
	"gemini-pro-tts":   "gemini-2.5-pro-preview-tts",
}

// Gemini returns raw 16-bit mono PCM at this rate unless the MIME type says
// otherwise.
const geminiSampleRate = 24000

// GeminiSynth implements Synthesizer with Gemini's audio response modality.
type GeminiSynth struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSynth creates a Gemini synthesizer.
func NewGeminiSynth(ctx context.Context, cfg GeminiConfig) (*GeminiSynth, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.Model
	if m, ok := geminiModels[model]; ok {
		model = m
	}

	return &GeminiSynth{client: client, model: model, voice: cfg.Voice}, nil
}

func (s *GeminiSynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
	}
	if s.voice != "" {
		config.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(geminiPrompt(req)), config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			rate := pcmRate(part.InlineData.MIMEType)
			return &Clip{Data: encodeWAV(part.InlineData.Data, rate, 1), Format: FormatWAV}, nil
		}
	}
	return nil, &ErrEmptyAudio{Backend: BackendGemini}
}

func (s *GeminiSynth) Name() string {
	return BackendGemini + "/" + s.model
}

// geminiPrompt steers delivery through the prompt, since the API has no
// rate or pitch controls.
func geminiPrompt(req Request) string {
	style := "Say cheerfully, like a kind teacher talking to a young child"
	if req.Voice.Rate > 0 && req.Voice.Rate < 1 {
		style += ", slowly and clearly"
	}
	return style + ": " + req.Text
}

// pcmRate reads the rate from a MIME type like "audio/L16;codec=pcm;rate=24000".
func pcmRate(mime string) int {
	for _, field := range strings.Split(mime, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(field), "=")
		if ok && k == "rate" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}
	return geminiSampleRate
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrBackendUnavailable{Backend: BackendGemini, Err: err}
		}
	}
	return &ErrBackendUnavailable{Backend: BackendGemini, Err: err}
}
