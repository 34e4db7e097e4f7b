package narrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI speech model IDs.
var openaiModels = map[string]openai.SpeechModel{
	"gpt-4o-mini-tts": openai.TTSModelGPT4oMini,
	"tts-1":           openai.TTSModel1,
	"tts-1-hd":        openai.TTSModel1HD,
}

// OpenAISynth implements Synthesizer with the OpenAI speech endpoint.
type OpenAISynth struct {
	client       *openai.Client
	model        openai.SpeechModel
	voice        openai.SpeechVoice
	instructions string
}

// NewOpenAISynth creates an OpenAI synthesizer.
func NewOpenAISynth(cfg OpenAIConfig) (*OpenAISynth, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model, ok := openaiModels[cfg.Model]
	if !ok {
		model = openai.SpeechModel(cfg.Model)
	}
	voice := openai.SpeechVoice(cfg.Voice)
	if voice == "" {
		voice = openai.VoiceNova
	}

	return &OpenAISynth{
		client:       openai.NewClientWithConfig(config),
		model:        model,
		voice:        voice,
		instructions: cfg.Instructions,
	}, nil
}

func (s *OpenAISynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	speechReq := openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          req.Text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatWav,
		Speed:          clampSpeed(req.Voice.Rate),
	}
	// Older models reject instructions.
	if s.model == openai.TTSModelGPT4oMini {
		speechReq.Instructions = s.instructions
	}

	resp, err := s.client.CreateSpeech(ctx, speechReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, &ErrBackendUnavailable{Backend: BackendOpenAI, Err: err}
	}
	if len(data) == 0 {
		return nil, &ErrEmptyAudio{Backend: BackendOpenAI}
	}
	return &Clip{Data: data, Format: FormatWAV}, nil
}

func (s *OpenAISynth) Name() string {
	return BackendOpenAI + "/" + string(s.model)
}

// clampSpeed keeps the voice rate inside the range OpenAI accepts.
func clampSpeed(rate float64) float64 {
	switch {
	case rate <= 0:
		return 1
	case rate < 0.25:
		return 0.25
	case rate > 4:
		return 4
	}
	return rate
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrBackendUnavailable{Backend: BackendOpenAI, Err: err}
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrBackendUnavailable{Backend: BackendOpenAI, Err: err}
}
