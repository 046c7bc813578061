package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// googleMaxChunk is the longest text the translate_tts endpoint accepts per
// request. Longer replies are split on word boundaries and the MP3 segments
// concatenated.
const googleMaxChunk = 200

// GoogleTTSConfig holds configuration for the Google Translate TTS backend.
type GoogleTTSConfig struct {
	Language  string // default: "en"
	AccentTLD string // e.g. "co.in" selects the Indian English voice
	BaseURL   string // override for tests; default derived from AccentTLD
}

// GoogleTTS synthesizes speech through the unofficial Google Translate TTS
// endpoint, the same service the original demo used. No API key required.
type GoogleTTS struct {
	cfg        GoogleTTSConfig
	httpClient *http.Client
}

// NewGoogleTTS creates a GoogleTTS with sensible defaults applied.
func NewGoogleTTS(cfg GoogleTTSConfig) *GoogleTTS {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.BaseURL == "" {
		tld := cfg.AccentTLD
		if tld == "" {
			tld = "com"
		}
		cfg.BaseURL = "https://translate.google." + tld
	}
	return &GoogleTTS{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *GoogleTTS) Name() string { return "google-translate" }

// Synthesize fetches one MP3 segment per text chunk and concatenates them.
// MPEG frames are self-delimiting, so the result plays as a single file.
func (g *GoogleTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	text := strings.TrimSpace(req.Input)
	if text == "" {
		return nil, fmt.Errorf("no input text")
	}

	lang := req.Language
	if lang == "" {
		lang = g.cfg.Language
	}

	chunks := splitChunks(text, googleMaxChunk)

	var audio bytes.Buffer
	for i, chunk := range chunks {
		seg, err := g.fetchChunk(ctx, chunk, lang, i, len(chunks))
		if err != nil {
			return nil, err
		}
		audio.Write(seg)
	}

	return &SynthesisResult{
		Audio:       audio.Bytes(),
		ContentType: "audio/mpeg",
	}, nil
}

func (g *GoogleTTS) fetchChunk(ctx context.Context, chunk, lang string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", chunk)
	q.Set("tl", lang)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	httpReq, err := http.NewRequestWithContext(ctx, "GET", g.cfg.BaseURL+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// splitChunks breaks text into pieces of at most max runes, preferring word
// boundaries. A single overlong word is split mid-word rather than rejected.
func splitChunks(text string, max int) []string {
	words := strings.Fields(text)
	var chunks []string
	var b strings.Builder
	for _, w := range words {
		for utf8.RuneCountInString(w) > max {
			runes := []rune(w)
			if b.Len() > 0 {
				chunks = append(chunks, b.String())
				b.Reset()
			}
			chunks = append(chunks, string(runes[:max]))
			w = string(runes[max:])
		}
		if b.Len() == 0 {
			b.WriteString(w)
			continue
		}
		if utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(w) > max {
			chunks = append(chunks, b.String())
			b.Reset()
			b.WriteString(w)
			continue
		}
		b.WriteString(" ")
		b.WriteString(w)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
