package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGoogleTTS_Synthesize(t *testing.T) {
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_tts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("client") != "tw-ob" {
			t.Errorf("missing client param")
		}
		if r.URL.Query().Get("tl") != "en" {
			t.Errorf("unexpected language %q", r.URL.Query().Get("tl"))
		}
		gotQueries = append(gotQueries, r.URL.Query().Get("q"))
		w.Write([]byte("MP3"))
	}))
	defer srv.Close()

	g := NewGoogleTTS(GoogleTTSConfig{BaseURL: srv.URL})
	res, err := g.Synthesize(context.Background(), SynthesisRequest{Input: "Hello there"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotQueries) != 1 || gotQueries[0] != "Hello there" {
		t.Fatalf("unexpected upstream queries: %v", gotQueries)
	}
	if string(res.Audio) != "MP3" || res.ContentType != "audio/mpeg" {
		t.Fatalf("unexpected result: %q %q", res.Audio, res.ContentType)
	}
}

func TestGoogleTTS_LongTextIsChunkedAndConcatenated(t *testing.T) {
	var chunks []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunks = append(chunks, r.URL.Query().Get("q"))
		w.Write([]byte("X"))
	}))
	defer srv.Close()

	long := strings.Repeat("word ", 120) // ~600 chars, needs several chunks
	g := NewGoogleTTS(GoogleTTSConfig{BaseURL: srv.URL})
	res, err := g.Synthesize(context.Background(), SynthesisRequest{Input: long})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected chunked requests, got %d", len(chunks))
	}
	for _, c := range chunks {
		if utf8.RuneCountInString(c) > googleMaxChunk {
			t.Fatalf("chunk exceeds limit: %d runes", utf8.RuneCountInString(c))
		}
	}
	if len(res.Audio) != len(chunks) {
		t.Fatalf("expected %d concatenated segments, got %d bytes", len(chunks), len(res.Audio))
	}
}

func TestGoogleTTS_EmptyInput(t *testing.T) {
	g := NewGoogleTTS(GoogleTTSConfig{})
	if _, err := g.Synthesize(context.Background(), SynthesisRequest{Input: "   "}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestGoogleTTS_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	g := NewGoogleTTS(GoogleTTSConfig{BaseURL: srv.URL})
	if _, err := g.Synthesize(context.Background(), SynthesisRequest{Input: "hi"}); err == nil {
		t.Fatal("expected error on 403 response")
	}
}

func TestSplitChunks_WordBoundaries(t *testing.T) {
	chunks := splitChunks("alpha beta gamma", 11)
	want := []string{"alpha beta", "gamma"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %v, got %v", want, chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, chunks)
		}
	}
}

func TestSplitChunks_OverlongWord(t *testing.T) {
	chunks := splitChunks(strings.Repeat("a", 25), 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %v", chunks)
	}
}
