package pyannote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
)

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("RIFF fake wav"), 0644); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return path
}

func TestDiarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/diarize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("num_speakers"); got != "2" {
			t.Errorf("expected num_speakers '2', got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"num_speakers": 2,
			"segments": []map[string]any{
				{"speaker": "SPEAKER_00", "start": 0.0, "end": 1.5},
				{"speaker": "SPEAKER_01", "start": 1.6, "end": 3.5},
			},
		})
	}))
	defer srv.Close()

	p := NewProvider(Config{BaseURL: srv.URL})
	resp, err := p.Diarize(context.Background(), diarization.DiarizationRequest{
		AudioPath:   writeTempAudio(t),
		NumSpeakers: 2,
	})
	if err != nil {
		t.Fatalf("Diarize failed: %v", err)
	}
	if resp.NumSpeakers != 2 {
		t.Errorf("expected 2 speakers, got %d", resp.NumSpeakers)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(resp.Segments))
	}
	if resp.Segments[0].Speaker != "SPEAKER_00" {
		t.Errorf("expected SPEAKER_00, got %q", resp.Segments[0].Speaker)
	}
}

func TestDiarizeSidecarError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": "pipeline not loaded"})
	}))
	defer srv.Close()

	p := NewProvider(Config{BaseURL: srv.URL})
	_, err := p.Diarize(context.Background(), diarization.DiarizationRequest{
		AudioPath: writeTempAudio(t),
	})
	if err == nil {
		t.Fatal("expected error from sidecar error payload")
	}
}

func TestNameAndDefaults(t *testing.T) {
	p := NewProvider(Config{})
	if p.Name() != ProviderName {
		t.Errorf("expected name %q, got %q", ProviderName, p.Name())
	}
	if p.cfg.BaseURL != defaultPyannoteURL {
		t.Errorf("expected default URL, got %q", p.cfg.BaseURL)
	}
}
