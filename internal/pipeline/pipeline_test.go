package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-landing-architect/internal/config"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/planning"
)

func TestExecuteGenerateWithoutAPIKey(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := &config.Config{
		GeminiModel: config.DefaultModel,
		StoragePath: filepath.Join(t.TempDir(), "storage.json"),
		OutputDir:   outDir,
	}
	opts := config.GenerateOptions{Topic: "뉴스레터 구독", Target: "직장인", Goal: "구독자 확보"}

	_, err := ExecuteGenerate(context.Background(), cfg, opts)
	var initErr *planning.InitError
	if !errors.As(err, &initErr) || !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Fatalf("ExecuteGenerate() error = %v, want InitError wrapping ErrMissingAPIKey", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Errorf("output dir should not be created: %v", statErr)
	}
}

func TestExecuteSuggestWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{GeminiModel: config.DefaultModel}
	if _, err := ExecuteSuggest(context.Background(), cfg, "설문/피드백 수집"); !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Errorf("ExecuteSuggest() error = %v", err)
	}
}
