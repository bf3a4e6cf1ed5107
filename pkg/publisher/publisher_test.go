package publisher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON の企画書と HTML", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		p := NewPublisher(LocalWriter{})
		res, err := p.Publish(ctx, Artifacts{Plan: "{\n  \"a\": 1\n}", HTML: "<!DOCTYPE html><html></html>"}, Options{OutputDir: dir})
		if err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if res.PlanPath != filepath.Join(dir, PlanJSONName) {
			t.Errorf("PlanPath = %q", res.PlanPath)
		}
		if res.HTMLPath != filepath.Join(dir, HTMLName) {
			t.Errorf("HTMLPath = %q", res.HTMLPath)
		}

		html, err := os.ReadFile(res.HTMLPath)
		if err != nil || string(html) != "<!DOCTYPE html><html></html>" {
			t.Errorf("html = %q, %v", html, err)
		}
		steps, err := os.ReadFile(res.NextStepsPath)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !strings.Contains(string(steps), "Vite + React + TypeScript") || !strings.Contains(string(steps), "vercel.json") {
			t.Errorf("next steps = %q", steps)
		}
	})

	t.Run("JSON でない企画書は txt", func(t *testing.T) {
		dir := t.TempDir()
		res, err := NewPublisher(LocalWriter{}).Publish(ctx, Artifacts{Plan: "not json"}, Options{OutputDir: dir})
		if err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if filepath.Base(res.PlanPath) != PlanTextName {
			t.Errorf("PlanPath = %q", res.PlanPath)
		}
		if res.HTMLPath != "" || res.NextStepsPath != "" {
			t.Errorf("unexpected outputs: %+v", res)
		}
	})
}

func TestResolveOutputPath(t *testing.T) {
	if got, err := ResolveOutputPath("", "a.html"); err != nil || got != "a.html" {
		t.Errorf("ResolveOutputPath() = %q, %v", got, err)
	}
	for _, name := range []string{"", "../x", "a/b", ".hidden"} {
		if _, err := ResolveOutputPath("out", name); err == nil {
			t.Errorf("ResolveOutputPath(%q) should fail", name)
		}
	}
}
