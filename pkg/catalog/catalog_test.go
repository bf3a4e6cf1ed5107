package catalog

import (
	"testing"

	"github.com/shouni/go-landing-architect/pkg/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	if got := len(c.Topics()); got != 19 {
		t.Fatalf("Topics() len = %d, want 19", got)
	}

	tests := []struct {
		name     string
		topic    string
		wantType domain.LayoutType
	}{
		{"カード型", "개인 홈피(About Me)", domain.LayoutCard},
		{"ドキュメント型", "이력서/경력 소개(온라인 CV)", domain.LayoutDocument},
		{"ギャラリー型", "포트폴리오(디자이너/개발자/작가)", domain.LayoutGallery},
		{"ランディング型", "오픈소스/프로젝트 랜딩", domain.LayoutLanding},
		{"ヒーロー型", "설문/피드백 수집", domain.LayoutHero},
		{"一覧にないトピック", "우주 여행사", domain.LayoutAutoDetect},
		{"前後の空白は一致しない", " 뉴스레터 구독", domain.LayoutAutoDetect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Lookup(tt.topic)
			if got.Type != tt.wantType {
				t.Errorf("Lookup(%q).Type = %v, want %v", tt.topic, got.Type, tt.wantType)
			}
			if got.Structure == "" || got.Description == "" {
				t.Errorf("Lookup(%q) has empty fields: %+v", tt.topic, got)
			}
		})
	}

	t.Run("フォールバックの内容", func(t *testing.T) {
		got := c.Lookup("")
		want := "Main: 핵심 섹션 / Sub 1: 상세 정보, Sub 2: 기능/서비스, Sub 3: 소개/안내, Sub 4: 문의/지원 (주제에 맞춰 4개 필수 구성)"
		if got.Structure != want {
			t.Errorf("fallback structure = %q", got.Structure)
		}
	})

	t.Run("定義順", func(t *testing.T) {
		topics := c.Topics()
		if topics[0] != "개인 홈피(About Me)" || topics[18] != "설문/피드백 수집" {
			t.Errorf("unexpected order: first=%q last=%q", topics[0], topics[18])
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("フォールバックなし", func(t *testing.T) {
		data := []byte(`[{"topic":"a","type":"Card Type","description":"d","structure":"s"}]`)
		if _, err := New(data); err == nil {
			t.Error("New() should fail without fallback entry")
		}
	})

	t.Run("不明なレイアウト", func(t *testing.T) {
		data := []byte(`[{"topic":"기타(사용자입력)","type":"Blog Type","description":"d","structure":"s"}]`)
		if _, err := New(data); err == nil {
			t.Error("New() should fail on unknown layout type")
		}
	})

	t.Run("重複", func(t *testing.T) {
		data := []byte(`[{"topic":"기타(사용자입력)","type":"Auto-Detect"},{"topic":"기타(사용자입력)","type":"Auto-Detect"}]`)
		if _, err := New(data); err == nil {
			t.Error("New() should fail on duplicate topic")
		}
	})
}
