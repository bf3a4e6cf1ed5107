package planning

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-landing-architect/pkg/catalog"
	"github.com/shouni/go-landing-architect/pkg/domain"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/prompts"

	"github.com/google/uuid"
)

type fakeConversation struct {
	replies []string
	err     error
	sent    []string
}

func (c *fakeConversation) Send(_ context.Context, message string) (string, error) {
	c.sent = append(c.sent, message)
	if c.err != nil {
		return "", c.err
	}
	if len(c.replies) == 0 {
		return "", nil
	}
	r := c.replies[0]
	c.replies = c.replies[1:]
	return r, nil
}

type fakeOpener struct {
	conv    *fakeConversation
	err     error
	opened  int
	systems []string
}

func (o *fakeOpener) Open(_ context.Context, systemInstruction string) (llm.Conversation, error) {
	o.opened++
	o.systems = append(o.systems, systemInstruction)
	if o.err != nil {
		return nil, o.err
	}
	return o.conv, nil
}

var validInputs = domain.UserInputs{
	Topic:  "뉴스레터 구독",
	Target: "바쁜 직장인",
	Goal:   "구독자 500명 확보",
}

func newTestSession(t *testing.T, opener llm.Opener) *Session {
	t.Helper()
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("NewTextPromptBuilder() error = %v", err)
	}
	return NewSession(opener, catalog.Default(), pb)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("セッションごとに異なる ID", func(t *testing.T) {
		a := newTestSession(t, &fakeOpener{})
		b := newTestSession(t, &fakeOpener{})
		if a.ID() == uuid.Nil || a.ID() == b.ID() {
			t.Errorf("IDs = %v, %v", a.ID(), b.ID())
		}
	})

	t.Run("企画前のコード生成は期限切れ", func(t *testing.T) {
		s := newTestSession(t, &fakeOpener{conv: &fakeConversation{}})
		if _, err := s.GenerateCode(ctx); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("GenerateCode() error = %v, want ErrSessionExpired", err)
		}
		if s.State() != StateUnstarted {
			t.Errorf("State() = %v", s.State())
		}
	})

	t.Run("企画からコード生成まで同じ会話を使う", func(t *testing.T) {
		conv := &fakeConversation{replies: []string{
			"```json\n{\"a\":1}\n```",
			"Here you go:\n<!DOCTYPE html><html><body>hi</body></html>\nEnjoy!",
		}}
		opener := &fakeOpener{conv: conv}
		s := newTestSession(t, opener)

		plan, err := s.StartPlanning(ctx, validInputs)
		if err != nil {
			t.Fatalf("StartPlanning() error = %v", err)
		}
		if plan != "{\n  \"a\": 1\n}" {
			t.Errorf("plan = %q", plan)
		}
		if s.State() != StatePlanDrafted {
			t.Errorf("State() = %v, want plan_drafted", s.State())
		}

		code, err := s.GenerateCode(ctx)
		if err != nil {
			t.Fatalf("GenerateCode() error = %v", err)
		}
		if code != "<!DOCTYPE html><html><body>hi</body></html>" {
			t.Errorf("code = %q", code)
		}
		if s.State() != StateCodeDrafted {
			t.Errorf("State() = %v, want code_drafted", s.State())
		}
		if opener.opened != 1 {
			t.Errorf("opened = %d, want 1", opener.opened)
		}
		if len(conv.sent) != 2 {
			t.Fatalf("sent = %d messages, want 2", len(conv.sent))
		}
		if !strings.Contains(conv.sent[0], "Hero Type") || !strings.Contains(conv.sent[0], "바쁜 직장인") {
			t.Errorf("plan prompt lacks inputs: %q", conv.sent[0])
		}
		if !strings.Contains(opener.systems[0], "Phase 1") {
			t.Errorf("system instruction = %q", opener.systems[0])
		}
	})

	t.Run("コード生成は再実行できる", func(t *testing.T) {
		conv := &fakeConversation{replies: []string{"{}", "<div>1</div>", "no html"}}
		s := newTestSession(t, &fakeOpener{conv: conv})
		if _, err := s.StartPlanning(ctx, validInputs); err != nil {
			t.Fatal(err)
		}
		if got, _ := s.GenerateCode(ctx); got != "<div>1</div>" {
			t.Errorf("first GenerateCode() = %q", got)
		}
		got, err := s.GenerateCode(ctx)
		if err != nil {
			t.Fatalf("second GenerateCode() error = %v", err)
		}
		if got != FormatErrorFragment {
			t.Errorf("second GenerateCode() = %q", got)
		}
		if s.State() != StateCodeDrafted {
			t.Errorf("State() = %v", s.State())
		}
	})

	t.Run("企画は一度だけ", func(t *testing.T) {
		s := newTestSession(t, &fakeOpener{conv: &fakeConversation{replies: []string{"{}"}}})
		if _, err := s.StartPlanning(ctx, validInputs); err != nil {
			t.Fatal(err)
		}
		if _, err := s.StartPlanning(ctx, validInputs); !errors.Is(err, ErrAlreadyStarted) {
			t.Errorf("second StartPlanning() error = %v", err)
		}
	})

	t.Run("API キーなしは初期化エラー", func(t *testing.T) {
		s := newTestSession(t, &fakeOpener{err: llm.ErrMissingAPIKey})
		_, err := s.StartPlanning(ctx, validInputs)
		var initErr *InitError
		if !errors.As(err, &initErr) {
			t.Fatalf("error = %v, want *InitError", err)
		}
		if !errors.Is(err, llm.ErrMissingAPIKey) {
			t.Errorf("error should wrap ErrMissingAPIKey: %v", err)
		}
		if s.State() != StateUnstarted {
			t.Errorf("State() = %v", s.State())
		}
	})

	t.Run("送信失敗では状態が変わらない", func(t *testing.T) {
		s := newTestSession(t, &fakeOpener{conv: &fakeConversation{err: errors.New("boom")}})
		if _, err := s.StartPlanning(ctx, validInputs); err == nil {
			t.Fatal("StartPlanning() should fail")
		}
		if s.State() != StateUnstarted {
			t.Errorf("State() = %v", s.State())
		}
		if _, err := s.GenerateCode(ctx); !errors.Is(err, ErrSessionExpired) {
			t.Errorf("GenerateCode() error = %v", err)
		}
	})

	t.Run("入力不足", func(t *testing.T) {
		opener := &fakeOpener{conv: &fakeConversation{}}
		s := newTestSession(t, opener)
		_, err := s.StartPlanning(ctx, domain.UserInputs{Topic: "x"})
		if !errors.Is(err, domain.ErrInvalidInputs) {
			t.Errorf("error = %v", err)
		}
		if opener.opened != 0 {
			t.Errorf("opener should not be called")
		}
	})
}

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("提案の解析", func(t *testing.T) {
		gen := &fakeGenerator{reply: `{"target":"30대 직장인","goal":"전환율 10%"}`}
		got, err := Suggest(ctx, gen, pb, "설문/피드백 수집")
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if got.Target != "30대 직장인" || got.Goal != "전환율 10%" {
			t.Errorf("Suggest() = %+v", got)
		}
		if !strings.Contains(gen.prompt, "설문/피드백 수집") || !strings.Contains(gen.prompt, `"target"`) {
			t.Errorf("prompt = %q", gen.prompt)
		}
	})

	t.Run("コードフェンス付きの応答", func(t *testing.T) {
		gen := &fakeGenerator{reply: "```json\n{\"target\":\"학생\",\"goal\":\"가입\"}\n```"}
		got, err := Suggest(ctx, gen, pb, "x")
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if got.Target != "학생" || got.Goal != "가입" {
			t.Errorf("Suggest() = %+v", got)
		}
	})

	t.Run("空の応答", func(t *testing.T) {
		got, err := Suggest(ctx, &fakeGenerator{}, pb, "x")
		if err != nil || got != (domain.Suggestion{}) {
			t.Errorf("Suggest() = %+v, %v", got, err)
		}
	})

	t.Run("JSON ではない応答", func(t *testing.T) {
		if _, err := Suggest(ctx, &fakeGenerator{reply: "잘 모르겠습니다"}, pb, "x"); err == nil {
			t.Error("Suggest() should fail on a non-JSON reply")
		}
	})

	t.Run("空のトピック", func(t *testing.T) {
		if _, err := Suggest(ctx, &fakeGenerator{}, pb, " "); !errors.Is(err, domain.ErrInvalidInputs) {
			t.Errorf("error = %v", err)
		}
	})
}
