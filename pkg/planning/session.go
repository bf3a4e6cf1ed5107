// Package planning は企画 JSON と HTML プロトタイプを 2 段階で生成する会話セッションを提供します。
package planning

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/shouni/go-landing-architect/pkg/domain"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/prompts"
)

// State はセッションの進行状態です。
type State int

const (
	StateUnstarted State = iota
	StatePlanDrafted
	StateCodeDrafted
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StatePlanDrafted:
		return "plan_drafted"
	case StateCodeDrafted:
		return "code_drafted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// TemplateLookup はトピックからテンプレートを引く契約です。
type TemplateLookup interface {
	Lookup(topic string) domain.TemplateEntry
}

// Session は 1 つの企画スレッドです。企画フェーズで開いた会話をコード生成フェーズでも使い続けます。
// メソッドは内部で直列化されます。
type Session struct {
	id            uuid.UUID
	opener        llm.Opener
	catalog       TemplateLookup
	promptBuilder prompts.PromptBuilder

	mu    sync.Mutex
	state State
	conv  llm.Conversation
	plan  string
	code  string
}

// NewSession は未開始のセッションを返します。
func NewSession(opener llm.Opener, catalog TemplateLookup, pb prompts.PromptBuilder) *Session {
	return &Session{
		id:            uuid.New(),
		opener:        opener,
		catalog:       catalog,
		promptBuilder: pb,
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Plan は直近の企画フェーズの結果です。
func (s *Session) Plan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// Code は直近のコード生成フェーズの結果です。
func (s *Session) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// StartPlanning は会話を開き、企画書を生成します。
// 応答が JSON として解釈できない場合もエラーにはせず、そのままのテキストを返します。
func (s *Session) StartPlanning(ctx context.Context, in domain.UserInputs) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnstarted {
		return "", ErrAlreadyStarted
	}
	if err := in.Validate(); err != nil {
		return "", err
	}

	entry := s.catalog.Lookup(in.Topic)
	logger := slog.With("session", s.id.String())
	logger.InfoContext(ctx, "Starting planning phase", "topic", in.Topic, "layout", entry.Type.String())

	systemPrompt, err := s.promptBuilder.Build(prompts.ModeSystem, prompts.TemplateData{})
	if err != nil {
		return "", fmt.Errorf("システム指示の生成に失敗しました: %w", err)
	}
	planPrompt, err := s.promptBuilder.Build(prompts.ModePlan, prompts.NewPlanData(in, entry))
	if err != nil {
		return "", fmt.Errorf("企画プロンプトの生成に失敗しました: %w", err)
	}

	conv, err := s.opener.Open(ctx, systemPrompt)
	if err != nil {
		return "", &InitError{Err: err}
	}

	raw, err := conv.Send(ctx, planPrompt)
	if err != nil {
		return "", fmt.Errorf("企画フェーズの生成に失敗しました: %w", err)
	}

	plan, ok := canonicalizePlan(raw)
	if !ok {
		logger.WarnContext(ctx, "Returned plan is not valid JSON, using raw text")
	}

	s.conv = conv
	s.plan = plan
	s.state = StatePlanDrafted
	logger.InfoContext(ctx, "Planning phase completed", "bytes", len(plan), "json", ok)
	return plan, nil
}

// GenerateCode は同じ会話で HTML プロトタイプを生成します。何度でも呼び直せます。
func (s *Session) GenerateCode(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUnstarted || s.conv == nil {
		return "", ErrSessionExpired
	}

	logger := slog.With("session", s.id.String())
	logger.InfoContext(ctx, "Starting code generation phase")

	codePrompt, err := s.promptBuilder.Build(prompts.ModeCode, prompts.TemplateData{})
	if err != nil {
		return "", fmt.Errorf("コード生成プロンプトの生成に失敗しました: %w", err)
	}

	raw, err := s.conv.Send(ctx, codePrompt)
	if err != nil {
		return "", fmt.Errorf("コード生成フェーズの生成に失敗しました: %w", err)
	}

	code := extractHTML(raw)
	if code == FormatErrorFragment {
		logger.WarnContext(ctx, "No HTML document found in response")
	}

	s.code = code
	s.state = StateCodeDrafted
	logger.InfoContext(ctx, "Code generation phase completed", "bytes", len(code))
	return code, nil
}
