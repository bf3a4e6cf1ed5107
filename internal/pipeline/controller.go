package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/go-landing-architect/pkg/domain"

	"github.com/google/uuid"
)

var (
	// ErrBusy は生成処理の実行中に次の操作を要求した場合に返されます。
	ErrBusy = errors.New("生成処理の実行中です")
	// ErrPlanNotReady は企画書ができる前にコード生成を要求した場合に返されます。
	ErrPlanNotReady = errors.New("企画書がまだ生成されていません")
)

// Planner は 1 回分の企画スレッドです。planning.Session が満たします。
type Planner interface {
	ID() uuid.UUID
	StartPlanning(ctx context.Context, in domain.UserInputs) (string, error)
	GenerateCode(ctx context.Context) (string, error)
}

// ConfigLoader は画像プロバイダ設定を読み込みます。credential.Store が満たします。
type ConfigLoader interface {
	Load() domain.ImageProviderConfig
}

// MarkupProcessor は生成 HTML の仮画像を置き換えます。postprocess.Processor が満たします。
type MarkupProcessor interface {
	Process(ctx context.Context, markup string, cfg domain.ImageProviderConfig) string
}

// Controller はウィザード全体の状態遷移を管理します。
// 企画の送信ごとに新しい Planner を作り、コード生成はその Planner で行います。
type Controller struct {
	newPlanner func() Planner
	configs    ConfigLoader
	processor  MarkupProcessor

	mu      sync.Mutex
	status  domain.AppStatus
	planner Planner
	plan    string
	code    string
	lastErr error
}

// NewController は Idle 状態の Controller を返します。
func NewController(newPlanner func() Planner, configs ConfigLoader, processor MarkupProcessor) *Controller {
	return &Controller{
		newPlanner: newPlanner,
		configs:    configs,
		processor:  processor,
		status:     domain.StatusIdle,
	}
}

func (c *Controller) Status() domain.AppStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) Plan() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan
}

func (c *Controller) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// Err は直近の失敗を返します。成功した操作の後は nil です。
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// SessionID は現在の企画スレッドの ID を返します。企画がなければ uuid.Nil です。
func (c *Controller) SessionID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.planner == nil {
		return uuid.Nil
	}
	return c.planner.ID()
}

// Reset は Idle 状態に戻します。
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = domain.StatusIdle
	c.planner = nil
	c.plan, c.code = "", ""
	c.lastErr = nil
}

// SubmitPlan は新しい企画スレッドを開始し、企画書を生成します。
// 失敗した場合は Error 状態になります。
func (c *Controller) SubmitPlan(ctx context.Context, in domain.UserInputs) error {
	c.mu.Lock()
	if c.busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	c.status = domain.StatusGeneratingPlan
	c.lastErr = nil
	c.mu.Unlock()

	planner := c.newPlanner()
	slog.InfoContext(ctx, "Starting plan generation", "session", planner.ID())
	plan, err := planner.StartPlanning(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "Plan generation failed", "session", planner.ID(), "error", err)
		c.status = domain.StatusError
		c.lastErr = err
		return err
	}
	c.planner = planner
	c.plan = plan
	c.code = ""
	c.status = domain.StatusPlanComplete
	return nil
}

// GenerateCode は現在の企画スレッドで HTML を生成し、仮画像を置き換えます。
// 生成に失敗した場合は PlanComplete 状態に戻ります。
func (c *Controller) GenerateCode(ctx context.Context) error {
	c.mu.Lock()
	if c.busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.planner == nil || (c.status != domain.StatusPlanComplete && c.status != domain.StatusCodeComplete) {
		c.mu.Unlock()
		return ErrPlanNotReady
	}
	planner := c.planner
	c.status = domain.StatusGeneratingCode
	c.lastErr = nil
	c.mu.Unlock()

	imgCfg := c.configs.Load()
	if imgCfg.MissingCredential() {
		slog.WarnContext(ctx, "Selected image provider has no API key, placeholders will be kept",
			"provider", imgCfg.PreferredProvider)
	}

	raw, err := planner.GenerateCode(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Code generation failed", "session", planner.ID(), "error", err)
		c.mu.Lock()
		c.status = domain.StatusPlanComplete
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	final := c.applyImages(ctx, raw, imgCfg)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.code = final
	c.status = domain.StatusCodeComplete
	return nil
}

func (c *Controller) busy() bool {
	return c.status == domain.StatusGeneratingPlan || c.status == domain.StatusGeneratingCode
}

// applyImages は画像置換で何が起きても元の HTML を返せるようにします。
func (c *Controller) applyImages(ctx context.Context, raw string, cfg domain.ImageProviderConfig) (out string) {
	if c.processor == nil {
		return raw
	}
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Image replacement failed, using placeholders", "panic", fmt.Sprint(r))
			out = raw
		}
	}()
	slog.InfoContext(ctx, "Applying images", "provider", cfg.PreferredProvider)
	return c.processor.Process(ctx, raw, cfg)
}
