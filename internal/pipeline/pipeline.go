package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-landing-architect/internal/builder"
	"github.com/shouni/go-landing-architect/internal/config"
	"github.com/shouni/go-landing-architect/pkg/domain"
	"github.com/shouni/go-landing-architect/pkg/planning"
	"github.com/shouni/go-landing-architect/pkg/postprocess"
	"github.com/shouni/go-landing-architect/pkg/publisher"
)

// ExecuteGenerate は企画フェーズとコード生成フェーズを順に実行し、生成物を保存します。
// PlanOnly の場合は企画書だけを保存します。
func ExecuteGenerate(ctx context.Context, cfg *config.Config, opts config.GenerateOptions) (publisher.PublishResult, error) {
	appCtx, err := builder.BuildAppContext(cfg)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	ctrl := newController(appCtx, !opts.NoImages)
	in := domain.UserInputs{Topic: opts.Topic, Target: opts.Target, Goal: opts.Goal}

	// --- Phase 1: 企画 ---
	slog.Info("Phase 1: 企画書の生成を開始します", "topic", in.Topic)
	if err := ctrl.SubmitPlan(ctx, in); err != nil {
		return publisher.PublishResult{}, fmt.Errorf("企画書の生成に失敗しました: %w", err)
	}

	artifacts := publisher.Artifacts{Plan: ctrl.Plan()}

	// --- Phase 2: コード生成と画像置換 ---
	if !opts.PlanOnly {
		slog.Info("Phase 2: HTML の生成を開始します")
		if err := ctrl.GenerateCode(ctx); err != nil {
			// 企画書だけは残す
			if _, pubErr := appCtx.Publisher.Publish(ctx, artifacts, publisher.Options{OutputDir: cfg.OutputDir}); pubErr != nil {
				slog.Error("企画書の保存に失敗しました", "error", pubErr)
			}
			return publisher.PublishResult{}, fmt.Errorf("HTMLの生成に失敗しました: %w", err)
		}
		artifacts.HTML = ctrl.Code()
	}

	// --- Phase 3: 保存 ---
	res, err := appCtx.Publisher.Publish(ctx, artifacts, publisher.Options{OutputDir: cfg.OutputDir})
	if err != nil {
		return res, fmt.Errorf("生成物の保存に失敗しました: %w", err)
	}
	return res, nil
}

// ExecuteSuggest はトピックからターゲット顧客と目標の提案を生成します。
func ExecuteSuggest(ctx context.Context, cfg *config.Config, topic string) (domain.Suggestion, error) {
	appCtx, err := builder.BuildAppContext(cfg)
	if err != nil {
		return domain.Suggestion{}, err
	}
	return planning.Suggest(ctx, appCtx.AIClient(), appCtx.PromptBuilder, topic)
}

func newController(appCtx *builder.AppContext, withImages bool) *Controller {
	newPlanner := func() Planner {
		return planning.NewSession(appCtx.AIClient(), appCtx.Catalog, appCtx.PromptBuilder)
	}
	var processor MarkupProcessor
	if withImages {
		processor = postprocess.NewProcessor(appCtx.Resolver, appCtx.Config.ImageConcurrency)
	}
	return NewController(newPlanner, appCtx.Credentials, processor)
}
