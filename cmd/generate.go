package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-landing-architect/internal/config"
	"github.com/shouni/go-landing-architect/internal/pipeline"

	"github.com/spf13/cobra"
)

var opts config.GenerateOptions

// generateCmd は、企画書と HTML プロトタイプの生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "企画書と HTML プロトタイプを生成するのだ。",
	Long: `トピックに対応するレイアウト原型とサブページ構成を使って企画書（JSON）を生成し、
続けて同じ会話で HTML プロトタイプを生成するのだ。
--plan-only を付けると企画書だけを保存するのだよ。`,
	PreRunE: requireAPIKey,
	RunE:    generateCommand,
}

func init() {
	generateCmd.Flags().StringVarP(&opts.Topic, "topic", "t", "", "ウェブサイトのトピックなのだ（topics コマンドで一覧を確認できるのだ）。")
	generateCmd.Flags().StringVar(&opts.Target, "target", "", "ターゲット顧客なのだ。")
	generateCmd.Flags().StringVar(&opts.Goal, "goal", "", "サイトの核心目標なのだ。")
	generateCmd.Flags().BoolVar(&opts.PlanOnly, "plan-only", false, "企画書だけを生成するのだ。")
	generateCmd.Flags().BoolVar(&opts.NoImages, "no-images", false, "仮画像を置き換えずにそのまま残すのだ。")
	_ = generateCmd.MarkFlagRequired("topic")
	_ = generateCmd.MarkFlagRequired("target")
	_ = generateCmd.MarkFlagRequired("goal")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("ランディングページ生成パイプラインを起動するのだ！",
		"topic", opts.Topic,
		"model", cfg.GeminiModel,
		"output", cfg.OutputDir,
		"plan_only", opts.PlanOnly)

	res, err := pipeline.ExecuteGenerate(ctx, cfg, opts)
	if err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, p := range []string{res.PlanPath, res.HTMLPath, res.NextStepsPath} {
		if p != "" {
			fmt.Fprintln(out, p)
		}
	}
	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
