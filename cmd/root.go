package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/go-landing-architect/internal/config"

	"github.com/joho/godotenv"
	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

const appName = "landing-architect"

// appFlags は全コマンド共通のフラグなのだ。
var appFlags struct {
	model       string
	outputDir   string
	storagePath string
	envFile     string
	debug       bool
}

// stopSignals は preRunAppE で登録したシグナル監視を解除するのだ。
var stopSignals context.CancelFunc

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&appFlags.model, "model", "", "使用する Gemini モデル名なのだ（既定は GEMINI_MODEL）。")
	rootCmd.PersistentFlags().StringVarP(&appFlags.outputDir, "output-dir", "o", "", "生成物の保存先ディレクトリなのだ（既定は LANDING_OUTPUT_DIR）。")
	rootCmd.PersistentFlags().StringVar(&appFlags.storagePath, "storage", "", "画像プロバイダ設定の保存ファイルなのだ（既定は LANDING_STORAGE_PATH）。")
	rootCmd.PersistentFlags().StringVar(&appFlags.envFile, "env-file", ".env", "読み込む .env ファイルなのだ。")
	rootCmd.PersistentFlags().BoolVar(&appFlags.debug, "debug", false, "デバッグログを出力するのだ。")
}

// preRunAppE は、コマンド実行前に .env の読み込み、ロガーとシグナルの設定を行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if appFlags.envFile != "" {
		if err := godotenv.Load(appFlags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s の読み込みに失敗したのだ: %w", appFlags.envFile, err)
		}
	}

	level := slog.LevelInfo
	if appFlags.debug || flagEnabled(cmd, "verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	if stopSignals != nil {
		stopSignals()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	stopSignals = stop
	cmd.SetContext(ctx)
	return nil
}

// flagEnabled は共通基盤側で定義された bool フラグが立っているかを調べるのだ。
func flagEnabled(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Value.Type() == "bool" && f.Value.String() == "true"
}

// requireAPIKey は Gemini を使うコマンドの事前チェックなのだ。
func requireAPIKey(cmd *cobra.Command, args []string) error {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}
	return nil
}

// loadConfig は環境変数の設定にフラグの指定を上書きした設定を返すのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	if appFlags.model != "" {
		cfg.GeminiModel = appFlags.model
	}
	if appFlags.outputDir != "" {
		cfg.OutputDir = appFlags.outputDir
	}
	if appFlags.storagePath != "" {
		cfg.StoragePath = appFlags.storagePath
	}
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	defer func() {
		if stopSignals != nil {
			stopSignals()
		}
	}()

	clibase.Execute(
		appName,
		addAppFlags,
		preRunAppE,
		generateCmd,
		suggestCmd,
		topicsCmd,
		settingsCmd,
	)
}
