package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義
const (
	DefaultModel             = "gemini-3-pro-preview"
	DefaultTemperature       = float32(0.7)
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultImageRateInterval = 200 * time.Millisecond
	DefaultImageRateBurst    = 4
	DefaultImageConcurrency  = 8
	DefaultOutputDir         = "output"
	defaultStorageDirName    = "landing-architect"
	defaultStorageFileName   = "storage.json"
)

// Config はアプリケーション全体の環境設定を保持する構造体です。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	StoragePath  string
	OutputDir    string

	Temperature       float32
	HTTPTimeout       time.Duration
	ImageRateInterval time.Duration
	ImageRateBurst    int
	ImageConcurrency  int
}

// LoadConfig は環境変数から設定を読み込み、構造体を返します。
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:      envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:       envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		StoragePath:       envutil.GetEnv("LANDING_STORAGE_PATH", DefaultStoragePath()),
		OutputDir:         envutil.GetEnv("LANDING_OUTPUT_DIR", DefaultOutputDir),
		Temperature:       DefaultTemperature,
		HTTPTimeout:       DefaultHTTPTimeout,
		ImageRateInterval: DefaultImageRateInterval,
		ImageRateBurst:    DefaultImageRateBurst,
		ImageConcurrency:  DefaultImageConcurrency,
	}
}

// DefaultStoragePath はユーザー設定ディレクトリ配下の保存先を返します。
// 設定ディレクトリが取得できない環境ではカレントディレクトリを使います。
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+defaultStorageDirName, defaultStorageFileName)
	}
	return filepath.Join(dir, defaultStorageDirName, defaultStorageFileName)
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータです。
type GenerateOptions struct {
	Topic    string // --topic
	Target   string // --target
	Goal     string // --goal
	PlanOnly bool   // --plan-only
	NoImages bool   // --no-images
}
