package builder

import (
	"fmt"
	"net/http"

	"github.com/shouni/go-landing-architect/internal/config"
	"github.com/shouni/go-landing-architect/pkg/catalog"
	"github.com/shouni/go-landing-architect/pkg/credential"
	"github.com/shouni/go-landing-architect/pkg/imagesearch"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/prompts"
	"github.com/shouni/go-landing-architect/pkg/publisher"

	"golang.org/x/time/rate"
)

// BuildAppContext は設定から全ての共通コンポーネントを組み立てます。
func BuildAppContext(cfg *config.Config) (*AppContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("設定が nil です")
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	appCtx := NewAppContext(
		cfg,
		catalog.Default(),
		pb,
		BuildCredentialStore(cfg),
		BuildResolver(cfg),
		InitializeAIClient(cfg),
		publisher.LocalWriter{},
	)
	return &appCtx, nil
}

// BuildCredentialStore はファイルに保存する設定ストアを構築します。
// 保存先が空の場合はプロセス内のみのストアになります。
func BuildCredentialStore(cfg *config.Config) *credential.Store {
	if cfg.StoragePath == "" {
		return credential.NewStore(credential.NewMemoryStore())
	}
	return credential.NewStore(credential.NewFileStore(cfg.StoragePath))
}

// BuildResolver は画像検索の Resolver を構築します。
func BuildResolver(cfg *config.Config) *imagesearch.Resolver {
	var limiter *rate.Limiter
	if cfg.ImageRateInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.ImageRateInterval), max(cfg.ImageRateBurst, 1))
	}
	return imagesearch.NewResolver(imagesearch.Config{
		Doer:    &http.Client{Timeout: cfg.HTTPTimeout},
		Limiter: limiter,
	})
}

// InitializeAIClient は Gemini クライアントを初期化します。API キーの検証は最初の呼び出しで行われます。
func InitializeAIClient(cfg *config.Config) *llm.Client {
	return llm.NewClient(llm.Config{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.Temperature,
	})
}
