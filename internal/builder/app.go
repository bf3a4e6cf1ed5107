package builder

import (
	"github.com/shouni/go-landing-architect/internal/config"
	"github.com/shouni/go-landing-architect/pkg/catalog"
	"github.com/shouni/go-landing-architect/pkg/credential"
	"github.com/shouni/go-landing-architect/pkg/imagesearch"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/prompts"
	"github.com/shouni/go-landing-architect/pkg/publisher"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持します。
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config        *config.Config             // Configは、環境変数から読み込まれた設定です。
	Catalog       *catalog.Catalog           // Catalogは、トピックごとのテンプレート表です。
	PromptBuilder *prompts.TextPromptBuilder // PromptBuilderは、埋め込みプロンプトの生成器です。
	Credentials   *credential.Store          // Credentialsは、画像プロバイダ設定の保存先です。
	Resolver      *imagesearch.Resolver      // Resolverは、画像検索の実行者です。
	Publisher     *publisher.Publisher       // Publisherは、生成物の保存先です。
	aiClient      *llm.Client                // aiClient はGeminiの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成します。
func NewAppContext(
	cfg *config.Config,
	cat *catalog.Catalog,
	pb *prompts.TextPromptBuilder,
	store *credential.Store,
	resolver *imagesearch.Resolver,
	aiClient *llm.Client,
	writer publisher.OutputWriter,
) AppContext {
	return AppContext{
		Config:        cfg,
		Catalog:       cat,
		PromptBuilder: pb,
		Credentials:   store,
		Resolver:      resolver,
		Publisher:     publisher.NewPublisher(writer),
		aiClient:      aiClient,
	}
}

// AIClient は Gemini クライアントを返します。
func (a *AppContext) AIClient() *llm.Client {
	return a.aiClient
}
