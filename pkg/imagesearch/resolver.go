// Package imagesearch はプレースホルダ画像のキーワードから実際のストック写真 URL を検索します。
package imagesearch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/shouni/go-landing-architect/pkg/domain"
)

const (
	// PlaceholderBaseURL は生成 HTML が使う仮画像 URL の接頭辞です。
	PlaceholderBaseURL = "https://loremflickr.com/1600/900/"

	DefaultHTTPTimeout = 30 * time.Second
	maxPage            = 10
	maxBodyBytes       = 4 << 20
)

// Doer は HTTP リクエストを実行する契約です。*http.Client が満たします。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PlaceholderURL は keyword の仮画像 URL を返します。
func PlaceholderURL(keyword string) string {
	return PlaceholderBaseURL + keyword
}

// Config は Resolver の依存関係です。ゼロ値のフィールドにはデフォルトが使われます。
type Config struct {
	Doer      Doer
	Limiter   *rate.Limiter
	Providers map[domain.ImageProvider]Provider
	// PagePicker は検索結果のページ番号 (1 以上) を返します。
	PagePicker func() int
}

// Resolver は選択されたプロバイダで画像 URL を検索します。
// 失敗はすべて「見つからない」として扱い、呼び出し元にエラーを返しません。
type Resolver struct {
	doer       Doer
	limiter    *rate.Limiter
	providers  map[domain.ImageProvider]Provider
	pickPage   func() int
	fetchGroup singleflight.Group
}

// NewResolver は Resolver を生成します。
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		doer:      cfg.Doer,
		limiter:   cfg.Limiter,
		providers: cfg.Providers,
		pickPage:  cfg.PagePicker,
	}
	if r.doer == nil {
		r.doer = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if r.providers == nil {
		r.providers = DefaultProviders()
	}
	if r.pickPage == nil {
		r.pickPage = randomPage
	}
	return r
}

// DefaultProviders は本番 API を向いたプロバイダ一覧を返します。
func DefaultProviders() map[domain.ImageProvider]Provider {
	return map[domain.ImageProvider]Provider{
		domain.ProviderUnsplash: Unsplash{},
		domain.ProviderPexels:   Pexels{},
		domain.ProviderPixabay:  Pixabay{},
	}
}

func randomPage() int {
	return rand.IntN(maxPage) + 1
}

// Resolve は keyword に対応する画像 URL を返します。
// loremflickr では仮画像 URL をそのまま返し、キー未設定のプロバイダではリクエストを送りません。
func (r *Resolver) Resolve(ctx context.Context, keyword string, cfg domain.ImageProviderConfig) (string, bool) {
	p := cfg.PreferredProvider
	if p == domain.ProviderLoremFlickr {
		return PlaceholderURL(keyword), true
	}

	key := cfg.CredentialFor(p)
	if key == "" {
		return "", false
	}
	provider, ok := r.providers[p]
	if !ok {
		return "", false
	}

	v, err, _ := r.fetchGroup.Do(string(p)+"\x00"+keyword, func() (interface{}, error) {
		return r.search(ctx, provider, keyword, key)
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to fetch image", "provider", p, "keyword", keyword, "error", err)
		return "", false
	}
	u, ok := v.(string)
	return u, ok && u != ""
}

func (r *Resolver) search(ctx context.Context, provider Provider, keyword, key string) (string, error) {
	req, err := provider.SearchRequest(ctx, keyword, key, r.pickPage())
	if err != nil {
		return "", fmt.Errorf("検索リクエストの作成に失敗しました: %w", err)
	}
	body, err := r.do(ctx, req)
	if err != nil {
		return "", err
	}
	return provider.PickURL(body)
}

// TestConnection は認証情報で API に接続できるかを確認します。
func (r *Resolver) TestConnection(ctx context.Context, p domain.ImageProvider, credential string) bool {
	if p == domain.ProviderLoremFlickr {
		return true
	}
	provider, ok := r.providers[p]
	if !ok || credential == "" {
		return false
	}

	req, err := provider.PingRequest(ctx, credential)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build connection test request", "provider", p, "error", err)
		return false
	}
	if _, err := r.do(ctx, req); err != nil {
		slog.WarnContext(ctx, "Connection test failed", "provider", p, "error", err)
		return false
	}
	return true
}

func (r *Resolver) do(ctx context.Context, req *http.Request) ([]byte, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("レートリミッターの待機中にエラー: %w", err)
		}
	}

	resp, err := r.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("リクエストに失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("予期しないステータスコード: %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み込みに失敗しました: %w", err)
	}
	return body, nil
}
