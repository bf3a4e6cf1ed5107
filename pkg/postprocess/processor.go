// Package postprocess は生成 HTML 内の仮画像 URL を実際の画像 URL に置き換えます。
package postprocess

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-landing-architect/pkg/domain"
)

// DefaultConcurrency は同時に実行する検索の上限です。
const DefaultConcurrency = 8

var placeholderRegex = regexp.MustCompile(`https://loremflickr\.com/1600/900/([a-zA-Z0-9\-_,]+)`)

// ImageResolver はキーワードから画像 URL を引く契約です。見つからない場合は false を返します。
type ImageResolver interface {
	Resolve(ctx context.Context, keyword string, cfg domain.ImageProviderConfig) (string, bool)
}

// Processor は HTML の仮画像を置き換えます。
type Processor struct {
	resolver    ImageResolver
	concurrency int
}

// NewProcessor は Processor を生成します。concurrency が 0 以下ならデフォルトを使います。
func NewProcessor(resolver ImageResolver, concurrency int) *Processor {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Processor{resolver: resolver, concurrency: concurrency}
}

// Keywords は markup に含まれる仮画像のキーワードを出現順に重複なく返します。
func Keywords(markup string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(markup, -1)
	seen := make(map[string]struct{}, len(matches))
	keywords := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		keywords = append(keywords, m[1])
	}
	return keywords
}

// Process は仮画像を検索結果の URL に置き換えた HTML を返します。
// 検索できなかったキーワードの仮画像はそのまま残ります。
func (p *Processor) Process(ctx context.Context, markup string, cfg domain.ImageProviderConfig) string {
	if cfg.PreferredProvider == domain.ProviderLoremFlickr {
		return markup
	}

	keywords := Keywords(markup)
	if len(keywords) == 0 {
		return markup
	}

	slog.InfoContext(ctx, "Resolving placeholder images", "provider", cfg.PreferredProvider, "keywords", len(keywords))

	var (
		mu       sync.Mutex
		resolved = make(map[string]string, len(keywords))
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)

	for _, kw := range keywords {
		eg.Go(func() error {
			u, ok := p.lookup(egCtx, kw, cfg)
			if !ok {
				return nil
			}
			mu.Lock()
			resolved[kw] = u
			mu.Unlock()
			return nil
		})
	}
	// 個々の検索はエラーを返さない
	_ = eg.Wait()

	slog.InfoContext(ctx, "Placeholder images resolved", "resolved", len(resolved), "total", len(keywords))

	return placeholderRegex.ReplaceAllStringFunc(markup, func(match string) string {
		kw := placeholderRegex.FindStringSubmatch(match)[1]
		if u, ok := resolved[kw]; ok {
			return u
		}
		return match
	})
}

func (p *Processor) lookup(ctx context.Context, keyword string, cfg domain.ImageProviderConfig) (u string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Image lookup panicked", "keyword", keyword, "panic", fmt.Sprint(r))
			u, ok = "", false
		}
	}()
	return p.resolver.Resolve(ctx, keyword, cfg)
}
