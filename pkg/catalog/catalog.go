// Package catalog はサイトのトピックごとのレイアウト原型とサブページ構成を提供します。
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shouni/go-landing-architect/pkg/domain"
)

// FallbackTopic は一覧にないトピックに使うエントリのキーです。
const FallbackTopic = "기타(사용자입력)"

//go:embed topics.json
var topicsJSON []byte

type record struct {
	Topic string `json:"topic"`
	domain.TemplateEntry
}

// Catalog はトピック名からテンプレートを引く読み取り専用の表です。
type Catalog struct {
	order   []string
	entries map[string]domain.TemplateEntry
}

// New は JSON 配列からカタログを構築します。フォールバックのエントリは必須です。
func New(data []byte) (*Catalog, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("トピック表のデコードに失敗しました: %w", err)
	}

	c := &Catalog{
		order:   make([]string, 0, len(records)),
		entries: make(map[string]domain.TemplateEntry, len(records)),
	}
	for i, r := range records {
		if r.Topic == "" {
			return nil, fmt.Errorf("トピック表の %d 番目にトピック名がありません", i)
		}
		if _, dup := c.entries[r.Topic]; dup {
			return nil, fmt.Errorf("トピック %q が重複しています", r.Topic)
		}
		c.entries[r.Topic] = r.TemplateEntry
		if r.Topic != FallbackTopic {
			c.order = append(c.order, r.Topic)
		}
	}
	if _, ok := c.entries[FallbackTopic]; !ok {
		return nil, errors.New("トピック表にフォールバックのエントリがありません")
	}
	return c, nil
}

// Default は埋め込みのトピック表を使ったカタログを返します。
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(topicsJSON)
	if err != nil {
		panic(fmt.Sprintf("埋め込みのトピック表が不正です: %v", err))
	}
	return c
})

// Lookup は完全一致したトピックのエントリを返し、なければフォールバックを返します。
func (c *Catalog) Lookup(topic string) domain.TemplateEntry {
	if e, ok := c.entries[topic]; ok {
		return e
	}
	return c.entries[FallbackTopic]
}

// Topics は定義順のトピック名一覧を返します。フォールバックは含みません。
func (c *Catalog) Topics() []string {
	return append([]string(nil), c.order...)
}
