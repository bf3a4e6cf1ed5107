package domain

import "fmt"

// LayoutType はサイトのレイアウト原型を表します。
type LayoutType int

const (
	LayoutAutoDetect LayoutType = iota
	LayoutCard
	LayoutDocument
	LayoutHero
	LayoutGallery
	LayoutLanding
)

var layoutNames = map[LayoutType]string{
	LayoutAutoDetect: "Auto-Detect",
	LayoutCard:       "Card Type",
	LayoutDocument:   "Document Type",
	LayoutHero:       "Hero Type",
	LayoutGallery:    "Gallery Type",
	LayoutLanding:    "Landing Type",
}

// String はプロンプトに埋め込む表記を返します。
func (t LayoutType) String() string {
	if name, ok := layoutNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LayoutType(%d)", int(t))
}

// MarshalText は encoding.TextMarshaler を実装します。
func (t LayoutType) MarshalText() ([]byte, error) {
	name, ok := layoutNames[t]
	if !ok {
		return nil, fmt.Errorf("不明なレイアウト種別です: %d", int(t))
	}
	return []byte(name), nil
}

// UnmarshalText は "Card Type" などの表記からレイアウト種別を復元します。
func (t *LayoutType) UnmarshalText(text []byte) error {
	for k, v := range layoutNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("不明なレイアウト種別です: %q", string(text))
}

// TemplateEntry はトピックごとのレイアウトとサブページ構成です。
type TemplateEntry struct {
	Type        LayoutType `json:"type"`
	Description string     `json:"description"`
	Structure   string     `json:"structure"`
}
