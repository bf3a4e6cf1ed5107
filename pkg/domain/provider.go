package domain

import (
	"fmt"
	"slices"
)

// ImageProvider は画像検索プロバイダの識別子です。
type ImageProvider string

const (
	ProviderLoremFlickr ImageProvider = "loremflickr"
	ProviderUnsplash    ImageProvider = "unsplash"
	ProviderPexels      ImageProvider = "pexels"
	ProviderPixabay     ImageProvider = "pixabay"
)

// ImageProviders は対応している全プロバイダです。
var ImageProviders = []ImageProvider{
	ProviderLoremFlickr,
	ProviderUnsplash,
	ProviderPexels,
	ProviderPixabay,
}

// ParseImageProvider は文字列をプロバイダ識別子に変換します。
func ParseImageProvider(s string) (ImageProvider, error) {
	p := ImageProvider(s)
	if !p.Valid() {
		return "", fmt.Errorf("未対応の画像プロバイダです: %q", s)
	}
	return p, nil
}

// Valid は既知のプロバイダかどうかを返します。
func (p ImageProvider) Valid() bool {
	return slices.Contains(ImageProviders, p)
}

// RequiresCredential は API キーが必要なプロバイダかどうかを返します。
func (p ImageProvider) RequiresCredential() bool {
	return p != ProviderLoremFlickr
}

// ImageProviderConfig は画像プロバイダの選択と認証情報です。
// JSON のキー名は永続化済みデータとの互換のため固定です。
type ImageProviderConfig struct {
	PreferredProvider ImageProvider `json:"preferredProvider"`
	UnsplashAccessKey string        `json:"unsplashAccessKey,omitempty"`
	PexelsAPIKey      string        `json:"pexelsApiKey,omitempty"`
	PixabayAPIKey     string        `json:"pixabayApiKey,omitempty"`
}

// DefaultImageProviderConfig は認証不要の loremflickr を選んだ設定を返します。
func DefaultImageProviderConfig() ImageProviderConfig {
	return ImageProviderConfig{PreferredProvider: ProviderLoremFlickr}
}

// CredentialFor は指定プロバイダの認証情報を返します。
func (c ImageProviderConfig) CredentialFor(p ImageProvider) string {
	switch p {
	case ProviderUnsplash:
		return c.UnsplashAccessKey
	case ProviderPexels:
		return c.PexelsAPIKey
	case ProviderPixabay:
		return c.PixabayAPIKey
	}
	return ""
}

// MissingCredential は選択中のプロバイダにキーが設定されていない場合に true を返します。
func (c ImageProviderConfig) MissingCredential() bool {
	return c.PreferredProvider.RequiresCredential() && c.CredentialFor(c.PreferredProvider) == ""
}

// WithCredential は指定プロバイダのキーを差し替えたコピーを返します。
func (c ImageProviderConfig) WithCredential(p ImageProvider, key string) ImageProviderConfig {
	switch p {
	case ProviderUnsplash:
		c.UnsplashAccessKey = key
	case ProviderPexels:
		c.PexelsAPIKey = key
	case ProviderPixabay:
		c.PixabayAPIKey = key
	}
	return c
}
