package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultUnsplashBaseURL = "https://api.unsplash.com"
	DefaultPexelsBaseURL   = "https://api.pexels.com"
	DefaultPixabayBaseURL  = "https://pixabay.com"
)

// ErrNoResult は検索結果に使える画像がなかったことを表します。
var ErrNoResult = errors.New("検索結果に画像がありません")

// Provider は画像検索 API ごとのリクエスト組み立てとレスポンス解釈です。
type Provider interface {
	SearchRequest(ctx context.Context, keyword, key string, page int) (*http.Request, error)
	PingRequest(ctx context.Context, key string) (*http.Request, error)
	PickURL(body []byte) (string, error)
}

func newGet(ctx context.Context, base, path string, q url.Values) (*http.Request, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("ベース URL が不正です: %w", err)
	}
	u = u.JoinPath(path)
	u.RawQuery = q.Encode()
	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}

// Unsplash は Unsplash API です。
type Unsplash struct {
	BaseURL string
}

func (p Unsplash) base() string {
	if p.BaseURL == "" {
		return DefaultUnsplashBaseURL
	}
	return p.BaseURL
}

func (p Unsplash) SearchRequest(ctx context.Context, keyword, key string, page int) (*http.Request, error) {
	return newGet(ctx, p.base(), "/search/photos", url.Values{
		"query":       {keyword},
		"page":        {strconv.Itoa(page)},
		"per_page":    {"1"},
		"orientation": {"landscape"},
		"client_id":   {key},
	})
}

func (p Unsplash) PingRequest(ctx context.Context, key string) (*http.Request, error) {
	return newGet(ctx, p.base(), "/photos/random", url.Values{
		"count":     {"1"},
		"client_id": {key},
	})
}

func (p Unsplash) PickURL(body []byte) (string, error) {
	var res struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("Unsplash のレスポンス解析に失敗しました: %w", err)
	}
	if len(res.Results) == 0 || res.Results[0].URLs.Regular == "" {
		return "", ErrNoResult
	}
	return res.Results[0].URLs.Regular, nil
}

// Pexels は Pexels API です。キーは Authorization ヘッダで送ります。
type Pexels struct {
	BaseURL string
}

func (p Pexels) base() string {
	if p.BaseURL == "" {
		return DefaultPexelsBaseURL
	}
	return p.BaseURL
}

func (p Pexels) SearchRequest(ctx context.Context, keyword, key string, page int) (*http.Request, error) {
	req, err := newGet(ctx, p.base(), "/v1/search", url.Values{
		"query":       {keyword},
		"page":        {strconv.Itoa(page)},
		"per_page":    {"1"},
		"orientation": {"landscape"},
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", key)
	return req, nil
}

func (p Pexels) PingRequest(ctx context.Context, key string) (*http.Request, error) {
	req, err := newGet(ctx, p.base(), "/v1/curated", url.Values{"per_page": {"1"}})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", key)
	return req, nil
}

// PickURL は large2x を優先し、なければ large を返します。
func (p Pexels) PickURL(body []byte) (string, error) {
	var res struct {
		Photos []struct {
			Src struct {
				Large2x string `json:"large2x"`
				Large   string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("Pexels のレスポンス解析に失敗しました: %w", err)
	}
	if len(res.Photos) == 0 {
		return "", ErrNoResult
	}
	src := res.Photos[0].Src
	switch {
	case src.Large2x != "":
		return src.Large2x, nil
	case src.Large != "":
		return src.Large, nil
	}
	return "", ErrNoResult
}

// Pixabay は Pixabay API です。per_page は API の下限の 3 を指定します。
type Pixabay struct {
	BaseURL string
}

func (p Pixabay) base() string {
	if p.BaseURL == "" {
		return DefaultPixabayBaseURL
	}
	return p.BaseURL
}

func (p Pixabay) SearchRequest(ctx context.Context, keyword, key string, page int) (*http.Request, error) {
	return newGet(ctx, p.base(), "/api/", url.Values{
		"key":         {key},
		"q":           {keyword},
		"page":        {strconv.Itoa(page)},
		"image_type":  {"photo"},
		"orientation": {"horizontal"},
		"per_page":    {"3"},
	})
}

func (p Pixabay) PingRequest(ctx context.Context, key string) (*http.Request, error) {
	return newGet(ctx, p.base(), "/api/", url.Values{
		"key":      {key},
		"per_page": {"3"},
	})
}

func (p Pixabay) PickURL(body []byte) (string, error) {
	var res struct {
		Hits []struct {
			LargeImageURL string `json:"largeImageURL"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("Pixabay のレスポンス解析に失敗しました: %w", err)
	}
	if len(res.Hits) == 0 || res.Hits[0].LargeImageURL == "" {
		return "", ErrNoResult
	}
	return res.Hits[0].LargeImageURL, nil
}
