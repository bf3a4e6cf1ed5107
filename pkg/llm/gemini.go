package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/go-gemini-client/gemini"
	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-3-pro-preview"
	DefaultTemperature = float32(0.7)
)

// Config は Gemini クライアントの設定です。
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Client は Opener / TextGenerator の実装です。
// 会話は genai SDK のチャットで、単発の生成は gemini クライアントで行います。
// どちらのクライアントも最初の呼び出し時に生成されます。
type Client struct {
	cfg Config

	mu     sync.Mutex
	client *genai.Client
	text   gemini.GenerativeModel
}

// NewClient は Client を返します。API キーの検証は最初の呼び出しまで遅延されます。
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &Client{cfg: cfg}
}

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini クライアントの初期化に失敗しました: %w", err)
	}
	c.client = client
	return client, nil
}

// Open はシステム指示付きのチャットを開始します。
func (c *Client) Open(ctx context.Context, systemInstruction string) (Conversation, error) {
	client, err := c.sdk(ctx)
	if err != nil {
		return nil, err
	}

	chat, err := client.Chats.Create(ctx, c.cfg.Model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(c.cfg.Temperature),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("チャットの作成に失敗しました: %w", err)
	}
	slog.DebugContext(ctx, "Gemini chat opened", "model", c.cfg.Model)
	return &chatConversation{chat: chat}, nil
}

// GenerateText は 1 回きりのプロンプトでテキストを生成します。
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	model, err := c.textModel(ctx)
	if err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "Calling Gemini API", "model", c.cfg.Model)
	resp, err := model.GenerateContent(ctx, prompt, c.cfg.Model)
	if err != nil {
		return "", fmt.Errorf("コンテンツ生成に失敗しました: %w", err)
	}
	return resp.Text, nil
}

// textModel は単発生成用のクライアントを返します。
func (c *Client) textModel(ctx context.Context) (gemini.GenerativeModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.text != nil {
		return c.text, nil
	}
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	model, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      c.cfg.APIKey,
		Temperature: genai.Ptr(c.cfg.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	c.text = model
	return model, nil
}

type chatConversation struct {
	chat *genai.Chat
}

func (c *chatConversation) Send(ctx context.Context, message string) (string, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("メッセージの送信に失敗しました: %w", err)
	}
	return resp.Text(), nil
}
