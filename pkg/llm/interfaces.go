// Package llm は生成 AI サービスとの会話を抽象化します。
package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey は API キーが設定されていない場合に返されます。
var ErrMissingAPIKey = errors.New("API キーが設定されていません")

// Conversation はシステム指示を共有する一連のやりとりです。
// 過去の送受信は次の Send の文脈として使われます。
type Conversation interface {
	Send(ctx context.Context, message string) (string, error)
}

// Opener は新しい会話を開始します。
type Opener interface {
	Open(ctx context.Context, systemInstruction string) (Conversation, error)
}

// TextGenerator は会話の文脈を持たない 1 回きりの生成を行います。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
