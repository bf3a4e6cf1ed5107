package planning

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired は企画フェーズを経ずにコード生成を呼んだ場合に返されます。
	ErrSessionExpired = errors.New("セッションが期限切れです。最初からやり直してください")
	// ErrAlreadyStarted は同じセッションで企画フェーズを 2 回呼んだ場合に返されます。
	ErrAlreadyStarted = errors.New("このセッションの企画フェーズは既に開始されています")
)

// InitError は会話コンテキストを開けなかったことを表します。
// API キー未設定の場合は llm.ErrMissingAPIKey をラップします。
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("生成サービスのセッション初期化に失敗しました: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
