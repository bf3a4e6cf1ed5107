package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInputs は必須の入力項目が欠けている場合に返されます。
var ErrInvalidInputs = errors.New("入力内容が不正です")

// UserInputs はサイト企画の元になるユーザー入力です。
type UserInputs struct {
	Topic  string `json:"topic"`
	Target string `json:"target"`
	Goal   string `json:"goal"`
}

// Validate は全ての項目が空でないことを確認します。
func (in UserInputs) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Topic) == "" {
		missing = append(missing, "topic")
	}
	if strings.TrimSpace(in.Target) == "" {
		missing = append(missing, "target")
	}
	if strings.TrimSpace(in.Goal) == "" {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: 未入力の項目 [%s]", ErrInvalidInputs, strings.Join(missing, ", "))
	}
	return nil
}

// Suggestion はトピックから推測したターゲット顧客とゴールの提案です。
type Suggestion struct {
	Target string `json:"target"`
	Goal   string `json:"goal"`
}
