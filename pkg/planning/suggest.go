package planning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-landing-architect/pkg/domain"
	"github.com/shouni/go-landing-architect/pkg/llm"
	"github.com/shouni/go-landing-architect/pkg/prompts"
)

// Suggest はトピックからターゲット顧客と目標を提案させます。
func Suggest(ctx context.Context, gen llm.TextGenerator, pb prompts.PromptBuilder, topic string) (domain.Suggestion, error) {
	if strings.TrimSpace(topic) == "" {
		return domain.Suggestion{}, fmt.Errorf("%w: トピックが空です", domain.ErrInvalidInputs)
	}

	prompt, err := pb.Build(prompts.ModeSuggest, prompts.TemplateData{Topic: topic})
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("提案プロンプトの生成に失敗しました: %w", err)
	}

	raw, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("提案の生成に失敗しました: %w", err)
	}

	text, ok := canonicalizePlan(strings.TrimSpace(raw))
	if !ok {
		return domain.Suggestion{}, fmt.Errorf("提案が JSON ではありません: %q", text)
	}

	var s domain.Suggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return domain.Suggestion{}, fmt.Errorf("提案の解析に失敗しました: %w", err)
	}
	return s, nil
}
