package prompts

import "github.com/shouni/go-landing-architect/pkg/domain"

// TemplateData はプロンプトテンプレートに渡すデータ構造です。
type TemplateData struct {
	Topic     string
	Target    string
	Goal      string
	Style     string
	Structure string
}

// NewPlanData は企画フェーズのテンプレートデータを組み立てます。
func NewPlanData(in domain.UserInputs, entry domain.TemplateEntry) TemplateData {
	return TemplateData{
		Topic:     in.Topic,
		Target:    in.Target,
		Goal:      in.Goal,
		Style:     entry.Type.String(),
		Structure: entry.Structure,
	}
}
