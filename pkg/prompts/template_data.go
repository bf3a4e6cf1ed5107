package prompts

import (
	_ "embed"
)

const (
	ModeSystem  = "system"
	ModePlan    = "plan"
	ModeCode    = "code"
	ModeSuggest = "suggest"
)

var (
	//go:embed templates/system.md
	SystemPrompt string
	//go:embed templates/plan.md
	PlanPrompt string
	//go:embed templates/code.md
	CodePrompt string
	//go:embed templates/suggest.md
	SuggestPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	ModeSystem:  SystemPrompt,
	ModePlan:    PlanPrompt,
	ModeCode:    CodePrompt,
	ModeSuggest: SuggestPrompt,
}
