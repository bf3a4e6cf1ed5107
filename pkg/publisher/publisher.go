// Package publisher は企画書と HTML プロトタイプを出力先に保存します。
package publisher

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
)

const (
	PlanJSONName  = "landing_plan.json"
	PlanTextName  = "landing_plan.txt"
	HTMLName      = "landing-page.html"
	NextStepsName = "NEXT_STEPS.md"
)

// ConversionPrompt は HTML プロトタイプを Vite + React プロジェクトに変換させるためのプロンプトです。
const ConversionPrompt = `첨부 소스를 바탕으로 GitHub 업로드 및 Vercel 배포가 가능한 Vite + React + TypeScript 프로젝트 구조로 변환해줘.
package.json, vite.config.ts, tsconfig.json 등 설정 파일을 포함하여 컴포넌트별로 파일을 완벽하게 분리해줘.`

//go:embed next_steps.md
var nextStepsTemplate string

var nextSteps = template.Must(template.New(NextStepsName).Parse(nextStepsTemplate))

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// Artifacts は保存対象の生成物です。空のフィールドは保存されません。
type Artifacts struct {
	Plan string
	HTML string
}

// PublishResult は保存したファイルのパスです。
type PublishResult struct {
	PlanPath      string
	HTMLPath      string
	NextStepsPath string
}

// Publisher は生成物の永続化を担います。
type Publisher struct {
	writer OutputWriter
}

// NewPublisher は writer を保存先とする Publisher を返します。
func NewPublisher(writer OutputWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish は企画書、HTML、変換手順を保存します。
// 企画書が JSON でない場合は .txt として保存します。
func (p *Publisher) Publish(ctx context.Context, a Artifacts, opts Options) (PublishResult, error) {
	result := PublishResult{}

	if a.Plan != "" {
		name := PlanJSONName
		if !json.Valid([]byte(a.Plan)) {
			name = PlanTextName
		}
		planPath, err := p.write(ctx, opts.OutputDir, name, a.Plan)
		if err != nil {
			return result, fmt.Errorf("企画書の書き込みに失敗しました: %w", err)
		}
		result.PlanPath = planPath
	}

	if a.HTML != "" {
		htmlPath, err := p.write(ctx, opts.OutputDir, HTMLName, a.HTML)
		if err != nil {
			return result, fmt.Errorf("HTMLの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath

		var sb strings.Builder
		if err := nextSteps.Execute(&sb, struct{ ConversionPrompt string }{ConversionPrompt}); err != nil {
			return result, fmt.Errorf("変換手順の生成に失敗しました: %w", err)
		}
		stepsPath, err := p.write(ctx, opts.OutputDir, NextStepsName, sb.String())
		if err != nil {
			return result, fmt.Errorf("変換手順の書き込みに失敗しました: %w", err)
		}
		result.NextStepsPath = stepsPath
	}

	return result, nil
}

func (p *Publisher) write(ctx context.Context, dir, name, content string) (string, error) {
	fullPath, err := ResolveOutputPath(dir, name)
	if err != nil {
		return "", err
	}
	if err := p.writer.Write(ctx, fullPath, []byte(content)); err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "Artifact saved", "path", fullPath, "bytes", len(content))
	return fullPath, nil
}
