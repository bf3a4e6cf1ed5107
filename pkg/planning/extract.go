package planning

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	leadingJSONFence = regexp.MustCompile("^```json\\s*")
	leadingFence     = regexp.MustCompile("^```\\s*")
	trailingFence    = regexp.MustCompile("\\s*```$")
	htmlBlockRegex   = regexp.MustCompile("(?s)```html(.*?)```")
)

const (
	doctypeMarker   = "<!DOCTYPE html>"
	closeHTMLMarker = "</html>"
)

// FormatErrorFragment はモデルの応答から HTML を取り出せなかった場合に返す断片です。
const FormatErrorFragment = `<!-- Error: Formatting issue -->
<div class="min-h-screen flex items-center justify-center bg-slate-900 text-white">
  <div class="text-center">
    <h1 class="text-2xl font-bold mb-4">코드 생성 형식 오류</h1>
    <p>AI가 올바른 HTML 형식을 반환하지 않았습니다. 다시 시도해주세요.</p>
  </div>
</div>`

// canonicalizePlan はコードフェンスを外し、JSON であれば 2 スペースで整形します。
// 整形はインデントのみで、数値や文字列エスケープの表記はモデルの出力のまま残ります。
// JSON でなければフェンスを外しただけのテキストと false を返します。
func canonicalizePlan(raw string) (string, bool) {
	if raw == "" {
		raw = "{}"
	}
	text := leadingJSONFence.ReplaceAllString(raw, "")
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")

	trimmed := strings.TrimSpace(text)
	if !json.Valid([]byte(trimmed)) {
		return text, false
	}

	// json.Indent はキーの順序を保つ
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return text, false
	}
	return buf.String(), true
}

// extractHTML は応答テキストから HTML 文書を取り出します。
// 取り出せなかった場合は FormatErrorFragment を返します。
func extractHTML(text string) string {
	start := strings.Index(text, doctypeMarker)
	end := strings.LastIndex(text, closeHTMLMarker)
	if start != -1 && end != -1 && end > start {
		return text[start : end+len(closeHTMLMarker)]
	}

	if m := htmlBlockRegex.FindStringSubmatch(text); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return trimmed
	}

	return FormatErrorFragment
}
