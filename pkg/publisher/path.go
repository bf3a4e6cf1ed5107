package publisher

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveOutputPath は出力ディレクトリとファイル名から保存先パスを生成します。
// ファイル名にディレクトリ要素を含めることはできません。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return "", fmt.Errorf("無効なファイル名です: %q", fileName)
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, fileName), nil
}
