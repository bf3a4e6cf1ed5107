package credential

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// DefaultSalt は保存データの難読化に使う固定ソルトです。
// 値を変えると既存の保存データが読めなくなります。
const DefaultSalt = "landing-page-architect-salt-v1"

// Cipher はソルトの全コードユニットを XOR で畳み込んだ 1 つの鍵で
// 各文字を変換する可逆の難読化です。暗号ではありません。
type Cipher struct {
	key uint16
}

// NewCipher は salt から Cipher を生成します。
func NewCipher(salt string) Cipher {
	var key uint16
	for _, u := range utf16.Encode([]rune(salt)) {
		key ^= u
	}
	return Cipher{key: key}
}

// Encode は平文を 2 桁の小文字 16 進数の連結に変換します。
// 0xFF を超えるコードユニットは下位バイトのみが残ります。
func (c Cipher) Encode(plain string) string {
	units := utf16.Encode([]rune(plain))
	var sb strings.Builder
	sb.Grow(len(units) * 2)
	for _, u := range units {
		fmt.Fprintf(&sb, "%02x", byte(u^c.key))
	}
	return sb.String()
}

// Decode は Encode の逆変換です。
func (c Cipher) Decode(encoded string) (string, error) {
	if len(encoded)%2 != 0 {
		return "", fmt.Errorf("難読化データの長さが不正です: %d", len(encoded))
	}
	units := make([]uint16, 0, len(encoded)/2)
	for i := 0; i < len(encoded); i += 2 {
		v, err := strconv.ParseUint(encoded[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("難読化データの %d 文字目が 16 進数ではありません: %w", i, err)
		}
		units = append(units, uint16(v)^c.key)
	}
	return string(utf16.Decode(units)), nil
}
