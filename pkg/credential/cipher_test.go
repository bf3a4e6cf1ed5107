package credential

import "testing"

func TestCipher(t *testing.T) {
	c := NewCipher(DefaultSalt)

	t.Run("ソルトの畳み込み鍵", func(t *testing.T) {
		if c.key != 0x4e {
			t.Fatalf("key = %#x, want 0x4e", c.key)
		}
	})

	t.Run("既知のベクタ", func(t *testing.T) {
		tests := []struct {
			plain string
			want  string
		}{
			{"", ""},
			{"abc", "2f2c2d"},
			{`{"preferredProvider":"loremflickr"}`, "356c3e3c2b282b3c3c2b2a1e3c2138272a2b3c6c746c22213c2b232822272d253c6c33"},
		}
		for _, tt := range tests {
			got := c.Encode(tt.plain)
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			back, err := c.Decode(got)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", got, err)
			}
			if back != tt.plain {
				t.Errorf("Decode(Encode(%q)) = %q", tt.plain, back)
			}
		}
	})

	t.Run("ASCII の往復", func(t *testing.T) {
		plain := `{"preferredProvider":"pexels","pexelsApiKey":"k-123_ABC"}`
		got, err := c.Decode(c.Encode(plain))
		if err != nil {
			t.Fatalf("Decode error = %v", err)
		}
		if got != plain {
			t.Errorf("round trip = %q, want %q", got, plain)
		}
	})

	t.Run("表示可能な ASCII 全体", func(t *testing.T) {
		var b []byte
		for ch := byte(0x20); ch <= 0x7e; ch++ {
			b = append(b, ch)
		}
		plain := string(b)
		enc := c.Encode(plain)
		if len(enc) != 2*len(plain) {
			t.Fatalf("len(Encode()) = %d, want %d", len(enc), 2*len(plain))
		}
		got, err := c.Decode(enc)
		if err != nil {
			t.Fatalf("Decode error = %v", err)
		}
		if got != plain {
			t.Errorf("round trip = %q, want %q", got, plain)
		}
	})

	t.Run("不正な入力", func(t *testing.T) {
		for _, in := range []string{"abc", "zz", "2f2"} {
			if _, err := c.Decode(in); err == nil {
				t.Errorf("Decode(%q) should fail", in)
			}
		}
	})
}
