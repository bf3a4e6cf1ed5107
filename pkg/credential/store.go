package credential

import (
	"encoding/json"
	"log/slog"

	"github.com/shouni/go-landing-architect/pkg/domain"
)

// StorageKey は設定を保存するスロットのキーです。
const StorageKey = "landing_arch_config"

// Store は画像プロバイダ設定を難読化して保存します。
// 読み書きの失敗は呼び出し元に伝えず、ログに残すだけです。
type Store struct {
	kv     KeyValueStore
	cipher Cipher
}

// NewStore は kv を保存先とする Store を返します。
func NewStore(kv KeyValueStore) *Store {
	return &Store{
		kv:     kv,
		cipher: NewCipher(DefaultSalt),
	}
}

// Save は設定を保存します。
func (s *Store) Save(cfg domain.ImageProviderConfig) {
	data, err := json.Marshal(cfg)
	if err != nil {
		slog.Error("Failed to save config", "error", err)
		return
	}
	if err := s.kv.Set(StorageKey, s.cipher.Encode(string(data))); err != nil {
		slog.Error("Failed to save config", "error", err)
	}
}

// Load は保存済みの設定を返します。未保存や破損時はデフォルト設定を返します。
func (s *Store) Load() domain.ImageProviderConfig {
	encoded, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return domain.DefaultImageProviderConfig()
	}
	if !ok || encoded == "" {
		return domain.DefaultImageProviderConfig()
	}

	plain, err := s.cipher.Decode(encoded)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return domain.DefaultImageProviderConfig()
	}

	var cfg domain.ImageProviderConfig
	if err := json.Unmarshal([]byte(plain), &cfg); err != nil {
		slog.Error("Failed to load config", "error", err)
		return domain.DefaultImageProviderConfig()
	}
	if !cfg.PreferredProvider.Valid() {
		slog.Warn("Stored config has unknown provider, using default", "provider", cfg.PreferredProvider)
		return domain.DefaultImageProviderConfig()
	}
	return cfg
}
