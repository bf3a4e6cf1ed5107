package cmd

import (
	"fmt"
	"strings"

	"github.com/shouni/go-landing-architect/internal/builder"
	"github.com/shouni/go-landing-architect/pkg/domain"

	"github.com/spf13/cobra"
)

var settingsFlags struct {
	provider    string
	unsplashKey string
	pexelsKey   string
	pixabayKey  string
	key         string
}

// settingsCmd は、画像プロバイダ設定を管理するのだ。
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "画像プロバイダの設定を表示・変更するのだ。",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "保存されている設定を表示するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := builder.BuildCredentialStore(loadConfig()).Load()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "provider: %s\n", cfg.PreferredProvider)
		for _, p := range domain.ImageProviders {
			if !p.RequiresCredential() {
				continue
			}
			fmt.Fprintf(out, "%-9s %s\n", string(p)+":", maskKey(cfg.CredentialFor(p)))
		}
		if cfg.MissingCredential() {
			fmt.Fprintf(out, "warning: %s の API キーが未設定なので仮画像のままになるのだ\n", cfg.PreferredProvider)
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "設定を変更して保存するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := builder.BuildCredentialStore(loadConfig())
		cfg := store.Load()

		flags := cmd.Flags()
		if flags.Changed("provider") {
			p, err := domain.ParseImageProvider(settingsFlags.provider)
			if err != nil {
				return err
			}
			cfg.PreferredProvider = p
		}
		if flags.Changed("unsplash-key") {
			cfg = cfg.WithCredential(domain.ProviderUnsplash, settingsFlags.unsplashKey)
		}
		if flags.Changed("pexels-key") {
			cfg = cfg.WithCredential(domain.ProviderPexels, settingsFlags.pexelsKey)
		}
		if flags.Changed("pixabay-key") {
			cfg = cfg.WithCredential(domain.ProviderPixabay, settingsFlags.pixabayKey)
		}

		store.Save(cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "saved: provider=%s\n", cfg.PreferredProvider)
		return nil
	},
}

var settingsTestCmd = &cobra.Command{
	Use:   "test",
	Short: "画像プロバイダへの接続を確認するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg := loadConfig()
		cfg := builder.BuildCredentialStore(appCfg).Load()

		provider := cfg.PreferredProvider
		if cmd.Flags().Changed("provider") {
			p, err := domain.ParseImageProvider(settingsFlags.provider)
			if err != nil {
				return err
			}
			provider = p
		}
		key := cfg.CredentialFor(provider)
		if cmd.Flags().Changed("key") {
			key = settingsFlags.key
		}

		ok := builder.BuildResolver(appCfg).TestConnection(cmd.Context(), provider, key)
		if !ok {
			return fmt.Errorf("%s への接続に失敗したのだ", provider)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", provider)
		return nil
	},
}

func maskKey(key string) string {
	if key == "" {
		return "(未設定)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

func init() {
	providers := make([]string, 0, len(domain.ImageProviders))
	for _, p := range domain.ImageProviders {
		providers = append(providers, string(p))
	}
	providerUsage := fmt.Sprintf("画像プロバイダなのだ (%s)。", strings.Join(providers, ", "))

	settingsSetCmd.Flags().StringVar(&settingsFlags.provider, "provider", "", providerUsage)
	settingsSetCmd.Flags().StringVar(&settingsFlags.unsplashKey, "unsplash-key", "", "Unsplash の Access Key なのだ。")
	settingsSetCmd.Flags().StringVar(&settingsFlags.pexelsKey, "pexels-key", "", "Pexels の API Key なのだ。")
	settingsSetCmd.Flags().StringVar(&settingsFlags.pixabayKey, "pixabay-key", "", "Pixabay の API Key なのだ。")

	settingsTestCmd.Flags().StringVar(&settingsFlags.provider, "provider", "", providerUsage)
	settingsTestCmd.Flags().StringVar(&settingsFlags.key, "key", "", "保存済みのキーの代わりに試すキーなのだ。")

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsTestCmd)
}
