package cmd

import (
	"fmt"

	"github.com/shouni/go-landing-architect/pkg/catalog"

	"github.com/spf13/cobra"
)

// topicsCmd は、組み込みのトピック一覧を表示するのだ。
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "トピックとレイアウト原型の一覧を表示するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		out := cmd.OutOrStdout()
		for _, topic := range c.Topics() {
			fmt.Fprintf(out, "%-14s %s\n", c.Lookup(topic).Type, topic)
		}
		fmt.Fprintf(out, "%-14s %s\n", c.Lookup(catalog.FallbackTopic).Type, "(上記以外のトピック)")
		return nil
	},
}
