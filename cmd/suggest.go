package cmd

import (
	"fmt"

	"github.com/shouni/go-landing-architect/internal/pipeline"

	"github.com/spf13/cobra"
)

var suggestTopic string

// suggestCmd は、トピックからターゲット顧客と目標を提案させるのだ。
var suggestCmd = &cobra.Command{
	Use:     "suggest",
	Short:   "トピックに合うターゲット顧客と目標を提案するのだ。",
	PreRunE: requireAPIKey,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pipeline.ExecuteSuggest(cmd.Context(), loadConfig(), suggestTopic)
		if err != nil {
			return fmt.Errorf("提案の生成に失敗したのだ: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "target: %s\n", s.Target)
		fmt.Fprintf(out, "goal:   %s\n", s.Goal)
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestTopic, "topic", "t", "", "ウェブサイトのトピックなのだ。")
	_ = suggestCmd.MarkFlagRequired("topic")
}
