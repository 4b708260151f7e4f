package cli

import (
	"openai-chat/internal/config"
	"openai-chat/openai"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported model identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Model", "Default"})
			for _, model := range openai.Models() {
				mark := ""
				if model.String() == cfg.OpenAI.Model {
					mark = "*"
				}
				table.Append([]string{model.String(), mark})
			}
			table.Render()
			return nil
		},
	}
}
