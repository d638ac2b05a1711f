package main

import (
	"encoding/json"
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/YspCoder/duet/adapter"
	"github.com/YspCoder/duet/dto"
	"github.com/YspCoder/duet/llm"
)

func newAskCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Send a prompt to both providers and print the answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}
			comparer, err := llm.NewComparerFromConfig(cfg, logger, adapter.GetDefaultRegistry())
			if err != nil {
				return err
			}

			resp := comparer.Compare(cmd.Context(), args[0])
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(resp))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw unified response")
	return cmd
}

func renderTable(resp dto.UnifiedResponse) string {
	table := uitable.New()
	table.MaxColWidth = 100
	table.Wrap = true
	table.AddRow("PROVIDER", "ANSWER")
	table.AddRow("OpenAI", describe(resp.OpenAI, resp.Debug.OpenAIError, "OpenAI"))
	table.AddRow("Claude", describe(resp.Claude, resp.Debug.ClaudeError, "Claude"))
	return table.String()
}

func describe(text, errMsg *string, provider string) string {
	switch {
	case text != nil && *text != "":
		return *text
	case errMsg != nil:
		return "error: " + *errMsg
	default:
		return "No response from " + provider
	}
}
