package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "respond",
	Short: "Ask models questions, with files and web search",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startChat(cmd.Context(), client, model)
	},
}
