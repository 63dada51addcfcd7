package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flowkit-dev/respond"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	askCommand.Flags().String("model", "", "model to use (defaults to RESPOND_MODEL or gpt-5)")
	askCommand.Flags().StringSlice("file", nil, "file id or URL to attach (repeatable, accepts comma lists)")
	askCommand.Flags().Int("max-output-tokens", 0, "cap on generated tokens")
	askCommand.Flags().Float64("temperature", -1, "sampling temperature (ignored by reasoning models)")
	askCommand.Flags().String("effort", "", "reasoning effort: minimal, low, medium, high")
	askCommand.Flags().String("summary", "", "reasoning summary: auto, concise, detailed")
	askCommand.Flags().String("verbosity", "", "output verbosity: low, medium, high (gpt-5 family)")
	askCommand.Flags().Bool("web-search", false, "let the model search the web")
	askCommand.Flags().StringSlice("allowed-domain", nil, "restrict web search to these domains")
	askCommand.Flags().String("search-context", "", "web search context size: low, medium, high")
	askCommand.Flags().Bool("sources", false, "include consulted web sources in the result")
	askCommand.Flags().Bool("quick", false, "trade quality for latency")
	askCommand.Flags().Bool("json", false, "print the result as JSON")

	rootCmd.AddCommand(askCommand)
}

var askCommand = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		cfg := respond.Config{
			Model:  model,
			Prompt: strings.Join(args, " "),
		}

		if m, _ := flags.GetString("model"); m != "" {
			cfg.Model = m
		}

		cfg.MaxOutputTokens, _ = flags.GetInt("max-output-tokens")

		if temp, _ := flags.GetFloat64("temperature"); temp >= 0 {
			cfg.Temperature = &temp
		}

		effort, _ := flags.GetString("effort")
		cfg.ReasoningEffort = respond.Effort(effort)

		summary, _ := flags.GetString("summary")
		cfg.ReasoningSummary = respond.SummaryMode(summary)

		verbosity, _ := flags.GetString("verbosity")
		cfg.Verbosity = respond.Verbosity(verbosity)

		files, _ := flags.GetStringSlice("file")
		for _, f := range files {
			cfg.Files = append(cfg.Files, respond.ClassifyTokens(respond.Normalize(f))...)
		}

		if search, _ := flags.GetBool("web-search"); search {
			domains, _ := flags.GetStringSlice("allowed-domain")
			contextSize, _ := flags.GetString("search-context")
			sources, _ := flags.GetBool("sources")

			cfg.WebSearch = &respond.WebSearchOptions{
				Enabled:        true,
				AllowedDomains: domains,
				ContextSize:    respond.SearchContextSize(contextSize),
				IncludeSources: sources,
			}
		}

		if quick, _ := flags.GetBool("quick"); quick {
			cfg = respond.QuickMode(cfg)
		}

		resp, err := client.CreateResponse(cmd.Context(), respond.Build(cfg))
		if err != nil {
			return err
		}

		result := respond.Extract(resp, cfg.Model)

		if asJSON, _ := flags.GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		width := 100
		if w, _, err := term.GetSize(0); err == nil {
			width = w * 3 / 4
		}

		out, err := renderMarkdown(strings.TrimRight(result.Text, "\n"), width)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if result.ReasoningSummary != "" {
			fmt.Fprintln(cmd.OutOrStdout(), styleFaint.Render("summary: "+result.ReasoningSummary))
		}

		for _, c := range result.Citations {
			fmt.Fprintln(cmd.OutOrStdout(), styleFaint.Render("↳ "+c.Title+" "+c.URL))
		}

		for _, s := range result.Sources {
			fmt.Fprintln(cmd.OutOrStdout(), styleFaint.Render("source: "+s))
		}

		return nil
	},
}
