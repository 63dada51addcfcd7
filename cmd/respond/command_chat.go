package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/flowkit-dev/respond"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(chatCommand)
}

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively, threading responses together",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startChat(cmd.Context(), client, model)
	},
}

func startChat(ctx context.Context, client *respond.Client, model string) error {
	// Set the terminal to raw mode.
	oldState, err := term.MakeRaw(0)
	if err != nil {
		return err
	}
	defer term.Restore(0, oldState)

	termWidth, termHeight, err := term.GetSize(0)
	if err != nil {
		return err
	}

	termReadWriter := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}

	t := term.NewTerminal(termReadWriter, "") // Will set the prompt later.

	t.SetSize(termWidth, termHeight)

	// Buffered output so screen clears and cursor moves don't fight the
	// prompt.
	bt := bufio.NewWriter(t)

	cls := func() {
		// Clear the screen.
		bt.WriteString("\033[2J")

		// Move to the top left.
		bt.WriteString("\033[H")

		bt.Flush()
	}

	cls()

	// Autocomplete for commands.
	t.AutoCompleteCallback = func(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key == '\t' {
			for _, cmd := range []string{"exit", "clear"} {
				if strings.HasPrefix(cmd, line) {
					return cmd, len(cmd), true
				}
			}
		}

		return line, pos, false
	}

	bt.WriteString(styleBold.Render("Chatting with " + model))
	bt.WriteString("\n\n")
	bt.WriteString(styleBold.Render("Commands") + " " + styleFaint.Render("(tab complete)") + "\n\n")
	bt.WriteString("- " + styleFaint.Render("clear") + " to clear screen.\n")
	bt.WriteString("- " + styleFaint.Render("exit") + " to quit.\n\n")
	bt.Flush()

	var prevRespID string

	for {
		// Move to left edge.
		bt.WriteString("\033[0G")

		// Print the prompt.
		bt.WriteString("‣ ")

		bt.Flush()

		input, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(input) {
		case "":
			continue
		case "exit":
			return nil
		case "clear":
			cls()
			continue
		}

		resp, err := client.CreateResponse(ctx, respond.Build(respond.Config{
			Model:              model,
			Prompt:             input,
			PreviousResponseID: prevRespID,
			WebSearch:          &respond.WebSearchOptions{Enabled: true},
		}))
		if err != nil {
			bt.WriteString(err.Error() + "\n")
			bt.Flush()
			continue
		}

		result := respond.Extract(resp, model)

		// Render at 3/4 of the terminal width.
		threeQuarterWidth := termWidth * 3 / 4

		s, err := renderMarkdown(strings.TrimRight(result.Text, "\n"), threeQuarterWidth)
		if err != nil {
			bt.WriteString(err.Error() + "\n")
			bt.Flush()
			continue
		}

		bt.WriteString(s)

		for _, c := range result.Citations {
			bt.WriteString(styleFaint.Render("↳ "+c.Title+" "+c.URL) + "\n")
		}

		bt.Flush()

		prevRespID = resp.ID
	}
}
