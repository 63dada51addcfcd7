package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/flowkit-dev/respond"
)

var (
	apiKey = os.Getenv("OPENAI_API_KEY")
	model  = os.Getenv("RESPOND_MODEL")

	client *respond.Client
)

func init() {
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY environment variable is not set")
		os.Exit(1)
	}

	if model == "" {
		model = respond.ModelGPT5
	}

	client = respond.NewClient(apiKey)

	if org := os.Getenv("OPENAI_ORG_ID"); org != "" {
		client.Organization = org
	}

	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		respond.WithBaseURL(baseURL)(client)
	}
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
