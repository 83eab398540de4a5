// Package main provides the entry point for the Roadmap Engine HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap_agent",
	Short: "Roadmap Engine HTTP API Server",
	Long:  "Roadmap Engine composes personalized career roadmaps from quiz responses by layering modular persona templates and applying user-specific adaptations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
