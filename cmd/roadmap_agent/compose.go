package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sudhanva/roadmap-engine/internal/composition"
	"github.com/sudhanva/roadmap-engine/internal/config"
	"github.com/sudhanva/roadmap-engine/internal/observability"
	"github.com/sudhanva/roadmap-engine/internal/types"
)

var (
	composeQuizPath     string
	composeProfilePath  string
	composeConfigPath   string
	composeTemplatesDir string
	composeSchemaPath   string
	composeOutputPath   string
	composeVerbose      bool
	composePretty       bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a personalized roadmap from quiz responses",
	Long:  "Classifies quiz responses into a modular persona, layers the matching persona templates, applies user-specific adaptations and skill-gap analysis, and writes the composed roadmap configuration as JSON.",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeQuizPath, "quiz", "q", "", "Path to quiz responses JSON file (required)")
	composeCmd.Flags().StringVar(&composeProfilePath, "profile", "", "Path to profile data JSON file")
	composeCmd.Flags().StringVar(&composeConfigPath, "config", "", "Path to JSON config file")
	composeCmd.Flags().StringVar(&composeTemplatesDir, "templates-dir", "", "Directory containing persona templates")
	composeCmd.Flags().StringVar(&composeSchemaPath, "schema", "", "Path to the template JSON Schema")
	composeCmd.Flags().StringVarP(&composeOutputPath, "output", "o", "", "Output file path (default stdout)")
	composeCmd.Flags().BoolVarP(&composeVerbose, "verbose", "v", false, "Print persona and skills gap summaries to stderr")
	composeCmd.Flags().BoolVar(&composePretty, "pretty", false, "Indent the JSON output")

	if err := composeCmd.MarkFlagRequired("quiz"); err != nil {
		panic(fmt.Sprintf("failed to mark quiz flag as required: %v", err))
	}

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		TemplatesDir: composeTemplatesDir,
		SchemaPath:   composeSchemaPath,
	}
	if composeConfigPath != "" {
		fileCfg, err := config.LoadConfig(composeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if cfg.TemplatesDir == "" && cfg.TemplatesURL == "" {
		cfg.TemplatesDir = "configs/personas"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	quiz, err := readJSONFile[types.QuizResponse](composeQuizPath)
	if err != nil {
		return fmt.Errorf("failed to load quiz responses: %w", err)
	}

	var profile *types.ProfileData
	if composeProfilePath != "" {
		profile, err = readJSONFile[types.ProfileData](composeProfilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile data: %w", err)
		}
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	composerCfg := composition.Config{
		Store:  store,
		Policy: cfg.Overrides,
	}
	if composeVerbose {
		composerCfg.Observer = func(ev composition.Event) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", ev.Stage, ev.Message)
		}
	}

	composer, err := composition.NewComposer(composerCfg)
	if err != nil {
		return err
	}

	result, err := composer.Compose(context.Background(), quiz, profile)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	if composeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintPersona(result.Metadata.ModularPersona)
		printer.PrintSkillsGap(result)
		printer.PrintLearningPath(result)
	}

	var out []byte
	if composePretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if composeOutputPath != "" {
		if err := os.WriteFile(composeOutputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Composed roadmap for %s %s written to %s\n",
			result.Metadata.ModularPersona.Level, result.Metadata.ModularPersona.Role, composeOutputPath)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// readJSONFile reads and decodes a JSON file into the given type.
func readJSONFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return &v, nil
}
