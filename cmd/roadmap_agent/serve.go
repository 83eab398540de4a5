package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudhanva/roadmap-engine/internal/config"
	"github.com/sudhanva/roadmap-engine/internal/server"
	"github.com/sudhanva/roadmap-engine/internal/templates"
)

var (
	servePort         int
	serveConfigPath   string
	serveTemplatesDir string
	serveTemplatesURL string
	serveSchemaPath   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for composing roadmaps and serving persona templates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveTemplatesDir, "templates-dir", "", "Directory containing persona templates")
	serveCmd.Flags().StringVar(&serveTemplatesURL, "templates-url", "", "Base URL of a remote template endpoint")
	serveCmd.Flags().StringVar(&serveSchemaPath, "schema", "", "Path to the template JSON Schema")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:         servePort,
		TemplatesDir: serveTemplatesDir,
		TemplatesURL: serveTemplatesURL,
		SchemaPath:   serveSchemaPath,
	}

	// Precedence: flags > config file > environment > built-in defaults
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})
	if cfg.TemplatesDir == "" && cfg.TemplatesURL == "" {
		cfg.TemplatesDir = "configs/personas"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Store:  store,
		Policy: cfg.Overrides,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildStore constructs the template store from configuration. Remote and
// local stores are both wrapped in a cache since templates are immutable for
// the lifetime of the process.
func buildStore(cfg config.Config) (templates.Store, error) {
	var validator *templates.Validator
	if cfg.SchemaPath != "" {
		v, err := templates.NewValidator(cfg.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load template schema: %w", err)
		}
		validator = v
	}

	var inner templates.Store
	if cfg.TemplatesURL != "" {
		httpCfg := templates.DefaultHTTPStoreConfig(cfg.TemplatesURL)
		httpCfg.Validator = validator
		inner = templates.NewHTTPStore(httpCfg)
	} else {
		inner = templates.NewFSStore(cfg.TemplatesDir, validator)
	}

	return templates.NewCachedStore(inner), nil
}
