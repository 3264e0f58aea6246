package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/semantiva/chain/component"
	"github.com/semantiva/chain/config"
	"github.com/semantiva/chain/llm"
	"github.com/semantiva/chain/pipeline"
	"github.com/semantiva/chain/workflow"
)

func newExplainCmd() *cobra.Command {
	var pipelinePath string
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Generate a natural-language explanation of a pipeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			registry := component.NewRegistry()
			if err := component.LoadManifest(manifestPath, registry); err != nil {
				return err
			}

			steps, err := pipeline.Load(pipelinePath)
			if err != nil {
				return err
			}

			service, err := llm.NewService(cfg.LLM, llm.WithLogger(logger))
			if err != nil {
				return err
			}

			explainer := workflow.NewExplainer(registry, service,
				workflow.WithLogger(logger),
				workflow.WithGenerateOptions(llm.Options{
					Temperature: &cfg.LLM.Temperature,
					MaxTokens:   cfg.LLM.MaxTokens,
				}))

			fmt.Fprintln(cmd.OutOrStdout(), explainer.Explain(cmd.Context(), steps))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pipelinePath, "pipeline", "p", "pipeline.yaml", "pipeline configuration file")
	cmd.Flags().StringVarP(&manifestPath, "components", "m", "components.yaml", "component manifest file")
	return cmd
}

func newComponentsCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List components available in a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := component.NewRegistry()
			if err := component.LoadManifest(manifestPath, registry); err != nil {
				return err
			}

			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "components", "m", "components.yaml", "component manifest file")
	return cmd
}

// bootstrap loads configuration (defaults, optional file, .env, environment
// overrides) and sets up logging. Environment reads happen only here; every
// layer below receives the explicit config struct.
func bootstrap(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := config.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.Merge(&config.Config{LLM: config.LLMConfig{
		Provider: os.Getenv("LLM_PROVIDER"),
		APIKey:   os.Getenv("LLM_API_KEY"),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("Configuration loaded",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model)

	return cfg, logger, nil
}
