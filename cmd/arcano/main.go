package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arcano/oracle/internal/adapter/cli"
	"github.com/arcano/oracle/internal/adapter/decks"
	"github.com/arcano/oracle/internal/adapter/llm/groq"
	llmhttp "github.com/arcano/oracle/internal/adapter/llm/http"
	"github.com/arcano/oracle/internal/adapter/output/markdown"
	"github.com/arcano/oracle/internal/adapter/store/sqlite"
	"github.com/arcano/oracle/internal/config"
	"github.com/arcano/oracle/internal/sanitize"
	"github.com/arcano/oracle/internal/store"
	"github.com/arcano/oracle/internal/usecase/reading"
	"github.com/arcano/oracle/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Cancellable context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "arcano",
		EnvPrefix:   "ARCANO",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	interpreter := buildInterpreter(cfg)

	var readings store.Store
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create store directory: %v", err)
		} else {
			sqliteStore, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize store: %v", err)
			} else {
				readings = sqliteStore
				defer readings.Close()
			}
		}
	}

	// Timestamp function for deterministic output file naming.
	nowFunc := func() string {
		return time.Now().UTC().Format("20060102T150405Z")
	}

	root := cli.NewRootCommand(cli.Dependencies{
		Interpreter: interpreter,
		Decks:       decks.NewEmbeddedStore(),
		RNG:         rand.New(rand.NewSource(time.Now().UnixNano())),
		Store:       readings,
		Exporter:    markdown.NewWriter(nowFunc),
		OutputDir:   cfg.Output.Directory,
		Version:     version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// buildInterpreter wires the sanitizer, the completion client and the
// response validator. A missing API key yields an interpreter without a
// client; it reports a configuration error on use and the CLI degrades to
// the offline reading.
func buildInterpreter(cfg config.Config) *reading.Interpreter {
	sanitizer := sanitize.NewEngine(sanitizerOptions(cfg.Validation)...)
	validator := reading.NewResponseValidator(reading.ValidatorConfig{
		MinLength:          cfg.Validation.MinResponseLength,
		RelevanceMinLength: cfg.Validation.RelevanceMinLength,
	})

	var client reading.CompletionClient
	if cfg.Groq.APIKey != "" {
		opts := []groq.Option{
			groq.WithLogger(buildLogger(cfg.Observability.Logging)),
			groq.WithRetryConfig(retryConfig(cfg.HTTP)),
		}
		if timeout, err := time.ParseDuration(cfg.HTTP.Timeout); err == nil && timeout > 0 {
			opts = append(opts, groq.WithTimeout(timeout))
		}
		groqClient := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, opts...)
		if cfg.Groq.BaseURL != "" {
			groqClient.SetBaseURL(cfg.Groq.BaseURL)
		}
		client = groqClient
	}

	return reading.NewInterpreter(client, sanitizer, validator)
}

func sanitizerOptions(cfg config.ValidationConfig) []sanitize.Option {
	var opts []sanitize.Option
	if cfg.SpecialCharRatio > 0 {
		opts = append(opts, sanitize.WithSpecialCharRatio(cfg.SpecialCharRatio))
	}
	return opts
}

func buildLogger(cfg config.LoggingConfig) llmhttp.Logger {
	if !cfg.Enabled {
		return llmhttp.NopLogger{}
	}

	level := llmhttp.LogLevelInfo
	switch cfg.Level {
	case "debug":
		level = llmhttp.LogLevelDebug
	case "error":
		level = llmhttp.LogLevelError
	}

	format := llmhttp.LogFormatHuman
	if cfg.Format == "json" {
		format = llmhttp.LogFormatJSON
	}

	return llmhttp.NewDefaultLogger(level, format, cfg.RedactAPIKeys)
}

func retryConfig(cfg config.HTTPConfig) llmhttp.RetryConfig {
	retry := llmhttp.DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		retry.MaxRetries = cfg.MaxRetries
	}
	if backoff, err := time.ParseDuration(cfg.InitialBackoff); err == nil && backoff > 0 {
		retry.InitialBackoff = backoff
	}
	if backoff, err := time.ParseDuration(cfg.MaxBackoff); err == nil && backoff > 0 {
		retry.MaxBackoff = backoff
	}
	if cfg.BackoffMultiplier > 0 {
		retry.Multiplier = cfg.BackoffMultiplier
	}
	return retry
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "arcano"))
	}
	return paths
}
