package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"modelscore/pkg/cache"
	"modelscore/pkg/core"
	"modelscore/pkg/metric"
	"modelscore/pkg/model"
	"modelscore/pkg/platform"
	"modelscore/pkg/project"
	"modelscore/pkg/reporter"
	"modelscore/pkg/runlog"
)

func newScoreCommand() *cobra.Command {
	var (
		tasksPath      string
		logPath        string
		logLevel       int
		format         string
		outputPath     string
		timeoutSeconds int
		provider       string
		modelName      string
		mockResponse   string
		cacheDir       string
		noCache        bool
	)

	cmd := &cobra.Command{
		Use:   "score <url_file>",
		Short: "Score every project listed in a URL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasksResolved := resolveString(tasksPath, appConfig.Tasks)
			if tasksResolved == "" {
				tasksResolved = "./tasks.txt"
			}
			logResolved := resolveString(logPath, appConfig.LogFile)
			if logResolved == "" {
				return errors.New("log file is required (--log-file or LOG_FILE)")
			}
			verbosity := logLevel
			if verbosity < 0 {
				verbosity = appConfig.LogLevel
			}
			if verbosity < 0 || verbosity > 2 {
				return fmt.Errorf("log level must be 0, 1, or 2, got %d", verbosity)
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatNDJSON
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			timeout := time.Duration(resolveInt(timeoutSeconds, appConfig.TimeoutSeconds, 0)) * time.Second
			providerResolved := resolveString(provider, appConfig.Provider)
			if providerResolved == "" {
				providerResolved = "mock"
			}

			if appConfig.GitHubToken == "" {
				return errors.New("GITHUB_TOKEN is required")
			}
			github := platform.NewGitHubClient(appConfig.GitHubToken)
			if err := github.VerifyToken(cmd.Context()); err != nil {
				return fmt.Errorf("github token validation failed: %w", err)
			}
			hf := platform.NewHFClient(appConfig.HFToken)

			modelResolved := resolveString(modelName, appConfig.Model.Name)
			mockResolved := resolveString(mockResponse, appConfig.Model.MockResponse)
			judge, err := buildJudge(providerResolved, modelResolved, mockResolved)
			if err != nil {
				return err
			}
			if !noCache && providerResolved != "mock" {
				store, err := cache.New(resolveString(cacheDir, appConfig.CacheDir), 0)
				if err != nil {
					return err
				}
				judge = model.Cached{Client: judge, Cache: store}
			}

			groups, err := project.ParseFile(args[0])
			if err != nil {
				return err
			}

			registry := core.NewRegistry()
			if err := metric.Register(registry, metric.Deps{GitHub: github, HF: hf, Judge: judge}); err != nil {
				return err
			}

			collector, err := runlog.NewFile(logResolved)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					collector.Close()
					return err
				}
				defer file.Close()
				writer = file
			}

			progress := newProgressBar(progressWriter(cmd), len(groups))
			runErr := scoreProjects(cmd.Context(), scoreRun{
				tasksPath: tasksResolved,
				groups:    groups,
				registry:  registry,
				collector: collector,
				hf:        hf,
				timeout:   timeout,
				verbosity: verbosity,
				format:    formatResolved,
				writer:    writer,
				progress:  progress,
			})

			if err := collector.Close(); err != nil && runErr == nil {
				runErr = err
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&tasksPath, "tasks", "", "path to the task file")
	cmd.Flags().StringVar(&logPath, "log-file", "", "path to the run log file")
	cmd.Flags().IntVar(&logLevel, "log-level", -1, "run log verbosity (0 silent, 1 info, 2 debug)")
	cmd.Flags().StringVar(&format, "format", "", "output format (ndjson, json, table, markdown, csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path (default stdout)")
	cmd.Flags().IntVar(&timeoutSeconds, "task-timeout", 0, "per-task timeout in seconds")
	cmd.Flags().StringVar(&provider, "provider", "", "judge provider (mock, openai, anthropic, gemini)")
	cmd.Flags().StringVar(&modelName, "model", "", "judge model name")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock judge response")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "judge response cache directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the judge response cache")

	return cmd
}

type scoreRun struct {
	tasksPath string
	groups    []project.Group
	registry  *core.Registry
	collector *runlog.Collector
	hf        *platform.HFClient
	timeout   time.Duration
	verbosity int
	format    string
	writer    io.Writer
	progress  *progressBar
}

func scoreProjects(ctx context.Context, run scoreRun) error {
	for i, group := range run.groups {
		params, cleanup, err := buildParams(ctx, run, group)
		if err != nil {
			logger.Warn("skipping project",
				zap.String("model", group.Model.Link),
				zap.Error(err))
			run.progress.Update(i + 1)
			continue
		}

		// An unreadable task document is systemic and aborts the whole
		// invocation.
		tasksFile, err := os.Open(run.tasksPath)
		if err != nil {
			cleanup()
			return fmt.Errorf("opening task document: %w", err)
		}

		engine := &core.Engine{
			Registry:    run.registry,
			Params:      params,
			Log:         run.collector,
			Logger:      logger,
			TaskTimeout: run.timeout,
		}
		report, err := engine.Run(ctx, tasksFile)
		tasksFile.Close()
		cleanup()
		if err != nil {
			return err
		}

		name := group.Model.Namespace + "/" + group.Model.Repo
		rep, err := buildReporter(run.format, run.writer, name)
		if err != nil {
			return err
		}
		if err := rep.Report(report); err != nil {
			return err
		}
		run.progress.Update(i + 1)
	}
	return nil
}

// buildParams assembles the read-only parameter store for one project. The
// returned cleanup removes the downloaded README temp file.
func buildParams(ctx context.Context, run scoreRun, group project.Group) (core.Params, func(), error) {
	m := group.Model
	size, err := run.hf.ModelSize(ctx, m.Namespace, m.Repo, m.Rev)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching model size: %w", err)
	}
	readmePath, err := run.hf.DownloadREADME(ctx, m.Namespace, m.Repo, m.Rev)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching model README: %w", err)
	}
	cleanup := func() { os.Remove(readmePath) }

	params := core.Params{
		"repo_owner":       m.Namespace,
		"repo_name":        m.Repo,
		"verbosity":        run.verbosity,
		"log_queue":        run.collector,
		"model_size_bytes": size,
		"filename":         readmePath,
	}
	if group.Code != nil {
		params["repo_owner"] = group.Code.Owner
		params["repo_name"] = group.Code.Name
		params["github_str"] = group.Code.Link
	}
	if group.Dataset != nil {
		params["dataset_name"] = group.Dataset.Repo
		if group.Dataset.Namespace != "" {
			params["dataset_name"] = group.Dataset.Namespace + "/" + group.Dataset.Repo
		}
	}
	return params, cleanup, nil
}

func buildJudge(provider, modelName, mockResponse string) (model.Client, error) {
	switch provider {
	case "mock":
		return model.Mock{NameValue: modelName, ResponseText: mockResponse}, nil
	case "openai":
		client, err := model.NewOpenAIFromEnv(resolveString(modelName, appConfig.OpenAI.Model))
		if err != nil {
			return nil, err
		}
		applyProviderConfig(appConfig.OpenAI, &client.Timeout, &client.MaxRetries, &client.Backoff)
		return client, nil
	case "anthropic":
		client, err := model.NewAnthropicFromEnv(resolveString(modelName, appConfig.Anthropic.Model))
		if err != nil {
			return nil, err
		}
		cfg := appConfig.Anthropic
		applyProviderConfig(ProviderConfig{
			TimeoutSeconds: cfg.TimeoutSeconds,
			MaxRetries:     cfg.MaxRetries,
			BackoffMillis:  cfg.BackoffMillis,
		}, &client.Timeout, &client.MaxRetries, &client.Backoff)
		if cfg.MaxTokens > 0 {
			client.MaxTokens = cfg.MaxTokens
		}
		return client, nil
	case "gemini":
		client, err := model.NewGeminiFromEnv(resolveString(modelName, appConfig.Gemini.Model))
		if err != nil {
			return nil, err
		}
		applyProviderConfig(appConfig.Gemini, &client.Timeout, &client.MaxRetries, &client.Backoff)
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

func applyProviderConfig(cfg ProviderConfig, timeout *time.Duration, maxRetries *int, backoff *time.Duration) {
	if cfg.TimeoutSeconds > 0 {
		*timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		*maxRetries = cfg.MaxRetries
	}
	if cfg.BackoffMillis > 0 {
		*backoff = time.Duration(cfg.BackoffMillis) * time.Millisecond
	}
}

func buildReporter(format string, writer io.Writer, name string) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatNDJSON:
		return reporter.NDJSONReporter{Writer: writer, Name: name, Category: "MODEL"}, nil
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
