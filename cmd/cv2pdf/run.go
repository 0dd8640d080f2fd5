package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// runMain parses args (program name first), runs the generator and returns
// the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "go-cv2pdf %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run merges configuration and generates the CV.
// Precedence: flags > environment > config file > defaults.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.quiet, flags.verbose)
	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return withHint(err, "")
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, err := cv2pdf.NewGenerator(generatorOptions(cfg, flags, env, logger)...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := gen.Close(); closeErr != nil {
			logger.Warn("closing browser", slog.Any("error", closeErr))
		}
	}()

	res, err := gen.Generate(ctx, cfg.Input.File, cfg.Output.Name)
	if err != nil {
		return withHint(err, cfg.Input.File)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "HTML: %s\n", res.HTMLPath)
		if res.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "PDF:  %s (%d bytes, %d pages)\n", res.PDFPath, res.PDFSize, res.Pages)
		}
	}
	return nil
}

// loadConfig loads the config named by the flag, else by CV2PDF_CONFIG.
// Without either, every setting starts from its default.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.File = flags.input
	}
	if flags.outputName != "" {
		cfg.Output.Name = flags.outputName
	}
	if flags.pageSize != "" {
		cfg.Page.Size = flags.pageSize
	}
}

// applyDefaults fills settings left empty by every other source.
func applyDefaults(cfg *config.Config) {
	if cfg.Input.File == "" {
		cfg.Input.File = defaultInput
	}
	if cfg.Output.Name == "" {
		cfg.Output.Name = defaultOutputName
	}
}

// generatorOptions translates the merged config into generator options.
func generatorOptions(cfg *config.Config, flags *cliFlags, env *Environment, logger *slog.Logger) []cv2pdf.Option {
	page := cv2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	opts := []cv2pdf.Option{
		cv2pdf.WithPage(page),
		cv2pdf.WithAssetPath(cfg.Assets.BasePath),
		cv2pdf.WithIconsDir(cfg.Assets.IconsDir),
		cv2pdf.WithBrowser(cv2pdf.BrowserConfig{
			Bin:          cfg.Browser.Bin,
			NoSandbox:    cfg.Browser.NoSandbox,
			DownloadHost: cfg.Browser.DownloadHost,
			Revision:     cfg.Browser.Revision,
		}),
		cv2pdf.WithHTMLOnly(flags.htmlOnly),
		cv2pdf.WithLogger(logger),
	}

	if cfg.Footer.Enabled {
		opts = append(opts, cv2pdf.WithFooter(&cv2pdf.Footer{
			Position:       cfg.Footer.Position,
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			Date:           cfg.Footer.Date,
			Text:           cfg.Footer.Text,
		}))
	}
	if env.Now != nil {
		opts = append(opts, cv2pdf.WithClock(env.Now))
	}
	if env.Renderer != nil {
		opts = append(opts, cv2pdf.WithRenderer(env.Renderer))
	}
	return opts
}

// withHint appends an actionable hint to err when one applies.
func withHint(err error, input string) error {
	var hint string
	var notFound *config.NotFoundError
	switch {
	case errors.Is(err, cv2pdf.ErrRendererUnavailable):
		hint = hints.ForRendererUnavailable()
	case errors.Is(err, cv2pdf.ErrNotFound):
		hint = hints.ForInputNotFound(input)
	case errors.Is(err, cv2pdf.ErrParse):
		hint = hints.ForParse()
	case errors.As(err, &notFound):
		hint = hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, cv2pdf.ErrWrite):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
