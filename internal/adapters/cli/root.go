package cli

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"arbfix/internal/application"
	"arbfix/internal/config"
	"arbfix/internal/infrastructure/arbjson"
	"arbfix/internal/infrastructure/filesystem"
	"arbfix/internal/infrastructure/i18n"
	"arbfix/internal/logger"
)

// Execute runs the root command against the real filesystem.
func Execute(ctx context.Context) error {
	return NewRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
}

// NewRootCmd builds the arbfix command. fsys backs both the manifest and the
// documents.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	var (
		opts  config.Options
		check bool
	)
	cmd := &cobra.Command{
		Use:   "arbfix [flags] [file ...]",
		Short: "Normalize ARB localization files",
		Long: `arbfix rewrites ARB files so that @@locale comes first and every message
is immediately followed by its @metadata object, which always carries a
description. Files come from the arguments or from the files list of the
TOML manifest (default ` + config.DefaultManifest + `).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return run(cmd, fsys, opts, check)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "config", "", "TOML manifest listing the files (env "+config.EnvConfig+")")
	cmd.Flags().BoolVar(&check, "check", false, "Report files that are not normalized without writing them")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error (env "+config.EnvLogLevel+")")
	cmd.Flags().StringVar(&opts.Lang, "lang", "", "Language of the messages printed by arbfix (env "+config.EnvLang+")")
	return cmd
}

func run(cmd *cobra.Command, fsys afero.Fs, opts config.Options, check bool) error {
	cfg, err := config.Load(fsys, opts)
	if err != nil {
		lang := firstNonEmpty(opts.Lang, os.Getenv(config.EnvLang), "en")
		r := newReporter(cmd, i18n.NewTranslator(lang, nil), lang)
		r.failure(err, nil, manifestName(opts))
		return err
	}

	log := logger.New(&logger.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
	r := newReporter(cmd, i18n.NewTranslator(cfg.Lang, log), cfg.Lang)
	svc := application.NewNormalizerService(filesystem.NewStore(fsys), arbjson.NewCodec(), log)

	if check {
		results, err := svc.Check(cmd.Context(), cfg.Files)
		r.drift(results)
		if err != nil {
			r.failure(err, results, cfg.Manifest)
			return err
		}
		r.checked(results)
		return nil
	}

	results, err := svc.Normalize(cmd.Context(), cfg.Files)
	if err != nil {
		r.failure(err, results, cfg.Manifest)
		return err
	}
	r.normalized(results)
	return nil
}

func manifestName(opts config.Options) string {
	return firstNonEmpty(opts.Manifest, os.Getenv(config.EnvConfig), config.DefaultManifest)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
