package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arbfix/internal/domain"
	"arbfix/internal/domain/entities"
	"arbfix/internal/ports/output"
)

// reporter prints localized summaries to stdout and diagnostics to stderr.
type reporter struct {
	cmd  *cobra.Command
	tr   output.Translator
	lang string
}

func newReporter(cmd *cobra.Command, tr output.Translator, lang string) *reporter {
	return &reporter{cmd: cmd, tr: tr, lang: lang}
}

func (r *reporter) normalized(results []entities.Result) {
	changed := 0
	for _, res := range results {
		if res.Changed {
			changed++
		}
	}
	r.out("summary_normalized", map[string]any{"Count": len(results), "Changed": changed})
}

func (r *reporter) checked(results []entities.Result) {
	r.out("summary_checked", map[string]any{"Count": len(results)})
}

func (r *reporter) drift(results []entities.Result) {
	for _, res := range results {
		if res.Changed {
			r.out("file_drift", map[string]any{"Path": res.Path})
		}
	}
}

// failure maps err to its domain code and prints the matching message.
func (r *reporter) failure(err error, results []entities.Result, manifest string) {
	fmt.Fprintln(r.cmd.ErrOrStderr(), describeError(r.tr, r.lang, err, results, manifest))
}

func (r *reporter) out(key string, data map[string]any) {
	fmt.Fprintln(r.cmd.OutOrStdout(), r.tr.T(r.lang, key, data))
}

func describeError(tr output.Translator, lang string, err error, results []entities.Result, manifest string) string {
	if err == nil {
		return ""
	}
	var accessErr *domain.FileAccessError
	var parseErr *domain.ParseError
	switch code := domain.Code(err); {
	case errors.As(err, &accessErr):
		return tr.T(lang, "error_file_access", map[string]any{"Path": accessErr.Path, "Reason": accessErr.Err})
	case errors.As(err, &parseErr):
		path := parseErr.Path
		if parseErr.Line > 0 {
			path = fmt.Sprintf("%s:%d:%d", parseErr.Path, parseErr.Line, parseErr.Column)
		}
		return tr.T(lang, "error_parse", map[string]any{"Path": path, "Reason": parseErr.Err})
	case code == domain.CodeNoTargets:
		return tr.T(lang, "error_no_targets", map[string]any{"Config": manifest})
	case code == domain.CodeDrift:
		changed := 0
		for _, res := range results {
			if res.Changed {
				changed++
			}
		}
		return tr.T(lang, "error_drift", map[string]any{"Count": changed})
	default:
		return tr.T(lang, "error_generic", map[string]any{"Reason": err})
	}
}
