package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/internal/usecase"
	"github.com/Gunvolt24/carb_validation/pkg/ctxmeta"
	"github.com/Gunvolt24/carb_validation/pkg/logger"
	"github.com/Gunvolt24/carb_validation/pkg/validate"
	"github.com/spf13/cobra"
)

// errFlagged: во входе есть корзины с ошибками CARB (только при --fail-on-flagged).
var errFlagged = errors.New("carts flagged")

type options struct {
	inputPath     string
	format        string
	policy        string
	failOnFlagged bool
	verbose       bool
}

// CLI-приложение для офлайн-проверки корзин (вход серверной функции в JSON/JSONL).
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, errFlagged) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "validate-carts",
		Short:         "Run the CARB shipping compliance check over recorded function inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.inputPath, "in", "", "path to input (.json or .jsonl); stdin if empty")
	f.StringVar(&opts.format, "format", string(validate.FormatAuto), "input format: auto|json|jsonl")
	f.StringVar(&opts.policy, "policy", string(validate.PolicyAggregate), "error message policy: aggregate|generic")
	f.BoolVar(&opts.failOnFlagged, "fail-on-flagged", false, "exit with code 2 if any cart is flagged")
	f.BoolVar(&opts.verbose, "verbose", false, "log every evaluation to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	ctx := ctxmeta.WithBoundary(cmd.Context(), ctxmeta.BoundaryCLI)

	policy, err := validate.ParseMessagePolicy(opts.policy)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "validation: %v\n", err)
		return err
	}

	format := validate.InputFormat(opts.format)
	switch format {
	case validate.FormatAuto, validate.FormatJSON, validate.FormatJSONL:
	default:
		err := fmt.Errorf("unsupported format: %s", opts.format)
		fmt.Fprintf(cmd.ErrOrStderr(), "validation: %v\n", err)
		return err
	}

	var log ports.Logger = nopLogger{}
	if opts.verbose {
		zl, cleanup, lErr := logger.NewZapLogger(false)
		if lErr != nil {
			return lErr
		}
		defer func() { _ = cleanup() }()
		log = zl
	}

	runner := usecase.NewFunctionService(validate.NewCartValidator(policy, nil), log)

	var res validate.JSONLResult
	if opts.inputPath == "" {
		res, err = validate.ValidateReader(ctx, runner, cmd.InOrStdin(), format, cmd.OutOrStdout())
	} else {
		res, err = validate.ValidateFile(ctx, runner, opts.inputPath, format, cmd.OutOrStdout())
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "validation: %v (%s)\n", err, res.Summary())
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "validation ok (%s)\n", res.Summary())

	if opts.failOnFlagged && res.FlaggedCount > 0 {
		return errFlagged
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}
