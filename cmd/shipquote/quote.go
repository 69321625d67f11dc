package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"shipquote/internal/application"
	"shipquote/internal/config"
	"shipquote/internal/infrastructure/quoteapi"
	"shipquote/internal/server"
	"shipquote/pkg/contextx"
	"shipquote/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type quoteOptions struct {
	file      string
	output    string
	serverURL string
}

func newQuoteCmd() *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote [text]",
		Short: "Extract a shipment from text and print carrier quotes",
		Long: `Runs the quoting pipeline on an inquiry text.

The text is taken from the arguments, from --file, or from stdin when
neither is given. With --server the text is posted to a running service
instead of being processed locally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the inquiry from a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputJSON, "output format (json, yaml)")
	cmd.Flags().StringVar(&opts.serverURL, "server", "", "base URL of a running service")

	return cmd
}

func runQuote(cmd *cobra.Command, args []string, opts quoteOptions) error {
	if opts.output != outputJSON && opts.output != outputYAML {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	text, err := readInquiry(cmd.InOrStdin(), args, opts.file)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := application.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	ctx := contextx.WithLogger(cmd.Context(), log)
	ctx = contextx.WithTraceID(ctx, contextx.NewTraceID())

	var response rest.QuoteResponse

	if opts.serverURL != "" {
		response, err = quoteapi.NewClient(opts.serverURL, cfg.Log.FieldMaxLen).Quote(ctx, text)
	} else {
		response, err = quoteLocally(ctx, cfg, text)
	}

	if err != nil {
		return err
	}

	return writeResponse(cmd.OutOrStdout(), opts.output, response)
}

func quoteLocally(ctx context.Context, cfg config.Config, text string) (rest.QuoteResponse, error) {
	recognizer, err := application.NewRecognizer(ctx, cfg.Recognizer, true)
	if err != nil {
		return rest.QuoteResponse{}, err
	}

	result, err := application.NewShipmentService(cfg.Quote, recognizer).Quote(ctx, text)
	if err != nil {
		return rest.QuoteResponse{}, errors.New(server.Describe(err))
	}

	return server.NewRESTQuoteResponse(result), nil
}

func readInquiry(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", errors.New("pass the inquiry either as arguments or with --file")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("os.ReadFile: %w", err)
		}

		return string(b), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("io.ReadAll: %w", err)
		}

		return string(b), nil
	}
}

func writeResponse(w io.Writer, output string, response rest.QuoteResponse) error {
	if output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(response); err != nil {
			return fmt.Errorf("yaml.Encode: %w", err)
		}

		return enc.Close()
	}

	b, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
