package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	apimodel "github.com/goliatone/go-apimodel"
	"github.com/goliatone/go-apimodel/internal/config"
	"github.com/goliatone/go-apimodel/internal/prompt"
	"github.com/goliatone/go-apimodel/pkg/convert"
	"github.com/goliatone/go-apimodel/pkg/hydrator"
	"github.com/goliatone/go-apimodel/pkg/model"
	"github.com/goliatone/go-apimodel/pkg/observability/logging"
	pkgpayload "github.com/goliatone/go-apimodel/pkg/payload"
)

// newDriver is swapped in tests. Prompts render on stderr so stdout carries
// only the hydrated model.
var newDriver = func() prompt.Driver {
	return prompt.NewSurveyDriver(survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("apimodel-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)

	envFile := flags.String("env-file", ".env", "optional .env file with APIMODEL_* defaults")
	modelName := flags.String("model", "", "model to hydrate (default from APIMODEL_MODEL)")
	source := flags.String("source", "", "payload path, or - for stdin")
	format := flags.String("format", "", "output format: json or yaml")
	strict := flags.Bool("strict", false, "reject lossy coercions")
	validate := flags.Bool("validate", false, "validate the payload against the model schema first")
	interactive := flags.Bool("interactive", false, "prompt for field values instead of reading a payload")
	list := flags.Bool("list", false, "list registered models and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	applyFlags(flags, cfg, *modelName, *format, *strict, *validate)

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	registry := model.NewRegistry()

	if *list {
		for _, name := range registry.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if cfg.Format != "json" && cfg.Format != "yaml" {
		logger.Error("unsupported output format", slog.String("format", cfg.Format))
		return 2
	}

	desc, ok := registry.Lookup(cfg.Model)
	if !ok {
		logger.Error("unknown model", slog.String("model", cfg.Model), slog.String("known", strings.Join(registry.Names(), ",")))
		return 1
	}

	conv := convert.New(
		convert.WithStrict(cfg.Strict),
		convert.WithLogger(logger),
	)
	h := apimodel.NewHydrator(
		hydrator.WithLoader(apimodel.NewLoader(
			pkgpayload.WithStdin(stdin),
			pkgpayload.WithMaxBytes(cfg.MaxBytes),
		)),
		hydrator.WithRegistry(registry),
		hydrator.WithConverter(conv),
		hydrator.WithLogger(logger),
		hydrator.WithValidation(cfg.Validate),
	)

	req := hydrator.Request{Model: desc.Name}
	switch {
	case *interactive:
		object, err := prompt.Collect(ctx, newDriver(), conv, desc.Name, desc.Fields)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return 130
			}
			logger.Error("collect fields", slog.Any("error", err))
			return 1
		}
		req.Object = object
	default:
		src := pkgpayload.ParseSource(*source)
		if src == nil {
			logger.Error("a -source or -interactive is required")
			return 2
		}
		req.Source = src
	}

	out, err := h.Hydrate(ctx, req)
	if err != nil {
		logger.Error("hydrate", slog.String("model", desc.Name), slog.Any("error", err))
		return 1
	}

	if err := writeOutput(stdout, cfg.Format, out); err != nil {
		logger.Error("write output", slog.Any("error", err))
		return 1
	}
	return 0
}

// applyFlags lets explicitly set flags override environment defaults.
func applyFlags(flags *flag.FlagSet, cfg *config.Config, modelName, format string, strict, validate bool) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = modelName
		case "format":
			cfg.Format = strings.ToLower(format)
		case "strict":
			cfg.Strict = strict
		case "validate":
			cfg.Validate = validate
		}
	})
}

func writeOutput(w io.Writer, format string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(payload))
		return err
	}

	// Round-trip through JSON so wire keys from struct tags carry over.
	var generic any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return err
	}
	return encoder.Close()
}
