package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/units"
	"github.com/artpar/energyx/internal/core/validation"
	"github.com/artpar/energyx/internal/shell/observe"
	"gopkg.in/yaml.v3"
)

var errUnknownCommand = errors.New("unknown command")

// app carries the dependencies shared by every command.
type app struct {
	cfg       *Config
	logger    *slog.Logger
	registry  *units.Registry
	converter *conversion.Converter
	stdout    io.Writer
}

// newApp builds the registry and converter selected by cfg.
func newApp(cfg *Config, logger *slog.Logger, stdout io.Writer) (*app, error) {
	policy, err := units.ParsePolicy(cfg.Units.Policy)
	if err != nil {
		return nil, err
	}
	reg, err := units.NewRegistry(policy)
	if err != nil {
		return nil, err
	}
	logger.Debug("unit registry ready", "policy", policy, "units", reg.Len())

	return &app{
		cfg:       cfg,
		logger:    logger,
		registry:  reg,
		converter: conversion.New(reg, conversion.WithObserver(observe.NewSlogObserver(logger))),
		stdout:    stdout,
	}, nil
}

// dispatch routes the command to the appropriate handler.
func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "convert":
		return a.convertCmd(args)
	case "units":
		return a.unitsCmd(args)
	case "serve":
		return a.serveCmd(args)
	default:
		return usageError(cmd, fmt.Errorf("%w: %s", errUnknownCommand, cmd))
	}
}

// convertCmd handles "convert <value> <from> <to>".
func (a *app) convertCmd(args []string) error {
	if len(args) != 3 {
		return usageError("convert", errors.New("expected <value> <from> <to>"))
	}
	raw, from, to := args[0], args[1], args[2]

	if field, msg := validation.ValidateConvertFields(raw, from, to); field != "" {
		return usageError("convert", fmt.Errorf("%s: %s", field, msg))
	}
	value, err := validation.ParseValue(raw)
	if err != nil {
		return usageError("convert", err)
	}

	result, err := a.converter.Convert(value, from, to)
	if err != nil {
		return &CommandError{Op: "convert", Err: err, ExitCode: ExitConversionError}
	}
	if !validation.IsFiniteResult(result) {
		return &CommandError{
			Op:       "convert",
			Err:      fmt.Errorf("result of %s %s in %s is outside the float64 range", raw, from, to),
			ExitCode: ExitConversionError,
		}
	}

	fmt.Fprintln(a.stdout, strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

// unitsCmd handles "units [-format text|json|yaml]".
func (a *app) unitsCmd(args []string) error {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return usageError("units", err)
	}

	list := a.registry.List()
	switch *format {
	case "text":
		tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tJOULES")
		for _, u := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Label(), strconv.FormatFloat(u.Factor, 'g', -1, 64))
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	default:
		return usageError("units", fmt.Errorf("unknown format %q", *format))
	}
}

// serveCmd handles "serve". It blocks until a shutdown signal.
func (a *app) serveCmd(args []string) error {
	if len(args) != 0 {
		return usageError("serve", errors.New("serve takes no arguments"))
	}

	a.logger.Info("starting energyx",
		"version", Version,
		"policy", a.registry.Policy(),
	)
	server := NewServer(a.cfg, a.registry, a.converter, a.logger)
	return server.Start(context.Background())
}

func usageError(op string, err error) error {
	return &CommandError{Op: op, Err: err, ExitCode: ExitUsageError}
}
