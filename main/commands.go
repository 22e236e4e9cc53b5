package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MetalBlockchain/calldata/chain/calldata"
	"github.com/MetalBlockchain/calldata/chain/config"
	"github.com/MetalBlockchain/calldata/metrics"
	"github.com/MetalBlockchain/calldata/service"
	"github.com/MetalBlockchain/metalgo/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	parseCommand     = "parse"
	serializeCommand = "serialize"
	serveCommand     = "serve"

	metricsEndpoint = "/metrics"
	stdinArg        = "-"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errWrongNumArgs   = errors.New("wrong number of arguments")
)

func run(
	ctx context.Context,
	log logging.Logger,
	cfg *config.Config,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s, %s or %s", errWrongNumArgs, parseCommand, serializeCommand, serveCommand)
	}

	command, args := args[0], args[1:]
	switch command {
	case parseCommand:
		if len(args) != 1 {
			return fmt.Errorf("%w: usage %s <hex>", errWrongNumArgs, parseCommand)
		}
		return runParse(cfg, args[0], stdout)
	case serializeCommand:
		if len(args) != 1 {
			return fmt.Errorf("%w: usage %s <file|->", errWrongNumArgs, serializeCommand)
		}
		return runSerialize(args[0], stdin, stdout)
	case serveCommand:
		if len(args) != 0 {
			return fmt.Errorf("%w: usage %s", errWrongNumArgs, serveCommand)
		}
		return runServe(ctx, log, cfg)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func runParse(cfg *config.Config, callData string, stdout io.Writer) error {
	d, err := calldata.NewParser(cfg.MaxCallDataSize).ParseHex(callData)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func runSerialize(path string, stdin io.Reader, stdout io.Writer) error {
	var (
		b   []byte
		err error
	)
	if path == stdinArg {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var d calldata.ContractTxData
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("couldn't decode call record: %w", err)
	}
	s, err := calldata.SerializeHex(&d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, s)
	return err
}

func runServe(ctx context.Context, log logging.Logger, cfg *config.Config) error {
	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("couldn't create metrics: %w", err)
	}

	handlers, err := service.CreateHandlers(service.New(log, m, cfg.MaxCallDataSize))
	if err != nil {
		return fmt.Errorf("couldn't create handlers: %w", err)
	}
	handlers[metricsEndpoint] = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	log.Info("serving call data API",
		zap.String("address", cfg.Address()),
		zap.String("endpoint", service.Endpoint),
	)
	return service.Serve(ctx, log, cfg.Address(), cfg.ReadHeaderTimeout, handlers)
}
