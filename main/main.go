package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MetalBlockchain/calldata/chain/constants"
	"github.com/MetalBlockchain/metalgo/utils/logging"
	"github.com/spf13/pflag"
)

func main() {
	fs := buildFlagSet()
	v, err := getViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	if v.GetBool(versionKey) {
		fmt.Println(constants.Version)
		os.Exit(0)
	}

	cfg, err := getConfig(v)
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	level, err := logging.ToLevel(cfg.LogLevel)
	if err != nil {
		fmt.Printf("couldn't parse log level: %s\n", err)
		os.Exit(1)
	}
	log := logging.NewLogger(
		constants.AppName,
		logging.NewWrappedCore(level, os.Stderr, logging.Plain.ConsoleEncoder()),
	)
	defer log.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg, fs.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", constants.AppName, err)
		stop()
		os.Exit(1)
	}
}
