// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robgonnella/go-masscan/internal/cli"
	"github.com/robgonnella/go-masscan/internal/config"
	"github.com/robgonnella/go-masscan/internal/core"
	"github.com/robgonnella/go-masscan/internal/logger"
	"github.com/robgonnella/go-masscan/pkg/network"
	"github.com/robgonnella/go-masscan/pkg/pipeline"
)

func main() {
	log := logger.New()

	conf, err := config.NewManager().Load(nil)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var netInfo network.Network

	if userNet, err := network.NewDefaultNetwork(); err == nil {
		netInfo = userNet
	} else {
		// interface may still come from config or the --interface flag
		log.Warn().Err(err).Msg("failed to detect default network")
	}

	runner := core.New(pipeline.NewCommandExecutor())

	cmd, err := cli.Root(runner, netInfo, conf)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cli")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("go-masscan failed")
		os.Exit(core.ExitCode(err))
	}
}
