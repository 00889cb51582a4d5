// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-masscan/internal/config"
	"github.com/robgonnella/go-masscan/internal/core"
	"github.com/robgonnella/go-masscan/internal/logger"
	"github.com/robgonnella/go-masscan/pkg/masscan"
	"github.com/robgonnella/go-masscan/pkg/network"
)

// Root returns the root cli command. Flag defaults for rate and interface
// come from config; when no interface is configured the default route's
// interface is used.
func Root(
	runner core.Runner,
	netInfo network.Network,
	conf *config.Config,
) (*cobra.Command, error) {
	var targetFile string
	var rate string
	var ifaceName string
	var explicitPorts string
	var topPorts int
	var debug bool

	defaultIface := conf.Masscan.Iface

	if defaultIface == "" && netInfo != nil && netInfo.Interface() != nil {
		defaultIface = netInfo.Interface().Name
	}

	cmd := &cobra.Command{
		Use:   "go-masscan",
		Short: "Run masscan as a pipeline task",
		Long: `Runs masscan against a previously resolved target list and writes
findings to a deterministic output artifact that downstream pipeline
stages depend on. Re-invoking a task whose output already exists is a
no-op that still reports success.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger.SetGlobalLevel(zerolog.DebugLevel)
			}

			runner.Initialize(masscan.Params{
				TargetFile: targetFile,
				Rate:       rate,
				Interface:  ifaceName,
				Ports:      explicitPorts,
				TopPorts:   topPorts,
			})

			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&targetFile, "target-file", "t", "", "logical name of the target list to scan")
	cmd.Flags().StringVar(&rate, "rate", conf.Masscan.Rate, "packet transmission rate (packets per second)")
	cmd.Flags().StringVarP(&ifaceName, "interface", "i", defaultIface, "raw network interface to transmit on")
	cmd.Flags().StringVarP(&explicitPorts, "ports", "p", "", "explicit port(s) to scan, e.g. 80,443 or 0-65535,U:53")
	cmd.Flags().IntVar(&topPorts, "top-ports", 0, "scan the top N most popular ports instead of an explicit list")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := cmd.MarkFlagRequired("target-file"); err != nil {
		return nil, err
	}

	cmd.AddCommand(newVersion())
	cmd.AddCommand(newPorts())

	return cmd, nil
}
