// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"

	"github.com/robgonnella/go-masscan/pkg/masscan"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner interface for driving a configured scan task to completion
type Runner interface {
	Initialize(params masscan.Params)
	Run(ctx context.Context) error
}
