// SPDX-License-Identifier: GPL-3.0-or-later

package network

import "net"

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . Network

// Network interface for querying the host's default route, used to pick
// the interface masscan transmits from when none is configured
type Network interface {
	Interface() *net.Interface
	Gateway() net.IP
	UserIP() net.IP
}
