// SPDX-License-Identifier: GPL-3.0-or-later

package ports

//go:generate mockgen -destination=../../mock/ports/ports.go -package=mock_ports . Catalog

// Protocol represents a transport protocol tracked by the catalog
type Protocol string

const (
	// TCP protocol identifier
	TCP Protocol = "tcp"
	// UDP protocol identifier
	UDP Protocol = "udp"
)

// Catalog interface for querying ports ranked by real-world popularity
type Catalog interface {
	FirstN(proto Protocol, n int) []uint16
	Len(proto Protocol) int
}
