// SPDX-License-Identifier: GPL-3.0-or-later

package portspec

import (
	"errors"
	"strconv"
	"strings"

	"github.com/robgonnella/go-masscan/pkg/ports"
)

var (
	// ErrConflictingPortSpec returned when both an explicit port list and
	// a top-ports count are provided
	ErrConflictingPortSpec = errors.New("only one of ports or top-ports is permitted, not both")
	// ErrMissingPortSpec returned when neither an explicit port list nor
	// a top-ports count is provided
	ErrMissingPortSpec = errors.New("must specify either top-ports or ports")
	// ErrInvalidPortCount returned when the top-ports count is negative
	ErrInvalidPortCount = errors.New("top-ports must be greater than or equal to 0")
)

// Spec is the canonical port expression handed to masscan's --ports flag
type Spec string

// String implements fmt.Stringer
func (s Spec) String() string {
	return string(s)
}

// Resolver normalizes user supplied port parameters into a single Spec
type Resolver struct {
	catalog ports.Catalog
}

// NewResolver returns a Resolver backed by the provided catalog. A nil
// catalog falls back to the built-in static rankings.
func NewResolver(catalog ports.Catalog) *Resolver {
	if catalog == nil {
		catalog = ports.NewStaticCatalog()
	}

	return &Resolver{catalog: catalog}
}

// Resolve validates the explicit ports / top-ports pair and returns the
// resolved expression. Exactly one of the two must be set. Explicit ports
// pass through unchanged. A top-ports count expands to
// "<tcp-list>,U:<udp-list>" using catalog popularity order; the UDP
// segment is kept even when empty since masscan tolerates it.
func (r *Resolver) Resolve(explicitPorts string, topPorts int) (Spec, error) {
	if topPorts < 0 {
		return "", ErrInvalidPortCount
	}

	if explicitPorts != "" && topPorts > 0 {
		return "", ErrConflictingPortSpec
	}

	if explicitPorts == "" && topPorts == 0 {
		return "", ErrMissingPortSpec
	}

	if explicitPorts != "" {
		return Spec(explicitPorts), nil
	}

	tcpList := joinPorts(r.catalog.FirstN(ports.TCP, topPorts))
	udpList := joinPorts(r.catalog.FirstN(ports.UDP, topPorts))

	return Spec(tcpList + ",U:" + udpList), nil
}

func joinPorts(list []uint16) string {
	strs := make([]string, len(list))

	for i, p := range list {
		strs[i] = strconv.Itoa(int(p))
	}

	return strings.Join(strs, ",")
}
