// SPDX-License-Identifier: GPL-3.0-or-later

package ports

import (
	"github.com/thediveo/netdb"
)

// top ports ranked most-popular-first, same ordering nmap's
// services file uses
var topTCP = []uint16{
	80, 23, 443, 21, 22, 25, 3389, 110, 445, 139,
	143, 53, 135, 3306, 8080, 1723, 111, 995, 993, 5900,
	1025, 587, 8888, 199, 1720, 465, 548, 113, 81, 6001,
	10000, 514, 5060, 179, 1026, 2000, 8443, 8000, 32768, 554,
	26, 1433, 49152, 2001, 515, 8008, 49154, 1027, 5666, 646,
	5000, 5631, 631, 49153, 8081, 2049, 88, 79, 5800, 106,
	2121, 1110, 49155, 6000, 513, 990, 5357, 427, 49156, 543,
	544, 5101, 144, 7, 389, 8009, 3128, 444, 9999, 5009,
	7070, 5190, 3000, 5432, 1900, 3986, 13, 1029, 9, 5051,
	6646, 49157, 1028, 873, 1755, 2717, 4899, 9100, 119, 37,
}

var topUDP = []uint16{
	631, 161, 137, 123, 138, 1434, 445, 135, 67, 53,
	139, 500, 68, 520, 1900, 4500, 514, 49152, 162, 69,
	5353, 111, 49154, 1701, 998, 996, 997, 999, 3283, 49153,
	1812, 136, 2222, 2049, 32768, 5060, 1025, 1433, 3456, 80,
	20031, 1026, 7, 1646, 1645, 593, 518, 2048, 626, 1027,
	177, 1719, 427, 497, 4444, 1023, 65024, 19, 9, 49193,
	1029, 49, 88, 1028, 17185, 1718, 49186, 2000, 31337, 49201,
	49192, 515, 2223, 443, 49181, 1813, 120, 158, 49200, 3703,
	32815, 17, 5000, 32771, 33281, 1030, 1022, 623, 32769, 5632,
	10000, 49194, 254, 49191, 49182, 49156, 9200, 30718, 49211, 49195,
}

// StaticCatalog provides the process-wide port popularity ranking
type StaticCatalog struct {
	tcp []uint16
	udp []uint16
}

// NewStaticCatalog returns a catalog backed by the built-in rankings
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		tcp: topTCP,
		udp: topUDP,
	}
}

// FirstN returns the n most popular ports for the given protocol in
// ranked order. When n exceeds the catalog length the full list is
// returned rather than erroring.
func (c *StaticCatalog) FirstN(proto Protocol, n int) []uint16 {
	list := c.list(proto)

	if n < 0 {
		n = 0
	}

	if n > len(list) {
		n = len(list)
	}

	result := make([]uint16, n)
	copy(result, list[:n])

	return result
}

// Len returns the catalog length for the given protocol
func (c *StaticCatalog) Len(proto Protocol) int {
	return len(c.list(proto))
}

func (c *StaticCatalog) list(proto Protocol) []uint16 {
	if proto == UDP {
		return c.udp
	}

	return c.tcp
}

// ServiceName returns the well-known service name for a port, or an
// empty string when the port has no registered service
func ServiceName(port uint16, proto Protocol) string {
	service := netdb.ServiceByPort(int(port), string(proto))

	if service == nil {
		return ""
	}

	return service.Name
}
