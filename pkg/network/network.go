// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"net"

	"github.com/jackpal/gateway"
)

// UserNetwork data structure for implementing Network interface
type UserNetwork struct {
	gateway net.IP
	userIP  net.IP
	iface   *net.Interface
}

// NewDefaultNetwork discovers the default gateway and returns the network
// associated with it
func NewDefaultNetwork() (*UserNetwork, error) {
	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", gw.String()+":80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	userIP := net.ParseIP(localAddr.IP.String())

	iface, err := findInterfaceByIP(userIP)

	if err != nil {
		return nil, err
	}

	return &UserNetwork{
		gateway: gw,
		userIP:  userIP,
		iface:   iface,
	}, nil
}

// Gateway returns the default network gateway for this host
func (n *UserNetwork) Gateway() net.IP {
	return n.gateway
}

// UserIP returns the IP address assigned to the default interface
func (n *UserNetwork) UserIP() net.IP {
	return n.userIP
}

// Interface returns the default route's interface
func (n *UserNetwork) Interface() *net.Interface {
	return n.iface
}

func findInterfaceByIP(ip net.IP) (*net.Interface, error) {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				found := iface
				return &found, nil
			}
		}
	}

	return nil, errors.New("failed to find interface for default route")
}
