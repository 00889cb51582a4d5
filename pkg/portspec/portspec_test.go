// SPDX-License-Identifier: GPL-3.0-or-later

package portspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_ports "github.com/robgonnella/go-masscan/mock/ports"
	"github.com/robgonnella/go-masscan/pkg/ports"
	"github.com/robgonnella/go-masscan/pkg/portspec"
)

func TestResolve(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("passes explicit ports through unchanged", func(st *testing.T) {
		resolver := portspec.NewResolver(nil)

		spec, err := resolver.Resolve("80,443", 0)

		assert.NoError(st, err)
		assert.Equal(st, "80,443", spec.String())
	})

	t.Run("expands top ports from catalog", func(st *testing.T) {
		catalog := mock_ports.NewMockCatalog(ctrl)

		catalog.EXPECT().
			FirstN(ports.TCP, 3).
			Return([]uint16{80, 443, 22})

		catalog.EXPECT().
			FirstN(ports.UDP, 3).
			Return([]uint16{53, 161, 123})

		resolver := portspec.NewResolver(catalog)

		spec, err := resolver.Resolve("", 3)

		assert.NoError(st, err)
		assert.Equal(st, "80,443,22,U:53,161,123", spec.String())
	})

	t.Run("keeps empty udp segment when catalog is exhausted", func(st *testing.T) {
		catalog := mock_ports.NewMockCatalog(ctrl)

		catalog.EXPECT().
			FirstN(ports.TCP, 2).
			Return([]uint16{80, 23})

		catalog.EXPECT().
			FirstN(ports.UDP, 2).
			Return([]uint16{})

		resolver := portspec.NewResolver(catalog)

		spec, err := resolver.Resolve("", 2)

		assert.NoError(st, err)
		assert.Equal(st, "80,23,U:", spec.String())
	})

	t.Run("expands using built-in catalog by default", func(st *testing.T) {
		resolver := portspec.NewResolver(nil)

		spec, err := resolver.Resolve("", 2)

		assert.NoError(st, err)
		assert.Equal(st, "80,23,U:631,161", spec.String())
	})

	t.Run("errors when both ports and top ports are set", func(st *testing.T) {
		resolver := portspec.NewResolver(nil)

		_, err := resolver.Resolve("80", 5)

		assert.ErrorIs(st, err, portspec.ErrConflictingPortSpec)
	})

	t.Run("errors when neither ports nor top ports are set", func(st *testing.T) {
		resolver := portspec.NewResolver(nil)

		_, err := resolver.Resolve("", 0)

		assert.ErrorIs(st, err, portspec.ErrMissingPortSpec)
	})

	t.Run("errors on negative top ports before examining ports", func(st *testing.T) {
		resolver := portspec.NewResolver(nil)

		_, err := resolver.Resolve("80,443", -1)

		assert.ErrorIs(st, err, portspec.ErrInvalidPortCount)

		_, err = resolver.Resolve("", -10)

		assert.ErrorIs(st, err, portspec.ErrInvalidPortCount)
	})
}
