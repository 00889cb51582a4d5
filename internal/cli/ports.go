// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-masscan/pkg/ports"
)

func newPorts() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "ports",
		Short: "Prints the most popular ports",
		Long: `Prints the top N ports the catalog ranks by real-world popularity,
the same ranking --top-ports selects from`,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := ports.NewStaticCatalog()

			tcpList := catalog.FirstN(ports.TCP, top)
			udpList := catalog.FirstN(ports.UDP, top)

			portsTable := table.NewWriter()
			portsTable.SetOutputMirror(os.Stdout)
			portsTable.AppendHeader(table.Row{
				"RANK", "TCP", "SERVICE", "UDP", "SERVICE",
			})

			for i := 0; i < len(tcpList) || i < len(udpList); i++ {
				row := table.Row{i + 1, "", "", "", ""}

				if i < len(tcpList) {
					row[1] = tcpList[i]
					row[2] = ports.ServiceName(tcpList[i], ports.TCP)
				}

				if i < len(udpList) {
					row[3] = udpList[i]
					row[4] = ports.ServiceName(udpList[i], ports.UDP)
				}

				portsTable.AppendRow(row)
			}

			portsTable.Render()
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "how many ports to print per protocol")

	return cmd
}
