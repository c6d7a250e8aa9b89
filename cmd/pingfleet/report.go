// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/siemens/pingfleet/types"
)

// renderReports renders the final per-target reports to the specified
// writer, either as styled text blocks or – for machine consumption – as a
// single JSON document.
func renderReports(w io.Writer, reports []*types.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, report := range reports {
		fmt.Fprintf(w, "%s:\n", destinationStyle.Styled(report.Destination))
		if len(report.Addresses) > 0 {
			fmt.Fprintf(w, "  Addresses: %s\n",
				addressStyle.Styled(strings.Join(report.Addresses, " ")))
		}
		if packets := report.Packets; packets != nil {
			lossStyle := lossFreeStyle
			if packets.LossPercent > 0 {
				lossStyle = lossyStyle
			}
			fmt.Fprintf(w, "  Sent: %d Received: %d Loss: %s\n",
				packets.Transmitted, packets.Received,
				lossStyle.Styled(fmt.Sprintf("%v%%", packets.LossPercent)))
		}
		if trips := report.Trips; trips != nil {
			fmt.Fprintf(w, "  Min: %v Avg: %v Max: %v Std: %v\n",
				trips.Min, trips.Avg, trips.Max, trips.StdDev)
		}
		fmt.Fprintln(w)
	}
	return nil
}
