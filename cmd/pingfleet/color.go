// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	destinationStyle = termenv.Style{}.Bold()
	lossFreeStyle    = termenv.Style{}.Foreground(termenv.ANSIGreen)
	lossyStyle       = termenv.Style{}.Foreground(termenv.ANSIRed)
	addressStyle     = termenv.Style{}.Faint()
)
