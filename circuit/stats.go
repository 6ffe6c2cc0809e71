//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
)

// PrintStats renders the circuit's gate-kind histogram to w. It backs
// the CLI's -stats flag.
func (c *Circuit) PrintStats(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Kind").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)

	for k := XOR; k <= OR; k++ {
		row := tab.Row()
		row.Column(k.String())
		row.Column(strconv.Itoa(c.Stats[k]))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(strconv.Itoa(c.NumGates())).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
