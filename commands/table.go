package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/printlog/printlog-sheets/events"
)

func rowsToTable(f io.Writer, rows []events.Row) error {
	table := tablewriter.NewTable(f)

	table.Header(events.Columns)

	alignments := make([]tw.Align, len(events.Columns))
	for i := range alignments {
		if i == 0 {
			alignments[i] = tw.AlignLeft
		} else {
			alignments[i] = tw.AlignRight
		}
	}

	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.PerColumn = alignments
	})

	for _, row := range rows {
		if err := table.Append(format(row)); err != nil {
			return err
		}
	}

	return table.Render()
}
