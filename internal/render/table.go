package render

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordfreq/internal/freq"
)

func writeTable(w io.Writer, entries []freq.Entry) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Rank", "Word", "Frequency"})
	for _, e := range entries {
		tw.AppendRow(table.Row{strconv.Itoa(e.Rank), e.Word, strconv.Itoa(e.Count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}
