package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"wordfreq/internal/freq"
)

// wordWidth is the display width words are padded to in the text format.
const wordWidth = 15

var (
	labelColors = text.Colors{text.Bold, text.FgHiWhite}
	countColors = text.Colors{text.FgGreen}
)

func writeText(w io.Writer, entries []freq.Entry, color bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		label := fmt.Sprintf("%2d. %s", e.Rank, text.Pad(e.Word, wordWidth, ' '))
		count := fmt.Sprint(e.Count)
		if color {
			label = labelColors.Sprint(label)
			count = countColors.Sprint(count)
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", label, count); err != nil {
			return err
		}
	}
	return bw.Flush()
}
