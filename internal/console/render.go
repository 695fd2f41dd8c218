package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/robalobadob/wordle/apps/go-console/internal/game"
	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
)

// renderFeedback prints one guess as a row of tiles. Correct letters are
// green, present letters yellow, absent letters '_'.
func renderFeedback(w io.Writer, a game.Attempt, color bool) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	row := make([]string, len(a.Marks))
	colors := make([]tablewriter.Colors, len(a.Marks))
	for i, m := range a.Marks {
		switch m {
		case game.MarkCorrect:
			row[i] = string(a.Word[i])
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgGreenColor}
		case game.MarkPresent:
			row[i] = string(a.Word[i])
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgYellowColor}
		default:
			row[i] = "_"
		}
	}
	if color {
		table.Rich(row, colors)
	} else {
		table.Append(row)
	}
	table.Render()
}

// renderLeaderboard prints the standings as a Name / Score / Time table.
func renderLeaderboard(w io.Writer, recs []leaderboard.Record) {
	fmt.Fprint(w, "\n--Leaderboard--\n")

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Name", "Score", "Time (s)"})
	for _, r := range recs {
		table.Append([]string{r.Name, strconv.Itoa(r.Score), strconv.Itoa(r.TimeTaken)})
	}
	table.Render()
}
