package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printHealth(v)
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.TurnResult:
		o.printTurnResult(v)
	case response.RankingsResponse:
		o.printRankings(v)
	case response.Layout:
		o.printLayout(v)
	case response.WordCheck:
		o.printWordCheck(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Dictionary > 0 {
		fmt.Fprintf(o.w, "Dictionary: %d words\n", h.Dictionary)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Turn: %d (player %d)\n", g.TurnNumber, g.CurrentPlayer)
	fmt.Fprintf(o.w, "Bag: %d tiles\n", g.BagRemaining)
	if g.ConsecutiveSkips > 0 {
		fmt.Fprintf(o.w, "Skips: %d of %d\n", g.ConsecutiveSkips, g.SkipLimit)
	}

	fmt.Fprintln(o.w)
	o.printBoard(g.Board)

	fmt.Fprintln(o.w, "\nPlayers:")
	for _, p := range g.Players {
		marker := " "
		if p.Number == g.CurrentPlayer && g.Status != "over" {
			marker = "*"
		}
		fmt.Fprintf(o.w, " %s %d: %d points  [%s]\n", marker, p.Number, p.Score, formatHand(p.Hand))
	}

	if len(g.Pending) > 0 {
		fmt.Fprintln(o.w, "\nPending:")
		for _, p := range g.Pending {
			fmt.Fprintf(o.w, "  %s at (%d, %d)\n", tileFace(p.Tile), p.Row, p.Col)
		}
	}

	if len(g.Rankings) > 0 {
		fmt.Fprintln(o.w, "\nFinal standings:")
		o.printRankingLines(g.Rankings)
	}
}

func formatHand(hand []response.Tile) string {
	return strings.Join(lo.Map(hand, func(t response.Tile, _ int) string {
		return fmt.Sprintf("%d:%s", t.ID, tileFace(t))
	}), " ")
}

func tileFace(t response.Tile) string {
	if t.Designated != "" {
		return strings.ToLower(t.Designated)
	}
	return t.Letter
}

func (o *Output) printBoard(b response.Board) {
	if len(b.Rows) == 0 {
		return
	}

	size := len(b.Rows)

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := range size {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	for row, line := range b.Rows {
		fmt.Fprintf(o.w, "%2d |", row)
		for _, r := range line {
			fmt.Fprintf(o.w, " %c ", r)
		}
		fmt.Fprintln(o.w, "|")
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, id := range l.Games {
		fmt.Fprintln(o.w, id)
	}
}

func (o *Output) printTurnResult(r response.TurnResult) {
	if r.Kind == "skip" {
		fmt.Fprintf(o.w, "Player %d skipped\n", r.Player)
	} else {
		fmt.Fprintf(o.w, "Player %d scored %d\n", r.Player, r.Score)
		for _, w := range r.Words {
			fmt.Fprintf(o.w, "  - %s (%d pts)\n", w.Word, w.Score)
		}
		if r.Bingo {
			fmt.Fprintln(o.w, "  All seven tiles used!")
		}
		fmt.Fprintf(o.w, "Drew %d tiles\n", r.Drawn)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(o.w, "Warning: %s\n", w)
	}

	if r.GameOver {
		fmt.Fprintln(o.w, "Game over!")
		o.printRankingLines(r.Rankings)
		return
	}
	fmt.Fprintf(o.w, "Next player: %d\n", r.NextPlayer)
}

func (o *Output) printRankings(r response.RankingsResponse) {
	if r.Final {
		fmt.Fprintln(o.w, "Final standings:")
	} else {
		fmt.Fprintln(o.w, "Current standings:")
	}
	o.printRankingLines(r.Rankings)
}

func (o *Output) printRankingLines(rankings []response.Ranking) {
	for _, r := range rankings {
		fmt.Fprintf(o.w, "  %d. player %d: %d points\n", r.Place, r.Player, r.Score)
	}
}

func (o *Output) printLayout(l response.Layout) {
	labels := make(map[response.Cell]string, len(l.Premiums))
	for _, p := range l.Premiums {
		labels[response.Cell{Row: p.Row, Col: p.Col}] = p.Label
	}

	for row := range l.Size {
		for col := range l.Size {
			cell := response.Cell{Row: row, Col: col}
			switch label, ok := labels[cell]; {
			case ok:
				fmt.Fprintf(o.w, "%-3s", label)
			case cell == l.Center:
				fmt.Fprint(o.w, "*  ")
			default:
				fmt.Fprint(o.w, ".  ")
			}
		}
		fmt.Fprintln(o.w)
	}
}

func (o *Output) printWordCheck(c response.WordCheck) {
	if c.Valid {
		fmt.Fprintf(o.w, "%s is a valid word\n", c.Word)
	} else {
		fmt.Fprintf(o.w, "%s is not in the dictionary\n", c.Word)
	}
}
