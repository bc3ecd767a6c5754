package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/milk9111/mariusz/game"
	"github.com/milk9111/mariusz/storage"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the high score and the best finished runs.

Examples:
  mariusz scores
  mariusz scores --limit 3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("read runs: %w", err)
	}
	out := cmd.OutOrStdout()

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			game.WorldLabel(r.World),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	high, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("read high score: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, row := range rows {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rank", "Score", "World", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("TOP- %06d", high)))
	fmt.Fprintln(out, t.Render())
	return nil
}
