package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/pathfind"
	"github.com/inovacc/heroes/internal/render"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find the shortest path between two cells",
	Long: `Find the shortest 8-directional path between two cells of the field.

Cells are written as x,y with 0 <= x < 27 and 0 <= y < 21. Blocked cells
can be given with repeated --block flags.

Examples:
  heroes path --from 0,0 --to 26,20
  heroes path --from 2,5 --to 24,5 --block 10,4 --block 10,5 --block 10,6 --board`,
	RunE: runPath,
}

var (
	pathFrom   model.Edge
	pathTo     model.Edge
	pathBlocks []model.Edge
	pathBoard  bool
)

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().Var(newCellValue(&pathFrom), "from", "Start cell as x,y")
	pathCmd.Flags().Var(newCellValue(&pathTo), "to", "End cell as x,y")
	pathCmd.Flags().Var(&cellListValue{cells: &pathBlocks}, "block", "Blocked cell as x,y (repeatable)")
	pathCmd.Flags().BoolVar(&pathBoard, "board", false, "Draw the path on the field")

	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")
}

func runPath(cmd *cobra.Command, _ []string) error {
	path := pathfind.FindPathBetween(pathFrom, pathTo, pathBlocks)

	out := cmd.OutOrStdout()

	if len(path) == 0 {
		_, _ = fmt.Fprintf(out, "No path from %d,%d to %d,%d.\n", pathFrom.X, pathFrom.Y, pathTo.X, pathTo.Y)
		return nil
	}

	cells := make([]string, 0, len(path))
	for _, e := range path {
		cells = append(cells, fmt.Sprintf("%d,%d", e.X, e.Y))
	}

	_, _ = fmt.Fprintf(out, "Distance: %d\n", pathfind.Distance(path))
	_, _ = fmt.Fprintf(out, "Path:     %s\n", strings.Join(cells, " -> "))

	if pathBoard {
		blocks := &model.Army{}
		for _, e := range pathBlocks {
			blocks.Units = append(blocks.Units, &model.Unit{UnitType: "#", X: e.X, Y: e.Y, Alive: true})
		}

		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, newRenderer(out).Board(nil, blocks, render.BoardOptions{Path: path}))
	}

	return nil
}
