package cmd

import (
	"fmt"
	"strconv"

	"winline/encoding"
	"winline/internal/winline"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:     "detect <symbol>...",
	Short:   "Print the winning combinations of a line as JSON",
	Example: "  winline detect 3 3 3 8 6 3",
	RunE:    runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	line, err := parseLine(args)
	if err != nil {
		return err
	}
	combos := winline.Detect(line)
	if combos == nil {
		combos = []winline.Combination{}
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoding.ToJson(combos))
	return nil
}

func parseLine(args []string) ([]int64, error) {
	line := make([]int64, 0, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid symbol %q at position %d: %w", a, i, err)
		}
		line = append(line, v)
	}
	return line, nil
}
