package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"warnkit/internal/warn"
)

var statsCmd = &cobra.Command{
	Use:   "stats <snapshot>...",
	Short: "Summarize warnings per kind",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	recs, err := loadSnapshots(cmd.Context(), args)
	if err != nil {
		return err
	}

	counts := make(map[warn.Kind]int)
	for _, rec := range recs {
		counts[rec.Kind]++
	}

	type kindCount struct {
		kind  warn.Kind
		count int
	}
	rows := make([]kindCount, 0, len(counts))
	for kind, n := range counts {
		rows = append(rows, kindCount{kind: kind, count: n})
	}
	// по убыванию количества, затем по имени для стабильности
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].kind.Name() < rows[j].kind.Name()
	})

	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintf(out, "%-28s %5d  %s\n", row.kind.Name(), row.count, row.kind.Code().ID())
	}
	fmt.Fprintf(out, "%-28s %5d\n", "total", len(recs))
	return nil
}
