package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"warnkit/internal/warn"
	"warnkit/internal/warnfmt"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] <snapshot>...",
	Short: "Render warnings from snapshot files",
	Long:  `Load one or more snapshot files, merge them in argument order, and render the warnings with optional kind and message filtering`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	showCmd.Flags().String("match", "", "keep only warnings whose message contains this substring")
	showCmd.Flags().Bool("ignore-case", false, "make --match case-insensitive")
	showCmd.Flags().String("kind", "", "keep only warnings of this kind or its descendants")
	showCmd.Flags().Bool("group", false, "group output by exact kind (pretty/short only)")
	showCmd.Flags().Bool("show-data", false, "include structured payloads in pretty output")
	showCmd.Flags().Int("max", 0, "limit the number of rendered entries in json output (0=all)")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	group, _ := cmd.Flags().GetBool("group")
	if group && format == "json" {
		return fmt.Errorf("--group cannot be combined with --format json")
	}

	recs, err := loadSnapshots(cmd.Context(), args)
	if err != nil {
		return err
	}
	recs, err = filterRecords(cmd, recs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	showData, _ := cmd.Flags().GetBool("show-data")
	popts := warnfmt.PrettyOpts{Color: useColor(cmd), ShowData: showData}

	switch format {
	case "json":
		max, _ := cmd.Flags().GetInt("max")
		return warnfmt.WriteJSON(out, recs, warnfmt.JSONOpts{IncludeData: showData, Max: max})
	case "pretty", "short":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}

	if !group {
		if format == "short" {
			if text := warnfmt.FormatShort(recs); text != "" {
				fmt.Fprintln(out, text)
			}
			return nil
		}
		warnfmt.Pretty(out, recs, popts)
		return nil
	}

	// Exact-kind grouping, rendered in kind declaration order so runs stay
	// diffable.
	byKind := make(map[warn.Kind][]warn.Record)
	for _, rec := range recs {
		byKind[rec.Kind] = append(byKind[rec.Kind], rec)
	}
	first := true
	for _, kind := range warn.Kinds() {
		members := byKind[kind]
		if len(members) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(out)
		}
		first = false
		fmt.Fprintf(out, "%s (%d)\n", kind.Name(), len(members))
		if format == "short" {
			fmt.Fprintln(out, warnfmt.FormatShort(members))
			continue
		}
		warnfmt.Pretty(out, members, popts)
	}
	return nil
}

// filterRecords applies the --kind and --match flags.
func filterRecords(cmd *cobra.Command, recs []warn.Record) ([]warn.Record, error) {
	kindName, _ := cmd.Flags().GetString("kind")
	match, _ := cmd.Flags().GetString("match")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")

	kind := warn.KindInvalid
	if kindName != "" {
		k, ok := warn.ParseKind(kindName)
		if !ok {
			return nil, fmt.Errorf("unknown warning kind %q", kindName)
		}
		kind = k
	}
	if ignoreCase {
		match = strings.ToLower(match)
	}

	out := make([]warn.Record, 0, len(recs))
	for _, rec := range recs {
		if kind != warn.KindInvalid && !rec.Kind.Is(kind) {
			continue
		}
		msg := rec.Message
		if ignoreCase {
			msg = strings.ToLower(msg)
		}
		if match != "" && !strings.Contains(msg, match) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
