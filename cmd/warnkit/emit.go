package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"warnkit/internal/snapshot"
	"warnkit/internal/warn"
	"warnkit/internal/warnfmt"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] [message...]",
	Short: "Record warnings and optionally write a snapshot",
	Long: `Record one warning per message argument, print each through the console
observer (subject to the active policy), and optionally persist the collection
as a snapshot file. With --data and no messages the warning text is
synthesized from the payload (future/deprecation/pending-deprecation/stability
kinds only).`,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().String("kind", "Warning", "warning kind (name or short form, e.g. DiskWarning or disk)")
	emitCmd.Flags().StringArray("data", nil, "structured payload entry key=value (repeatable)")
	emitCmd.Flags().String("out", "", "write the recorded warnings to a snapshot file")
	emitCmd.Flags().String("policy", "", "policy file (default: nearest warnkit.toml)")
}

func runEmit(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, ok := warn.ParseKind(kindName)
	if !ok {
		return fmt.Errorf("unknown warning kind %q", kindName)
	}

	data, err := parseDataFlags(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 && len(data) == 0 {
		return fmt.Errorf("nothing to record: pass messages or --data entries")
	}

	mgr := warn.NewManager()
	defer mgr.Complete()

	if !quiet(cmd) {
		filter, err := loadPolicyFilter(cmd)
		if err != nil {
			return err
		}
		console := warnfmt.NewConsoleObserver(cmd.OutOrStdout(), cmd.ErrOrStderr(), warnfmt.PrettyOpts{
			Color:    useColor(cmd),
			ShowData: true,
		})
		mgr.Subscribe(filter.Wrap(console))
	}

	if len(args) == 0 {
		if !mgr.RecordData(kind, data) {
			return fmt.Errorf("kind %q does not support data-only construction", kind.Name())
		}
	}
	for _, msg := range args {
		if len(data) > 0 {
			rec, ok := warn.NewWithData(kind, msg, data)
			if !ok {
				return fmt.Errorf("unknown warning kind %q", kind.Name())
			}
			mgr.Record(rec)
			continue
		}
		mgr.RecordMessage(kind, msg)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := snapshot.Write(out, mgr.All()); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		if !quiet(cmd) {
			fmt.Fprintf(os.Stderr, "wrote %d warning(s) to %s\n", mgr.Len(), out)
		}
	}
	return nil
}

// parseDataFlags converts repeated --data key=value flags into a payload.
func parseDataFlags(cmd *cobra.Command) (warn.Data, error) {
	entries, err := cmd.Flags().GetStringArray("data")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	data := make(warn.Data, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --data entry %q (expected key=value)", entry)
		}
		data[key] = value
	}
	return data, nil
}
