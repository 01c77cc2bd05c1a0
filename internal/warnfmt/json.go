package warnfmt

import (
	"encoding/json"
	"io"

	"warnkit/internal/warn"
)

// RecordJSON представляет предупреждение в JSON формате
type RecordJSON struct {
	Kind    string         `json:"kind"`
	Code    string         `json:"code"`
	Value   uint16         `json:"code_value"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// WarningsOutput представляет корневую структуру JSON вывода
type WarningsOutput struct {
	Warnings []RecordJSON `json:"warnings"`
	Count    int          `json:"count"`
}

// BuildJSON converts records into the JSON output structure. Count always
// reflects the full collection even when Max trims the rendered list.
func BuildJSON(recs []warn.Record, opts JSONOpts) WarningsOutput {
	out := WarningsOutput{
		Warnings: make([]RecordJSON, 0, len(recs)),
		Count:    len(recs),
	}
	for i, rec := range recs {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		rj := RecordJSON{
			Kind:    rec.Kind.Name(),
			Code:    rec.Code.ID(),
			Value:   uint16(rec.Code),
			Message: rec.Message,
		}
		if opts.IncludeData && len(rec.Data) > 0 {
			rj.Data = rec.Data
		}
		out.Warnings = append(out.Warnings, rj)
	}
	return out
}

// WriteJSON renders records as indented JSON.
func WriteJSON(w io.Writer, recs []warn.Record, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(recs, opts))
}
