package warnfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"warnkit/internal/warn"
)

// FormatShort renders warnings into a stable, single-line-per-entry
// representation suitable for golden files and CLI short output:
//
//	warning WRN0005 DiskWarning: disk low
//
// Messages are flattened to a single line; entry order is preserved.
func FormatShort(recs []warn.Record) string {
	var b strings.Builder
	for i, rec := range recs {
		fmt.Fprintf(&b, "warning %s %s: %s", rec.Code.ID(), rec.Kind.Name(), sanitizeMessage(rec.Message))
		if i < len(recs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Pretty форматирует предупреждения в человекочитаемый вид.
// Для каждой записи печатает:
// warning <CODE> <Kind>: <Message>  // key=value ...
// Цвет включается опцией.
func Pretty(w io.Writer, recs []warn.Record, opts PrettyOpts) {
	for _, rec := range recs {
		fmt.Fprintln(w, prettyLine(rec, opts))
	}
}

func prettyLine(rec warn.Record, opts PrettyOpts) string {
	label := "warning"
	code := rec.Code.ID()
	kind := rec.Kind.Name()
	if opts.Color {
		label = labelColor.Sprint(label)
		code = codeColor.Sprint(code)
		kind = kindColor(rec.Kind).Sprint(kind)
	}
	line := fmt.Sprintf("%s %s %s: %s", label, code, kind, sanitizeMessage(rec.Message))
	if opts.ShowData && len(rec.Data) > 0 {
		payload := "// " + formatData(rec.Data)
		if opts.Color {
			payload = dataColor.Sprint(payload)
		}
		line += "  " + payload
	}
	if opts.Width > 0 {
		line = runewidth.Truncate(line, opts.Width, "…")
	}
	return line
}

var (
	labelColor = color.New(color.FgYellow, color.Bold)
	codeColor  = color.New(color.FgCyan)
	dataColor  = color.New(color.Faint)

	osFamilyColor   = color.New(color.FgRed)
	deprFamilyColor = color.New(color.FgYellow)
	futureColor     = color.New(color.FgCyan)
	stabilityColor  = color.New(color.FgMagenta)
	genericColor    = color.New(color.FgWhite)
)

func kindColor(k warn.Kind) *color.Color {
	switch {
	case k.Is(warn.KindOS):
		return osFamilyColor
	case k.Is(warn.KindDeprecation):
		return deprFamilyColor
	case k == warn.KindFuture:
		return futureColor
	case k == warn.KindStability:
		return stabilityColor
	}
	return genericColor
}

// formatData renders the payload as "k=v" pairs in key order for stable output.
func formatData(data warn.Data) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(pairs, " ")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
