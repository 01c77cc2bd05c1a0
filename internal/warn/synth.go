package warn

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// synthesizes reports whether the kind supports data-only construction.
func synthesizes(kind Kind) bool {
	switch kind {
	case KindFuture, KindDeprecation, KindPendingDeprecation, KindStability:
		return true
	}
	return false
}

// synthesize renders the default message of a data-constructed record.
// Pure function of (kind, data); the result is NFC-normalized so that
// messages coming from mixed sources compare and render consistently.
func synthesize(kind Kind, data Data) string {
	var msg string
	switch kind {
	case KindFuture:
		msg = synthFuture(data)
	case KindDeprecation:
		msg = synthDeprecation(data, "is deprecated")
	case KindPendingDeprecation:
		msg = synthDeprecation(data, "will be deprecated in a future release")
	case KindStability:
		msg = synthStability(data)
	}
	return norm.NFC.String(msg)
}

func synthFuture(data Data) string {
	feature := dataString(data, "feature")
	change := dataString(data, "change")
	switch {
	case feature != "" && change != "":
		return fmt.Sprintf("behaviour of %s will change in a future release: %s", feature, change)
	case feature != "":
		return fmt.Sprintf("behaviour of %s will change in a future release", feature)
	default:
		return "behaviour will change in a future release"
	}
}

func synthDeprecation(data Data, verb string) string {
	subject := dataString(data, "subject")
	if subject == "" {
		subject = "this feature"
	}
	msg := subject + " " + verb
	if alt := dataString(data, "replacement"); alt != "" {
		msg += ", use " + alt + " instead"
	}
	if rm := dataString(data, "removal"); rm != "" {
		msg += " (removal planned for " + rm + ")"
	}
	return msg
}

func synthStability(data Data) string {
	feature := dataString(data, "feature")
	if feature == "" {
		feature = "this feature"
	}
	level := dataString(data, "level")
	if level == "" {
		level = "experimental"
	}
	return fmt.Sprintf("%s is %s and may change without notice", feature, level)
}

// dataString extracts a string field from the payload; non-string values and
// missing keys read as empty.
func dataString(data Data, key string) string {
	if data == nil {
		return ""
	}
	s, _ := data[key].(string)
	return s
}
