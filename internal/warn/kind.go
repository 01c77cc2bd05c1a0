package warn

// Kind identifies a warning variant. The zero value is invalid so that an
// uninitialized kind is never silently treated as the base variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindWarning is the generic base variant; every other kind descends from it.
	KindWarning
	// KindOS covers operating-system related conditions.
	KindOS
	KindProcess
	KindConnection
	KindDisk
	KindMemory
	// KindFuture flags behaviour that will change in a future release.
	KindFuture
	// KindDeprecation flags use of a deprecated feature.
	KindDeprecation
	// KindPendingDeprecation flags use of a feature scheduled for deprecation.
	KindPendingDeprecation
	// KindStability flags use of an experimental or unstable feature.
	KindStability

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:            "Invalid",
	KindWarning:            "Warning",
	KindOS:                 "OSWarning",
	KindProcess:            "ProcessWarning",
	KindConnection:         "ConnectionWarning",
	KindDisk:               "DiskWarning",
	KindMemory:             "MemoryWarning",
	KindFuture:             "FutureWarning",
	KindDeprecation:        "DeprecationWarning",
	KindPendingDeprecation: "PendingDeprecationWarning",
	KindStability:          "StabilityWarning",
}

// kindParents encodes the variant tree. KindWarning is the root and maps to
// KindInvalid (no parent).
var kindParents = [kindCount]Kind{
	KindWarning:            KindInvalid,
	KindOS:                 KindWarning,
	KindProcess:            KindOS,
	KindConnection:         KindOS,
	KindDisk:               KindOS,
	KindMemory:             KindOS,
	KindFuture:             KindWarning,
	KindDeprecation:        KindWarning,
	KindPendingDeprecation: KindDeprecation,
	KindStability:          KindWarning,
}

// Valid reports whether k is a registered warning kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// Name returns the stable kind name used as the grouping key ("DiskWarning").
func (k Kind) Name() string {
	if !k.Valid() {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

func (k Kind) String() string { return k.Name() }

// Parent returns the immediate ancestor of k, or false for the root and for
// invalid kinds.
func (k Kind) Parent() (Kind, bool) {
	if !k.Valid() {
		return KindInvalid, false
	}
	p := kindParents[k]
	return p, p != KindInvalid
}

// Is reports whether k is ancestor itself or a descendant of ancestor.
func (k Kind) Is(ancestor Kind) bool {
	if !k.Valid() || !ancestor.Valid() {
		return false
	}
	for c := k; c != KindInvalid; c = kindParents[c] {
		if c == ancestor {
			return true
		}
	}
	return false
}

// ParseKind resolves a kind name back to its Kind. Accepts the exact names
// produced by Name plus the bare short forms used on the CLI ("disk",
// "deprecation").
func ParseKind(name string) (Kind, bool) {
	for k := KindWarning; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	if k, ok := kindShortNames[name]; ok {
		return k, true
	}
	return KindInvalid, false
}

var kindShortNames = map[string]Kind{
	"warning":             KindWarning,
	"os":                  KindOS,
	"process":             KindProcess,
	"connection":          KindConnection,
	"disk":                KindDisk,
	"memory":              KindMemory,
	"future":              KindFuture,
	"deprecation":         KindDeprecation,
	"pending-deprecation": KindPendingDeprecation,
	"stability":           KindStability,
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindWarning; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
