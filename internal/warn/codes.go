package warn

import "fmt"

// Code is the stable numeric identifier of a warning variant. External
// diagnostic tooling keys off these values, so they must never be reused or
// renumbered. The manager stores whatever code a record already carries and
// never validates it.
type Code uint16

const (
	UnknownCode        Code = 0
	GenericCode            Code = 1
	OSCode                 Code = 2
	ProcessCode            Code = 3
	ConnectionCode         Code = 4
	DiskCode               Code = 5
	MemoryCode             Code = 6
	FutureCode             Code = 7
	DeprecationCode        Code = 8
	PendingDeprecationCode Code = 9
	StabilityCode          Code = 10
)

var kindCodes = [kindCount]Code{
	KindWarning:            GenericCode,
	KindOS:                 OSCode,
	KindProcess:            ProcessCode,
	KindConnection:         ConnectionCode,
	KindDisk:               DiskCode,
	KindMemory:             MemoryCode,
	KindFuture:             FutureCode,
	KindDeprecation:        DeprecationCode,
	KindPendingDeprecation: PendingDeprecationCode,
	KindStability:          StabilityCode,
}

var codeDescription = map[Code]string{
	UnknownCode:            "unknown warning",
	GenericCode:            "generic warning",
	OSCode:                 "operating system warning",
	ProcessCode:            "process warning",
	ConnectionCode:         "connection warning",
	DiskCode:               "disk warning",
	MemoryCode:             "memory warning",
	FutureCode:             "future behaviour change",
	DeprecationCode:        "deprecated feature",
	PendingDeprecationCode: "pending deprecation",
	StabilityCode:          "unstable feature",
}

// Code returns the fixed numeric code assigned to the kind.
func (k Kind) Code() Code {
	if !k.Valid() {
		return UnknownCode
	}
	return kindCodes[k]
}

// ID renders the stable external form, e.g. "WRN0005".
func (c Code) ID() string {
	return fmt.Sprintf("WRN%04d", uint16(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
