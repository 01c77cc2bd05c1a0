package warn

// Data is the optional structured payload of a record. Callers must not
// mutate it after handing it to a Record.
type Data map[string]any

// Record is an immutable warning value.
type Record struct {
	Kind    Kind
	Code    Code
	Message string
	Data    Data
}

// New builds a record of the given kind from a plain message.
// Returns false without building anything when kind is not registered.
func New(kind Kind, message string) (Record, bool) {
	if !kind.Valid() {
		return Record{}, false
	}
	return Record{Kind: kind, Code: kind.Code(), Message: message}, true
}

// NewWithData builds a record from a message plus a structured payload.
func NewWithData(kind Kind, message string, data Data) (Record, bool) {
	rec, ok := New(kind, message)
	if !ok {
		return Record{}, false
	}
	rec.Data = data
	return rec, true
}

// FromData builds a record whose message is synthesized from the payload.
// Only the future/deprecation/pending-deprecation/stability kinds support
// data-only construction; other kinds return false.
func FromData(kind Kind, data Data) (Record, bool) {
	if !synthesizes(kind) {
		return Record{}, false
	}
	return Record{
		Kind:    kind,
		Code:    kind.Code(),
		Message: synthesize(kind, data),
		Data:    data,
	}, true
}
