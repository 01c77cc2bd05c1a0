// Package warn defines the core warning model shared by the CLI and rendering
// layers.
//
// # Purpose
//
//   - Provide a small, deterministic value type (Record) for non-fatal
//     application warnings, classified by a fixed Kind hierarchy with stable
//     numeric codes.
//   - Offer a Manager that accumulates records in insertion order, answers
//     filtering/grouping queries, and pushes each freshly recorded warning to
//     subscribed observers synchronously.
//
// # Scope
//
// Package warn does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering lives in internal/warnfmt, delivery rules
// in internal/policy, and file snapshots in internal/snapshot.
//
// # Data model
//
// Record is the central value. It contains:
//
//   - Kind – the most specific variant of the warning (kind.go). Kinds form a
//     fixed tree; Kind.Is answers "is this kind X or a descendant of X".
//   - Code – compact numeric identifier derived from the kind (codes.go) with
//     a stable string form for external tooling.
//   - Message – human oriented text; keep it short and actionable. For the
//     future/deprecation/pending-deprecation/stability kinds the message may
//     be synthesized from structured data (synth.go).
//   - Data – optional structured payload. Never mutated after construction.
//
// Records are immutable once constructed: the Manager only appends or removes
// whole records, never edits one in place.
//
// # Recording and observing
//
// Manager.Record appends a record and notifies every observer subscribed at
// that moment, inline, before returning. Complete is the terminal transition:
// it clears the collection, detaches all observers and permanently disables
// notification; recording and querying keep working afterwards.
//
// Observers implement Next/Error. The manager never calls Error itself; the
// channel exists for the wider observable contract. A panicking observer does
// not prevent the remaining observers from being notified.
package warn
