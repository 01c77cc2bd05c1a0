package policy

import (
	"strings"

	"warnkit/internal/warn"
)

type onceKey struct {
	kind warn.Kind
	msg  string
}

// filterObserver wraps another observer and suppresses warnings according to
// the compiled rules. "once" state lives per wrap, not per filter, so the
// same Filter can serve several independent observers.
type filterObserver struct {
	rules []compiledRule
	next  warn.Observer
	seen  map[onceKey]struct{}
}

// Wrap returns an observer that forwards to next only the warnings the rules
// allow. A nil filter forwards everything.
func (f *Filter) Wrap(next warn.Observer) warn.Observer {
	if f == nil || len(f.rules) == 0 {
		return next
	}
	return &filterObserver{
		rules: f.rules,
		next:  next,
		seen:  make(map[onceKey]struct{}),
	}
}

func (o *filterObserver) Next(rec warn.Record) {
	switch o.decide(rec) {
	case ActionDrop:
		return
	case ActionOnce:
		key := onceKey{kind: rec.Kind, msg: rec.Message}
		if _, dup := o.seen[key]; dup {
			return
		}
		o.seen[key] = struct{}{}
	}
	o.next.Next(rec)
}

func (o *filterObserver) Error(err error) {
	o.next.Error(err)
}

// decide returns the action of the first matching rule, ActionKeep otherwise.
func (o *filterObserver) decide(rec warn.Record) string {
	for _, r := range o.rules {
		if r.kind != warn.KindInvalid && !rec.Kind.Is(r.kind) {
			continue
		}
		if r.match != "" && !strings.Contains(rec.Message, r.match) {
			continue
		}
		return r.action
	}
	return ActionKeep
}
