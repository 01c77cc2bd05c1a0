// Package policy applies delivery rules to observer notification. Rules are
// matched in order against each recorded warning; the first match decides
// whether the observer sees it. The manager's own collection is never
// affected: a dropped warning is still recorded and queryable.
package policy

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"warnkit/internal/warn"
)

// Rule actions.
const (
	// ActionKeep delivers every matching warning (the default).
	ActionKeep = "keep"
	// ActionDrop suppresses matching warnings entirely.
	ActionDrop = "drop"
	// ActionOnce delivers only the first occurrence per (kind, message).
	ActionOnce = "once"
)

// Rule selects warnings by kind and message substring. An empty kind matches
// every kind; a named kind also matches its descendants. An empty match
// string matches every message.
type Rule struct {
	Kind   string `toml:"kind"`
	Match  string `toml:"match"`
	Action string `toml:"action"`
}

// Config is the on-disk shape of a policy file.
//
//	[[rule]]
//	kind = "DeprecationWarning"
//	match = "legacy"
//	action = "drop"
type Config struct {
	Rules []Rule `toml:"rule"`
}

type compiledRule struct {
	kind   warn.Kind // KindInvalid when the rule matches any kind
	match  string
	action string
}

// Filter holds a validated rule set.
type Filter struct {
	rules []compiledRule
}

// New validates and compiles a rule set.
func New(rules []Rule) (*Filter, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		cr := compiledRule{match: r.Match, action: r.Action}
		if r.Kind != "" {
			k, ok := warn.ParseKind(r.Kind)
			if !ok {
				return nil, fmt.Errorf("rule %d: unknown warning kind %q", i+1, r.Kind)
			}
			cr.kind = k
		}
		switch r.Action {
		case ActionKeep, ActionDrop, ActionOnce:
		case "":
			cr.action = ActionKeep
		default:
			return nil, fmt.Errorf("rule %d: unknown action %q (keep|drop|once)", i+1, r.Action)
		}
		compiled = append(compiled, cr)
	}
	return &Filter{rules: compiled}, nil
}

// Load reads and compiles a policy file.
func Load(path string) (*Filter, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load policy %q: %w", path, err)
	}
	f, err := New(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid policy %q: %w", path, err)
	}
	return f, nil
}
