package repokit

import (
	"context"
	"fmt"
	"regexp"
)

// BeginHook runs first inside every transaction, with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps inner so hooks run before fn inside the same tx.
// Plain queries outside Tx pass through untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

var reSetting = regexp.MustCompile(`^[a-z_][a-z0-9_.]*$`)

// SetLocal returns a hook that applies a transaction scoped setting such as
// lock_timeout or statement_timeout
func SetLocal(name, value string) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if !reSetting.MatchString(name) {
			return fmt.Errorf("repokit: invalid setting name %q", name)
		}
		_, err := q.Exec(ctx, "SELECT set_config($1, $2, true)", name, value)
		return err
	}
}
