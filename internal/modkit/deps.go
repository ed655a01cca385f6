// Package modkit provides module wiring and the core deps handed to every API module
package modkit

import (
	"floaty/internal/modkit/repokit"
	"floaty/internal/platform/config"
	"floaty/internal/platform/logger"
	"floaty/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Logger returns Log or a component logger named after the module
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}

// HasPG reports whether a Postgres runner is wired
func (d Deps) HasPG() bool { return d.PG != nil }

// HasCH reports whether a ClickHouse seam is wired
func (d Deps) HasCH() bool { return d.CH != nil }

// FromStore fills PG and CH from an opened store
func FromStore(cfg config.Conf, st *store.Store) Deps {
	d := Deps{Cfg: cfg}
	if st == nil {
		return d
	}
	d.Log = &st.Log
	d.PG = st.PG
	d.CH = st.CH
	return d
}
