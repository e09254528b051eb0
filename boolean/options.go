package boolean

import (
	"github.com/iceisfun/gomesh3d/assemble"
	"github.com/iceisfun/gomesh3d/boolcfg"
)

// DumpSink receives advisory diagnostics. It is injected per call
// rather than registered globally. A Boolean call that fails the
// final manifold check reports the offending edges here before
// returning the error; the report is advisory only and never changes
// the error Boolean returns.
type DumpSink interface {
	WriteNonManifoldReport(edges []assemble.NonManifoldEdge) error
}

// Option configures a single Boolean call.
type Option func(*options)

type options struct {
	tol  boolcfg.Tolerances
	dump DumpSink
}

func newOptions(opts []Option) options {
	cfg := options{tol: boolcfg.Default}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithTolerances overrides the frozen default tolerance table for one
// call, e.g. a test exercising a coarser or finer epsilon set.
func WithTolerances(tol boolcfg.Tolerances) Option {
	return func(cfg *options) { cfg.tol = tol }
}

// WithDumpSink injects a diagnostic sink. Without one, a non-manifold
// assembly failure is reported only through the returned error.
func WithDumpSink(sink DumpSink) Option {
	return func(cfg *options) { cfg.dump = sink }
}

// reportAssemblyFailure forwards a non-manifold assembly error's edge
// list to the configured DumpSink, if any. The sink's own error, if
// it has one, is deliberately swallowed: a failed diagnostic write
// must never shadow the real pipeline error.
func (cfg options) reportAssemblyFailure(err error) {
	if cfg.dump == nil {
		return
	}
	edges := nonManifoldEdges(err)
	if edges == nil {
		return
	}
	_ = cfg.dump.WriteNonManifoldReport(edges)
}
