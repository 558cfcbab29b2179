package typechecker

import "github.com/theQuarky/tspp/internal/position"

// Reporter is the subset of *diagreport.Reporter the checker depends on,
// kept as a narrow interface so tests can substitute a gomock double
// instead of the real reporter.
type Reporter interface {
	Error(pos position.Position, message string, code ...string)
}

// discardReporter swallows diagnostics; used while speculatively resolving
// types during Pass 1 member-table collection, where an undefined-type
// error would otherwise be reported twice (once here, once when the same
// type node is visited properly in Pass 2).
type discardReporter struct{}

func (discardReporter) Error(position.Position, string, ...string) {}
