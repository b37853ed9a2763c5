//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargodiff/internal/domain/commands"
)

// StubCompareCommand is a stub implementation of commands.Compare.
type StubCompareCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.CompareOptions
}

var _ commands.Compare = (*StubCompareCommand)(nil)

func (s *StubCompareCommand) Execute(opts commands.CompareOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
