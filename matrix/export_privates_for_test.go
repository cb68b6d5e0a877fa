// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and a read-only view of resolved Options to
//     matrix_test ONLY, without widening the production API.
//   - This file ends in _test.go, so it is compiled only by `go test`.

import "github.com/hashicorp/go-hclog"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCofactorLimitInvalid_TestOnly = panicCofactorLimitInvalid
	PanicWarnOrderInvalid_TestOnly     = panicWarnOrderInvalid
	PanicLoggerNil_TestOnly            = panicLoggerNil
)

// OptionsSnapshot is a stable, read-only view of resolved Options.
type OptionsSnapshot struct {
	CofactorLimit int
	WarnOrder     int
	Logger        hclog.Logger
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{CofactorLimit: o.cofactorLimit, WarnOrder: o.warnOrder, Logger: o.logger}
}

// FieldWidth_TestOnly forwards to fieldWidth.
func FieldWidth_TestOnly(minVal, maxVal float64, precision int) int {
	return fieldWidth(minVal, maxVal, precision)
}

// Truthy_TestOnly forwards to truthy.
func Truthy_TestOnly[T Element](v T) bool {
	return truthy(v)
}
