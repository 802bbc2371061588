package internal

import "github.com/pkg/errors"

// Malformed input data never errors in this engine — it degrades to empty or
// partial results. Panics are reserved for genuine contract violations (for
// example handing the ASCII parser a binary DXF buffer), and the public API
// recovers them into ordinary errors so callers never see a panic.

type ContractError error

// Panic with a ContractError.
func Fatalf(format string, args ...interface{}) {
	panic(ContractError(errors.Errorf(format, args...)))
}

// HandleContractPanic converts a recovered ContractError into an error and
// re-panics anything else.
func HandleContractPanic(r interface{}) error {
	if r != nil {
		if contractErr, ok := r.(ContractError); ok {
			return contractErr
		}
		panic(r)
	}
	return nil
}
