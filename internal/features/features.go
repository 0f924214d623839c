// Package features implements a process-global feature flagging mechanism
// for the WebAssembly proposals wasmkit can target beyond the 2.0 core
// specification: garbage collection, threads/atomics, tail calls, and
// reference types/bulk memory.
package features

import (
	"os"
	"strings"
	"sync"
)

const (
	// EnvVarName is the environment variable read by EnableFromEnvironment.
	EnvVarName = "WASMKIT_FEATURES"

	// GC gates struct/array types and GC instructions (0xFB prefix).
	GC = "gc"
	// Threads gates shared memories and atomic instructions (0xFE prefix).
	Threads = "threads"
	// TailCall gates return_call and return_call_indirect.
	TailCall = "tail-call"
	// ReferenceTypes gates the 0xFC-prefixed instructions, ref.null,
	// ref.func, ref.is_null, table.get, table.set, non-funcref tables,
	// passive/declarative element segments and passive data segments.
	// funcref/externref value types are not gated.
	ReferenceTypes = "reference-types"
)

var (
	lock sync.RWMutex
	list []string
)

// EnableFromEnvironment extracts the list of features enabled from the
// WASMKIT_FEATURES environment variable.
func EnableFromEnvironment() {
	Enable(strings.Split(os.Getenv(EnvVarName), ",")...)
}

// Enable the list of features passed as arguments.
//
// The function is idempotent and atomic; features that are already present
// are skipped. Unrecognized features are ignored.
func Enable(enable ...string) {
	lock.Lock()
	defer lock.Unlock()

	enabled := list
	for _, f := range enable {
		if supported(f) && !have(enabled, f) {
			enabled = append(enabled, f)
		}
	}
	list = enabled
}

// Disable removes the named features, if present.
func Disable(disable ...string) {
	lock.Lock()
	defer lock.Unlock()

	var enabled []string
	for _, f := range list {
		keep := true
		for _, d := range disable {
			if f == d {
				keep = false
				break
			}
		}
		if keep {
			enabled = append(enabled, f)
		}
	}
	list = enabled
}

// List returns the current list of enabled features.
//
// The caller must treat the returned slice as read-only.
func List() []string {
	lock.RLock()
	defer lock.RUnlock()
	return list
}

// Enabled returns true if the given feature is enabled.
func Enabled(feature string) bool {
	lock.RLock()
	features := list
	lock.RUnlock()
	return have(features, feature)
}

func have(list []string, feature string) bool {
	for _, f := range list {
		if f == feature {
			return true
		}
	}
	return false
}

func supported(feature string) bool {
	switch feature {
	case GC, Threads, TailCall, ReferenceTypes:
		return true
	default:
		return false
	}
}
