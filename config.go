package wasmkit

import "github.com/wasmkit/wasmkit/internal/features"

// EncoderConfig controls which post-2.0 WebAssembly proposals a
// ModuleBuilder is allowed to emit. The default, NewEncoderConfig, reflects
// whatever internal/features.EnableFromEnvironment left enabled; a given
// EncodeBinary/EncodeText call can override that with its own
// EncoderConfig without touching the process-global flag list.
//
// EncoderConfig is immutable: every With* method returns a new value,
// leaving the receiver untouched, so a config can be shared and further
// specialized by multiple callers.
type EncoderConfig struct {
	gc             bool
	threads        bool
	tailCall       bool
	referenceTypes bool
}

// NewEncoderConfig returns a config seeded from the current process-global
// feature flags (internal/features.Enabled).
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		gc:             features.Enabled(features.GC),
		threads:        features.Enabled(features.Threads),
		tailCall:       features.Enabled(features.TailCall),
		referenceTypes: features.Enabled(features.ReferenceTypes),
	}
}

func (c *EncoderConfig) clone() *EncoderConfig {
	ret := *c
	return &ret
}

// WithGC toggles struct and array types and the 0xFB-prefixed instruction
// family.
func (c *EncoderConfig) WithGC(enabled bool) *EncoderConfig {
	ret := c.clone()
	ret.gc = enabled
	return ret
}

// WithThreads toggles shared memories and the 0xFE-prefixed atomic
// instruction family.
func (c *EncoderConfig) WithThreads(enabled bool) *EncoderConfig {
	ret := c.clone()
	ret.threads = enabled
	return ret
}

// WithTailCall toggles return_call and return_call_indirect.
func (c *EncoderConfig) WithTailCall(enabled bool) *EncoderConfig {
	ret := c.clone()
	ret.tailCall = enabled
	return ret
}

// WithReferenceTypes toggles non-funcref tables, passive/declarative
// element segments, passive data segments, and the table.get/table.set/
// ref.null/ref.func/ref.is_null instructions.
func (c *EncoderConfig) WithReferenceTypes(enabled bool) *EncoderConfig {
	ret := c.clone()
	ret.referenceTypes = enabled
	return ret
}

// enabledSet renders the config as the map internal/wasm.CheckFeatures
// expects.
func (c *EncoderConfig) enabledSet() map[string]bool {
	return map[string]bool{
		features.GC:             c.gc,
		features.Threads:        c.threads,
		features.TailCall:       c.tailCall,
		features.ReferenceTypes: c.referenceTypes,
	}
}
