package codec

import "gopkg.in/yaml.v3"

// DefaultMaxDepth is the suggested nested-depth bound from spec §5: deep
// enough for any real record, shallow enough to stop stack exhaustion
// from adversarial input.
const DefaultMaxDepth = 64

// Options configures a single encode or decode call. The zero Options is
// not valid for decoding untrusted input (MaxDepth of 0 accepts only
// scalars and empty Lists/Maps, rejecting any List or Map with
// elements); use DefaultOptions or load one from YAML.
type Options struct {
	// MaxDepth bounds how deeply Lists and Maps may nest before
	// ErrMaxDepthExceeded is returned. Not part of the on-wire contract —
	// a deployment may raise or lower it without breaking interop with
	// another implementation's canonical bytes, as long as it is at
	// least as generous as whatever produced those bytes.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultOptions returns the suggested Options: MaxDepth 64.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// OptionsFromYAML parses Options from a YAML document, for embedding
// contexts (a host service's config file) that want to set MaxDepth
// declaratively rather than in Go. Fields absent from the document keep
// DefaultOptions' values.
func OptionsFromYAML(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return opts, nil
}
