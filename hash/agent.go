package hash

import "mythos.dev/can/value"

// SchemeEd25519 is the only AgentID signing scheme v0.2 names.
const SchemeEd25519 uint64 = 1

// AgentID identifies the party that signed a Receipt: a scheme tag, a
// public key, and an optional human hint (e.g. the issuing tool's short
// name). Hint is a pointer rather than a plain string so that "absent"
// and "present but empty" stay distinguishable all the way through to
// the wire, matching the optional-field rule the rest of the record
// layer follows.
type AgentID struct {
	Scheme uint64
	Key    []byte
	Hint   *string
}

// Value renders an AgentID as its canonical Map, field 3 (hint) present
// only when Hint is non-nil.
func (a AgentID) Value() value.Value {
	pairs := []value.Pair{
		value.Field(1, value.NewUVarint(a.Scheme)),
		value.Field(2, value.NewBytes(a.Key)),
	}
	if a.Hint != nil {
		pairs = append(pairs, value.Field(3, value.NewText(*a.Hint)))
	}
	return value.NewMap(pairs...)
}

// AgentIDFromValue reads an AgentID back out of its canonical Map.
func AgentIDFromValue(v value.Value) (AgentID, error) {
	if v.Kind != value.KindMap {
		return AgentID{}, &MalformedHashError{Reason: "agent_id is not a map"}
	}
	schemeField, ok := v.Get(1)
	if !ok || schemeField.Kind != value.KindUVarint {
		return AgentID{}, &MalformedHashError{Reason: "agent_id field 1 (scheme) missing or not a uvarint"}
	}
	keyField, ok := v.Get(2)
	if !ok || keyField.Kind != value.KindBytes {
		return AgentID{}, &MalformedHashError{Reason: "agent_id field 2 (key) missing or not bytes"}
	}
	agent := AgentID{Scheme: schemeField.UVarint, Key: keyField.Bytes}
	if hintField, ok := v.Get(3); ok {
		if hintField.Kind != value.KindText {
			return AgentID{}, &MalformedHashError{Reason: "agent_id field 3 (hint) present but not text"}
		}
		hint := hintField.Text
		agent.Hint = &hint
	}
	return agent, nil
}
