package engine

import (
	"github.com/user/cablecheck/pkg/logging"
	"github.com/user/cablecheck/pkg/schema"
)

// Reconcile merges an untrusted model guess with the deterministic
// extraction into a single FieldSet. Per field, a model value wins only
// when the schema admits it; otherwise the extracted value is kept, and a
// field missing from both stays absent. Malformed guesses are logged and
// dropped, never propagated into the result.
//
// Fields are probed in canonical order and keys in a fixed priority, so
// the merge of the same two inputs is identical on every run.
func Reconcile(guess map[string]any, extracted schema.FieldSet) schema.FieldSet {
	var out schema.FieldSet
	for _, field := range schema.FieldOrder {
		if value, ok := modelValue(guess, field); ok {
			out.Set(field, value)
			continue
		}
		if value, ok := extracted.Get(field); ok {
			out.Set(field, value)
		}
	}
	return out
}

func modelValue(guess map[string]any, field string) (any, bool) {
	for _, key := range schema.KeysFor(field) {
		raw, ok := guess[key]
		if !ok || raw == nil {
			continue
		}
		_, value, err := schema.Normalize(key, raw)
		if err != nil {
			logging.Debug("dropping model value", "field", field, "key", key, "err", err)
			continue
		}
		return value, true
	}
	return nil, false
}
