package api

import (
	"encoding/json"

	"github.com/salesdash/proxy-api/internal/downstream"
)

// PatchOperation is a single partial-update instruction as received in a
// PATCH request body. Order within the request is significant: later
// operations may depend on the state left by earlier ones.
type PatchOperation struct {
	// Op is the operation kind: add, remove, replace, move, copy, or test.
	Op string `json:"op"`

	// Path is the target path the operation applies to.
	Path string `json:"path"`

	// From is the source path, used by move and copy.
	From string `json:"from,omitempty"`

	// Value is the operation's payload, kept opaque.
	Value json.RawMessage `json:"value,omitempty"`
}

// TranslatePatch converts an ordered patch-operation sequence into the
// representation the downstream client expects. The projection is pure and
// element-wise: every input operation maps to exactly one output record, in
// the same position, with no validation of path legality or kind/from
// consistency. Such validation is the downstream service's responsibility.
func TranslatePatch(ops []PatchOperation) []downstream.Operation {
	translated := make([]downstream.Operation, len(ops))
	for i, op := range ops {
		translated[i] = downstream.Operation{
			Op:    op.Op,
			Path:  op.Path,
			From:  op.From,
			Value: op.Value,
		}
	}
	return translated
}
