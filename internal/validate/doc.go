// Package validate checks caller input at the boundary between untyped
// sources (MCP tool arguments, decoded JSON) and the tag store.
//
// Tag text itself is opaque and never validated: any string, including empty
// strings and strings with newlines, is a legal tag. What is checked is the
// shape of the input, so a request carrying a number where a tag belongs is
// rejected before any extended attribute is written.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe checking:
//
//	if errors.Is(err, validate.ErrNotString) {
//	    // reject the request
//	}
package validate
