// Package pushxml streams interpreter state to and from the XML document
// spec.md §6 defines: a <state> element containing <config>, <binding>, and
// <stack> children, each wrapping a recursively-nested Value encoding. Both
// directions use encoding/xml's token-level Decoder/Encoder directly rather
// than struct (un)marshaling — Value is a closed tagged union with a
// different element name per variant and CODE nests arbitrarily deep, which
// is exactly the shape spec.md calls out as "a straightforward tree walk
// using any XML library"; the stdlib encoder is the concrete library this
// package is built on (see DESIGN.md for why no third-party XML package
// from the corpus was pulled in instead).
package pushxml

// stackNames maps the wire name used in <stack name="..."> to the
// Interpreter field it addresses, per spec.md §6's
// "boolean|code|exec|integer|name|real" enumeration.
var stackNames = []string{"boolean", "code", "exec", "integer", "name", "real"}
