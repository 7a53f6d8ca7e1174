package pushxml

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
)

// Dump writes ip's complete state — config, bindings, and all six stacks —
// as the XML document spec.md §6 describes. Map iteration order is
// nondeterministic in Go, so config and binding entries are written sorted
// by name for a stable, diffable document; this is an encoding choice, not
// a schema requirement (Load does not depend on ordering).
func Dump(w io.Writer, ip *interp.Interpreter) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "state"}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	if err := dumpConfig(enc, ip); err != nil {
		return err
	}
	if err := dumpBindings(enc, ip); err != nil {
		return err
	}
	if err := dumpStacks(enc, ip); err != nil {
		return err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func dumpConfig(enc *xml.Encoder, ip *interp.Interpreter) error {
	keys := ip.ConfigKeys()
	sort.Strings(keys)
	for _, name := range keys {
		v := ip.ConfigGet(name)
		if v == nil {
			continue
		}
		start := xml.StartElement{
			Name: xml.Name{Local: "config"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: name}},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeValue(enc, v); err != nil {
			return err
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}

func dumpBindings(enc *xml.Encoder, ip *interp.Interpreter) error {
	names := ip.BoundNames()
	sorted := make([]string, len(names))
	byString := make(map[string]*value.Name, len(names))
	for i, n := range names {
		sorted[i] = n.String()
		byString[n.String()] = n
	}
	sort.Strings(sorted)

	for _, s := range sorted {
		n := byString[s]
		v := ip.LookupBinding(n)
		if v == nil {
			continue
		}
		start := xml.StartElement{
			Name: xml.Name{Local: "binding"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: s}},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeValue(enc, v); err != nil {
			return err
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}

func dumpStacks(enc *xml.Encoder, ip *interp.Interpreter) error {
	for _, name := range stackNames {
		items := stackItems(ip, name)
		start := xml.StartElement{
			Name: xml.Name{Local: "stack"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: name}},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, v := range items {
			if err := writeValue(enc, v); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}

// stackItems returns a named stack's contents top-first, matching
// Stack.Items (spec's <stack> children are document-ordered top to bottom).
func stackItems(ip *interp.Interpreter, name string) []*value.Value {
	switch name {
	case "boolean":
		return ip.Bool.Items()
	case "code":
		return ip.Code.Items()
	case "exec":
		return ip.Exec.Items()
	case "integer":
		return ip.Int.Items()
	case "name":
		return ip.Name.Items()
	case "real":
		return ip.Real.Items()
	}
	return nil
}

// writeValue recursively encodes one Value as the leaf (or, for CODE,
// container) element spec.md §6 names for its Kind.
func writeValue(enc *xml.Encoder, v *value.Value) error {
	if v == nil || v.Kind() == value.KindNone {
		start := xml.StartElement{Name: xml.Name{Local: "none"}}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	}

	switch v.Kind() {
	case value.KindBool:
		return writeLeaf(enc, "bool", "value", boolString(v.Bool()))
	case value.KindInt:
		return writeLeaf(enc, "int", "value", strconv.FormatInt(v.Int(), 10))
	case value.KindReal:
		return writeLeaf(enc, "real", "value", strconv.FormatFloat(v.Real(), 'g', -1, 64))
	case value.KindName:
		return writeLeaf(enc, "name", "value", v.Sym().String())
	case value.KindInstr:
		return writeLeaf(enc, "instr", "name", v.Sym().String())
	case value.KindCode:
		start := xml.StartElement{Name: xml.Name{Local: "code"}}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, child := range v.Code().Items() {
			if err := writeValue(enc, child); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	}
	return nil
}

// writeLeaf encodes a self-closing leaf element with a single attribute,
// e.g. <int value="3"/>.
func writeLeaf(enc *xml.Encoder, elem, attr, attrValue string) error {
	start := xml.StartElement{
		Name: xml.Name{Local: elem},
		Attr: []xml.Attr{{Name: xml.Name{Local: attr}, Value: attrValue}},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
