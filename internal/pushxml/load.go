package pushxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/perr"
	"github.com/pushlang/go-push/internal/value"
)

// pendingState accumulates a parsed document before anything is applied to
// the target interpreter, so a malformed document leaves ip untouched
// (spec.md §6/§7: "leave the interpreter in its pre-load state").
type pendingState struct {
	config   map[string]*value.Value
	bindings map[string]*value.Value
	stacks   map[string][]*value.Value
}

// Load replaces all six stacks of ip with the stacks encoded in r and sets
// every config entry and binding the document names; config entries and
// bindings the document does not name are kept. On a malformed document it
// returns a *perr.ParseError and leaves ip exactly as it was.
func Load(r io.Reader, ip *interp.Interpreter) error {
	dec := xml.NewDecoder(r)

	tok, err := nextStart(dec)
	if err != nil {
		return wrapXMLError(dec, err)
	}
	if tok.Name.Local != "state" {
		return wrapXMLError(dec, fmt.Errorf("expected <state>, got <%s>", tok.Name.Local))
	}

	pending := &pendingState{
		config:   make(map[string]*value.Value),
		bindings: make(map[string]*value.Value),
		stacks:   make(map[string][]*value.Value),
	}
	if err := parseState(dec, ip, pending); err != nil {
		return wrapXMLError(dec, err)
	}

	applyState(ip, pending)
	return nil
}

func parseState(dec *xml.Decoder, ip *interp.Interpreter, pending *pendingState) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local == "state" {
				return nil
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "config":
				name := attr(t, "name")
				v, err := parseOneValue(dec, ip)
				if err != nil {
					return err
				}
				if v != nil {
					pending.config[name] = v
				}
			case "binding":
				name := attr(t, "name")
				v, err := parseOneValue(dec, ip)
				if err != nil {
					return err
				}
				if v != nil {
					pending.bindings[name] = v
				}
			case "stack":
				name := attr(t, "name")
				items, err := parseStackBody(dec, ip)
				if err != nil {
					return err
				}
				pending.stacks[name] = items
			default:
				if err := skipElement(dec); err != nil {
					return err
				}
			}
		}
	}
}

// parseOneValue reads the single Value element expected inside a <config>
// or <binding> wrapper and consumes its closing tag.
func parseOneValue(dec *xml.Decoder, ip *interp.Interpreter) (*value.Value, error) {
	var result *value.Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := parseValue(dec, ip, t)
			if err != nil {
				return nil, err
			}
			result = v
		case xml.EndElement:
			return result, nil
		}
	}
}

// parseStackBody reads zero or more Value elements until the enclosing
// </stack>, in document order (top-of-stack first, matching Dump).
func parseStackBody(dec *xml.Decoder, ip *interp.Interpreter) ([]*value.Value, error) {
	var items []*value.Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := parseValue(dec, ip, t)
			if err != nil {
				return nil, err
			}
			if v != nil {
				items = append(items, v)
			}
		case xml.EndElement:
			return items, nil
		}
	}
}

// parseValue decodes one Value element (and, recursively, its descendants
// for <code>), already positioned just past its opening StartElement.
// Returns a nil value with no error for an unknown instruction reference —
// spec.md §6's "warn to an observability sink, skip the token".
func parseValue(dec *xml.Decoder, ip *interp.Interpreter, start xml.StartElement) (*value.Value, error) {
	switch start.Name.Local {
	case "none":
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return ip.NewNoneValue(), nil
	case "bool":
		b, err := strconv.ParseBool(attr(start, "value"))
		if err != nil {
			return nil, err
		}
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return ip.NewBool(b), nil
	case "int":
		n, err := strconv.ParseInt(attr(start, "value"), 10, 64)
		if err != nil {
			return nil, err
		}
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return ip.NewInt(n), nil
	case "real":
		f, err := strconv.ParseFloat(attr(start, "value"), 64)
		if err != nil {
			return nil, err
		}
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return ip.NewReal(f), nil
	case "name":
		n := ip.Intern(attr(start, "value"))
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return ip.NewNameValue(n), nil
	case "instr":
		name := attr(start, "name")
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		rec := ip.LookupInstrByName(name)
		if rec == nil {
			slog.Warn("pushxml: unknown instruction during deserialization, skipping", "name", name)
			return nil, nil
		}
		return ip.NewInstrValue(rec.Name), nil
	case "code":
		children, err := parseStackBody(dec, ip) // same "read until EndElement" shape
		if err != nil {
			return nil, err
		}
		return ip.NewCode(value.CodeOf(children...)), nil
	default:
		if err := skipElement(dec); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unrecognized value element <%s>", start.Name.Local)
	}
}

func applyState(ip *interp.Interpreter, pending *pendingState) {
	ip.Flush()
	for k := range pending.config {
		ip.ConfigSet(k, pending.config[k])
	}
	for k := range pending.bindings {
		ip.Define(ip.Intern(k), pending.bindings[k])
	}
	for _, name := range stackNames {
		items := pending.stacks[name]
		s := targetStack(ip, name)
		if s == nil {
			continue
		}
		for i := len(items) - 1; i >= 0; i-- {
			s.Push(items[i])
		}
	}
}

func targetStack(ip *interp.Interpreter, name string) interface{ Push(*value.Value) } {
	switch name {
	case "boolean":
		return ip.Bool
	case "code":
		return ip.Code
	case "exec":
		return ip.Exec
	case "integer":
		return ip.Int
	case "name":
		return ip.Name
	case "real":
		return ip.Real
	}
	return nil
}

func attr(start xml.StartElement, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// nextStart skips leading tokens (e.g. the XML prolog) until the first
// element start.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// skipElement consumes tokens up to and including the matching EndElement
// for the StartElement most recently returned by dec.Token, via
// xml.Decoder's own nesting-aware Skip.
func skipElement(dec *xml.Decoder) error {
	return dec.Skip()
}

// wrapXMLError turns a raw decode error into the single ParseError type
// spec.md §7 designates for malformed serialized state, carrying the
// decoder's byte offset as a best-effort position (there is no useful
// line/column against an XML document the way there is against Push
// program source, so Source is left empty and Format simply omits the
// source-line gutter).
func wrapXMLError(dec *xml.Decoder, err error) error {
	if err == io.EOF {
		err = fmt.Errorf("unexpected end of document")
	}
	return perr.NewParseError(perr.Position{Line: 0, Column: int(dec.InputOffset())}, err.Error(), "")
}
