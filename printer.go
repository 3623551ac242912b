// printer.go — Value → string rendering: `to_s`/`to_string`/`inspect`
// (spec.md §4.E). Grounded on the teacher's printer.go quoting/escaping
// helpers (quoteString, isIdent), generalized to Lispy's tagged Value.
package lispy

import (
	"fmt"
	"strconv"
	"strings"
)

// ToDisplayString is `to_s`: unquoted strings, bare symbol names, nil as
// the empty string (undefined still renders as "undefined").
func ToDisplayString(v Value) string {
	return render(v, false)
}

// ToDebugString is `to_string`/`inspect` with withquotes=true: quoted
// strings, canonical tags for nil/undefined/symbols.
func ToDebugString(v Value) string {
	return render(v, true)
}

// ToStringOpt implements the `to_s`/`to_string` builtin's optional
// withquotes flag directly (spec.md §4.E).
func ToStringOpt(v Value, withQuotes bool) string {
	return render(v, withQuotes)
}

func render(v Value, withQuotes bool) string {
	switch v.Tag {
	case TagNil:
		if withQuotes {
			return "nil"
		}
		return ""
	case TagUndefined:
		return "undefined"
	case TagBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case TagNumber:
		return formatNumber(v.AsNumber())
	case TagString:
		if withQuotes {
			return quoteString(v.AsString())
		}
		return v.AsString()
	case TagSymbol:
		if withQuotes {
			return "'" + v.AsSymbol()
		}
		return v.AsSymbol()
	case TagList:
		// Bracket sugar. reader.go reads "[...]" back as (list ...) — a List
		// whose head is the symbol "list" — not the bare data List rendered
		// here, so to_string -> parse is not a strict identity for Lists
		// (nor for Tuples, read back as (tuple ...), nor for symbols rendered
		// with quotes, read back as (quote name)). Numbers and quoted
		// strings do round-trip.
		return "[" + joinRendered(v.AsList(), withQuotes) + "]"
	case TagTuple:
		return "{" + joinRendered(v.AsTuple(), withQuotes) + "}"
	case TagDict:
		return renderDict(v.AsDict(), withQuotes)
	case TagLambda:
		return "<lambda>"
	case TagMacro:
		return "<macro>"
	case TagProcedure:
		return fmt.Sprintf("<proc:%s>", v.AsProcedure().Name)
	case TagSpecialProcedure:
		return fmt.Sprintf("<sproc:%s>", v.AsSpecialProcedure().Name)
	case TagEnvironment:
		return "<environment>"
	case TagError:
		e := v.AsError()
		return fmt.Sprintf("<error %s: %s>", e.Name, e.Message)
	default:
		raise(ErrUnexpectedInput, "unrenderable value tag %d", v.Tag)
		return ""
	}
}

func joinRendered(items []Value, withQuotes bool) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = render(it, withQuotes)
	}
	return strings.Join(parts, " ")
}

func renderDict(d *Dict, withQuotes bool) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := d.Get(k)
		fmt.Fprintf(&b, "%s: %s", k, render(v, withQuotes))
	}
	b.WriteByte('}')
	return b.String()
}

// formatNumber renders a float64 the way spec.md's Number values print:
// integral values with no trailing ".0" noise, everything else via the
// shortest round-tripping representation.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteString escapes a string for `withquotes` rendering, grounded on the
// teacher's printer.go quoteString.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
