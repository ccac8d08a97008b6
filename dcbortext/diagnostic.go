package dcbortext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brinecore/dcbor"
	"github.com/brinecore/dcbor/tag"
)

// Diagnostic renders v in CBOR diagnostic notation (RFC 8949 §8): integers
// and floats as literals, byte strings as h'...', text strings quoted,
// arrays as [...], maps as {k: v, ...}, and tags as N(inner), or as
// name(inner) when the tag is registered with a name. Grounded on
// original_source/src/dump.rs's tree walk, but produces the single-line
// textual form dump.rs calls via CBOR's Display rather than its leveled
// hex dump.
func Diagnostic(v dcbor.Value) string {
	var b strings.Builder
	writeDiagnostic(&b, v)
	return b.String()
}

func writeDiagnostic(b *strings.Builder, v dcbor.Value) {
	switch v.Kind() {
	case dcbor.KindUnsigned:
		n, _ := v.AsUint64()
		b.WriteString(strconv.FormatUint(n, 10))

	case dcbor.KindNegative:
		n, _ := v.AsInt64()
		b.WriteString(strconv.FormatInt(n, 10))

	case dcbor.KindBytes:
		raw, _ := v.AsBytes()
		b.WriteString("h'")
		for _, c := range raw {
			fmt.Fprintf(b, "%02x", c)
		}
		b.WriteString("'")

	case dcbor.KindText:
		s, _ := v.AsText()
		b.WriteString(strconv.Quote(s))

	case dcbor.KindArray:
		items, _ := v.AsArray()
		b.WriteString("[")
		for i, item := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagnostic(b, item)
		}
		b.WriteString("]")

	case dcbor.KindMap:
		m, _ := v.AsMap()
		b.WriteString("{")
		for i, pair := range m.Iter() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagnostic(b, pair.Key)
			b.WriteString(": ")
			writeDiagnostic(b, pair.Value)
		}
		b.WriteString("}")

	case dcbor.KindTagged:
		tagVal, content, _ := v.Tag()
		name := ""
		if t, ok := tag.Lookup(tagVal); ok {
			name = t.Name
		}
		if name != "" {
			fmt.Fprintf(b, "%s(", name)
		} else {
			fmt.Fprintf(b, "%d(", tagVal)
		}
		writeDiagnostic(b, content)
		b.WriteString(")")

	case dcbor.KindSimple:
		writeDiagnosticSimple(b, v)

	default:
		b.WriteString("?")
	}
}

func writeDiagnosticSimple(b *strings.Builder, v dcbor.Value) {
	if v.IsFloat() {
		f, _ := v.AsFloat64()
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		return
	}
	if bv, err := v.AsBool(); err == nil {
		b.WriteString(strconv.FormatBool(bv))
		return
	}
	if v.IsNull() {
		b.WriteString("null")
		return
	}
	b.WriteString("simple")
}
