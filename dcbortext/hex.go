// Package dcbortext provides the human-facing printers the spec treats as
// external collaborators (§1, §6): plain hex, an annotated hex dump with a
// byte-offset gutter and per-item notes, and CBOR diagnostic notation.
// None of this package participates in the encode/decode contract; it only
// consumes dcbor's public API.
package dcbortext

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/brinecore/dcbor"
	"github.com/brinecore/dcbor/tag"
)

// Hex returns the lowercase hex encoding of v's canonical bytes.
func Hex(v dcbor.Value) string {
	return hex.EncodeToString(v.Bytes())
}

// noteColor colors the trailing note column when color is enabled
// (fatih/color auto-detects terminal support the same way the example
// pack's kryptco-kr CLI colors its status output).
var noteColor = color.New(color.FgCyan)

// HexAnnotated renders v as one line per leaf/header item: a byte-offset
// gutter, the item's own hex bytes, and a note describing it (its kind,
// length, tag name, or decoded scalar), grounded on
// original_source/src/dump.rs's dump_items walk — reimplemented here over
// ValueWalker instead of a bespoke recursive case match.
func HexAnnotated(v dcbor.Value) string {
	var lines []string
	offset := 0
	w := dcbor.NewValueWalker(v)
	for {
		ev, ok := w.Next()
		if !ok {
			break
		}
		line, consumed := annotateEvent(ev, offset)
		if line != "" {
			lines = append(lines, line)
		}
		offset += consumed
	}
	return strings.Join(lines, "\n")
}

// annotateEvent renders one walk event as a gutter line, and returns how
// many encoded bytes it accounts for so the caller can keep the running
// offset in sync. Leave events close a container but emit no bytes of
// their own (the container's header already accounted for its length).
func annotateEvent(ev dcbor.WalkEvent, offset int) (string, int) {
	indent := strings.Repeat("  ", ev.Depth)
	switch ev.Kind {
	case dcbor.EventScalar:
		b := ev.Value.Bytes()
		note := describeScalar(ev.Value)
		return gutterLine(offset, b, indent, note), len(b)

	case dcbor.EventEnterArray:
		items, _ := ev.Value.AsArray()
		hdr := arrayMapHeader(ev.Value)
		return gutterLine(offset, hdr, indent, fmt.Sprintf("array(%d)", len(items))), len(hdr)

	case dcbor.EventEnterMap:
		m, _ := ev.Value.AsMap()
		hdr := arrayMapHeader(ev.Value)
		return gutterLine(offset, hdr, indent, fmt.Sprintf("map(%d)", m.Len())), len(hdr)

	case dcbor.EventMapKey:
		b := ev.Value.Bytes()
		return gutterLine(offset, b, indent+"  ", "key: "+describeScalar(ev.Value)), len(b)

	case dcbor.EventEnterTag:
		tagVal, _, _ := ev.Value.Tag()
		hdr := tagHeader(ev.Value)
		note := fmt.Sprintf("tag(%d)", tagVal)
		if t, ok := tag.Lookup(tagVal); ok && t.Name != "" {
			note += " " + t.Name
		}
		return gutterLine(offset, hdr, indent, note), len(hdr)

	default: // EventLeaveArray, EventLeaveMap, EventLeaveTag
		return "", 0
	}
}

// arrayMapHeader and tagHeader isolate just the head bytes of a
// container/tag Value (not its children), for the gutter's byte column.
func arrayMapHeader(v dcbor.Value) []byte {
	full := v.Bytes()
	return headOnly(full)
}

func tagHeader(v dcbor.Value) []byte {
	full := v.Bytes()
	return headOnly(full)
}

// headOnly trims a fully-encoded container/tag item down to just its
// initial head bytes, using the same shortest-length table the encoder
// uses: 1, 2, 3, 5, or 9 bytes depending on the first byte's additional
// info.
func headOnly(full []byte) []byte {
	if len(full) == 0 {
		return full
	}
	ai := full[0] & 0x1F
	switch {
	case ai < 24:
		return full[:1]
	case ai == 24:
		return full[:2]
	case ai == 25:
		return full[:3]
	case ai == 26:
		return full[:5]
	default:
		return full[:9]
	}
}

func describeScalar(v dcbor.Value) string {
	switch v.Kind() {
	case dcbor.KindUnsigned:
		n, _ := v.AsUint64()
		return fmt.Sprintf("unsigned(%d)", n)
	case dcbor.KindNegative:
		n, _ := v.AsInt64()
		return fmt.Sprintf("negative(%d)", n)
	case dcbor.KindBytes:
		b, _ := v.AsBytes()
		return fmt.Sprintf("bytes(%d)", len(b))
	case dcbor.KindText:
		s, _ := v.AsText()
		return fmt.Sprintf("text(%q)", s)
	case dcbor.KindSimple:
		return describeSimple(v)
	default:
		return v.Kind().String()
	}
}

func describeSimple(v dcbor.Value) string {
	if v.IsFloat() {
		f, _ := v.AsFloat64()
		return fmt.Sprintf("%v", f)
	}
	if b, err := v.AsBool(); err == nil {
		return fmt.Sprintf("%v", b)
	}
	if v.IsNull() {
		return "null"
	}
	return "simple"
}

func gutterLine(offset int, b []byte, indent, note string) string {
	gutter := fmt.Sprintf("%6d  %-24s", offset, indent+hex.EncodeToString(b))
	if note == "" {
		return gutter
	}
	if color.NoColor {
		return gutter + "# " + note
	}
	return gutter + noteColor.Sprint("# "+note)
}
