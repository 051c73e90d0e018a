package contur

import (
	"bytes"
	"io"
	"strconv"

	"github.com/esimov/contur/utils"
)

// DefaultLayer is the layer name the line entities are placed on.
const DefaultLayer = "OUTLINE"

// segmentEpsilon is the length below which a segment counts as
// degenerate and is dropped instead of emitted. Some CAD consumers
// reject zero length entities outright.
const segmentEpsilon = 1e-4

// Line is a single straight line entity with both endpoints on the
// Z = 0 plane.
type Line struct {
	A, B Point
}

// Document accumulates line entities and serializes them as a minimal
// R12 (AC1009) DXF file: header, symbol tables, the two block
// definitions the format requires, and the entities section. Only the
// entities depend on the input, the rest is fixed scaffolding, so the
// output is byte for byte deterministic for a given polygon. Header
// units are declared as millimetres. A document is write once: build
// it up with AddPolygon, then serialize with Bytes or WriteTo.
type Document struct {
	Layer string
	lines []Line
}

// NewDocument returns an empty document drawing on the default layer.
func NewDocument() *Document {
	return &Document{Layer: DefaultLayer}
}

// EncodeDXF is a shorthand serializing a single polygon into a DXF
// document with default settings.
func EncodeDXF(poly Polygon) []byte {
	doc := NewDocument()
	doc.AddPolygon(poly)
	return doc.Bytes()
}

// AddPolygon appends one line entity per consecutive point pair, plus
// a closing entity back to the first point unless the endpoints
// already coincide. Degenerate segments are silently dropped. An
// empty polygon adds nothing: the document still serializes to a
// valid, entity-free file.
func (d *Document) AddPolygon(poly Polygon) {
	if len(poly) < 2 {
		return
	}
	for i := 0; i < len(poly)-1; i++ {
		d.addLine(poly[i], poly[i+1])
	}
	d.addLine(poly[len(poly)-1], poly[0])
}

// Lines returns the accumulated line entities.
func (d *Document) Lines() []Line {
	return d.lines
}

func (d *Document) addLine(a, b Point) {
	if a.Distance(b) < segmentEpsilon {
		return
	}
	d.lines = append(d.lines, Line{A: a, B: b})
}

// Bytes serializes the document. Lines are terminated with CRLF as
// the format prescribes.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.writeHeader(&buf)
	d.writeTables(&buf)
	d.writeBlocks(&buf)
	d.writeEntities(&buf)
	writeTag(&buf, 0, "EOF")
	return buf.Bytes()
}

// WriteTo writes the serialized document to w, implementing
// io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

func (d *Document) writeHeader(buf *bytes.Buffer) {
	min, max := d.extents()

	writeTag(buf, 0, "SECTION")
	writeTag(buf, 2, "HEADER")
	writeTag(buf, 9, "$ACADVER")
	writeTag(buf, 1, "AC1009")
	// Unit declaration: 4 selects millimetres, 1 selects metric.
	writeTag(buf, 9, "$INSUNITS")
	writeTag(buf, 70, "4")
	writeTag(buf, 9, "$MEASUREMENT")
	writeTag(buf, 70, "1")
	writeTag(buf, 9, "$EXTMIN")
	writeTag(buf, 10, formatCoord(min.X))
	writeTag(buf, 20, formatCoord(min.Y))
	writeTag(buf, 30, formatCoord(0))
	writeTag(buf, 9, "$EXTMAX")
	writeTag(buf, 10, formatCoord(max.X))
	writeTag(buf, 20, formatCoord(max.Y))
	writeTag(buf, 30, formatCoord(0))
	writeTag(buf, 0, "ENDSEC")
}

func (d *Document) writeTables(buf *bytes.Buffer) {
	writeTag(buf, 0, "SECTION")
	writeTag(buf, 2, "TABLES")

	writeTag(buf, 0, "TABLE")
	writeTag(buf, 2, "LTYPE")
	writeTag(buf, 70, "1")
	writeTag(buf, 0, "LTYPE")
	writeTag(buf, 2, "CONTINUOUS")
	writeTag(buf, 70, "64")
	writeTag(buf, 3, "Solid line")
	writeTag(buf, 72, "65")
	writeTag(buf, 73, "0")
	writeTag(buf, 40, formatCoord(0))
	writeTag(buf, 0, "ENDTAB")

	writeTag(buf, 0, "TABLE")
	writeTag(buf, 2, "LAYER")
	writeTag(buf, 70, "1")
	writeTag(buf, 0, "LAYER")
	writeTag(buf, 2, d.Layer)
	writeTag(buf, 70, "64")
	writeTag(buf, 62, "7")
	writeTag(buf, 6, "CONTINUOUS")
	writeTag(buf, 0, "ENDTAB")

	writeTag(buf, 0, "ENDSEC")
}

func (d *Document) writeBlocks(buf *bytes.Buffer) {
	writeTag(buf, 0, "SECTION")
	writeTag(buf, 2, "BLOCKS")
	writeBlock(buf, "$MODEL_SPACE")
	writeBlock(buf, "$PAPER_SPACE")
	writeTag(buf, 0, "ENDSEC")
}

func (d *Document) writeEntities(buf *bytes.Buffer) {
	writeTag(buf, 0, "SECTION")
	writeTag(buf, 2, "ENTITIES")
	for _, ln := range d.lines {
		writeTag(buf, 0, "LINE")
		writeTag(buf, 8, d.Layer)
		writeTag(buf, 10, formatCoord(ln.A.X))
		writeTag(buf, 20, formatCoord(ln.A.Y))
		writeTag(buf, 30, formatCoord(0))
		writeTag(buf, 11, formatCoord(ln.B.X))
		writeTag(buf, 21, formatCoord(ln.B.Y))
		writeTag(buf, 31, formatCoord(0))
	}
	writeTag(buf, 0, "ENDSEC")
}

// extents returns the bounding box over every line endpoint, or zero
// points for an empty document.
func (d *Document) extents() (min, max Point) {
	if len(d.lines) == 0 {
		return Point{}, Point{}
	}
	min, max = d.lines[0].A, d.lines[0].A
	for _, ln := range d.lines {
		for _, pt := range [2]Point{ln.A, ln.B} {
			min.X = utils.Min(min.X, pt.X)
			min.Y = utils.Min(min.Y, pt.Y)
			max.X = utils.Max(max.X, pt.X)
			max.Y = utils.Max(max.Y, pt.Y)
		}
	}
	return min, max
}

// writeBlock emits one empty block definition on layer 0.
func writeBlock(buf *bytes.Buffer, name string) {
	writeTag(buf, 0, "BLOCK")
	writeTag(buf, 8, "0")
	writeTag(buf, 2, name)
	writeTag(buf, 70, "0")
	writeTag(buf, 10, formatCoord(0))
	writeTag(buf, 20, formatCoord(0))
	writeTag(buf, 30, formatCoord(0))
	writeTag(buf, 3, name)
	writeTag(buf, 0, "ENDBLK")
}

// writeTag emits one group code and value pair.
func writeTag(buf *bytes.Buffer, code int, value string) {
	buf.WriteString(strconv.Itoa(code))
	buf.WriteString("\r\n")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

// formatCoord renders a coordinate with four decimals, enough to hold
// sub micrometre precision at millimetre scale.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
