package instructions

import (
	"strconv"
	"strings"

	"github.com/Manu343726/isagen/pkg/utils"
)

// Contiguous bit range of an instruction word shown in encoding diagrams
type LayoutField struct {
	// Operand bits (e.g. "rd[4:0]") or fixed bit values (e.g. "0110011")
	Name  string
	Begin int
	Width int
}

// Most significant bit of the field
func (f LayoutField) Top() int {
	return f.Begin + f.Width - 1
}

func (f LayoutField) cellWidth() int {
	top := strconv.Itoa(f.Top())

	if f.Width == 1 {
		return max(len(f.Name), len(top)) + 2
	}

	return max(len(f.Name)+2, len(top)+len(strconv.Itoa(f.Begin))+3)
}

// Bit indices drawn above the field cell: "31   25" for ranges, the bit alone for single bit fields
func (f LayoutField) indices(cellWidth int) string {
	top := strconv.Itoa(f.Top())

	if f.Width == 1 {
		return center(top, cellWidth)
	}

	begin := strconv.Itoa(f.Begin)
	return " " + top + strings.Repeat(" ", cellWidth-len(top)-len(begin)-2) + begin + " "
}

func center(text string, width int) string {
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}

// Adds blank fields covering the bits of the word no field covers
func fillLayoutGaps(fields []LayoutField, width int) ([]LayoutField, error) {
	result := make([]LayoutField, 0, len(fields)+1)
	next := 0

	for _, field := range fields {
		switch {
		case field.Width <= 0:
			return nil, utils.MakeError(ErrInvalidLayout, "field '%v' is %v bits wide", field.Name, field.Width)
		case field.Begin < next:
			return nil, utils.MakeError(ErrInvalidLayout, "field '%v' begins at bit %v, overlapping the previous field (fields must be sorted by position)", field.Name, field.Begin)
		case field.Begin > next:
			result = append(result, LayoutField{Begin: next, Width: field.Begin - next})
		}

		result = append(result, field)
		next = field.Begin + field.Width
	}

	if next > width {
		return nil, utils.MakeError(ErrInvalidLayout, "fields cover %v bits of a %v bit word", next, width)
	}

	if next < width {
		result = append(result, LayoutField{Begin: next, Width: width - next})
	}

	return result, nil
}

// Draws the encoding of an instruction word, most significant bit first:
//
//	  31   25   24    20   19    15   14 12   11    7   6     0
//	+---------+----------+----------+-------+---------+---------+
//	| 0000000 | rs2[4:0] | rs1[4:0] |  000  | rd[4:0] | 0110011 |
//	+---------+----------+----------+-------+---------+---------+
//
// Fields must be sorted by position and must not overlap. Bits not covered by any field are drawn as blank cells
func EncodingDiagram(fields []LayoutField, width int, leftpad int) (string, error) {
	cells, err := fillLayoutGaps(fields, width)
	if err != nil {
		return "", err
	}

	var indices, border, names strings.Builder

	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		cellWidth := cell.cellWidth()

		indices.WriteString(" " + cell.indices(cellWidth))
		border.WriteString("+" + strings.Repeat("-", cellWidth))
		names.WriteString("|" + center(cell.Name, cellWidth))
	}

	border.WriteString("+")
	names.WriteString("|")

	var result strings.Builder
	pad := strings.Repeat(" ", leftpad)

	for _, row := range []string{strings.TrimRight(indices.String(), " "), border.String(), names.String(), border.String()} {
		result.WriteString(pad)
		result.WriteString(row)
		result.WriteString("\n")
	}

	return result.String(), nil
}
