// Package pdf renders the aggregated shopping list as a downloadable
// document. The stock PDF core fonts are Latin-1 only and silently
// corrupt Cyrillic ingredient names, so a Unicode-capable face is
// embedded in the binary and bound before any layout.
package pdf

import (
	"bytes"
	_ "embed"
	"strconv"

	"github.com/go-pdf/fpdf"
)

//go:embed fonts/DejaVuSans.ttf
var dejaVuSans []byte

const fontFamily = "DejaVuSans"

// Row is one aggregated ingredient line.
type Row struct {
	Name            string
	Amount          int64
	MeasurementUnit string
}

// ShoppingList renders rows as a three-column table: name left-aligned,
// total amount right-aligned, unit left-aligned. An empty input yields
// a single-line placeholder document, not an error.
func ShoppingList(rows []Row) ([]byte, error) {
	doc := newDocument()

	doc.SetFont(fontFamily, "", 16)
	doc.CellFormat(0, 10, "Список покупок", "", 1, "C", false, 0, "")
	doc.Ln(4)

	if len(rows) == 0 {
		doc.SetFont(fontFamily, "", 12)
		doc.CellFormat(0, 8, "Список покупок пуст.", "", 1, "L", false, 0, "")
		return output(doc)
	}

	doc.SetFont(fontFamily, "", 12)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(110, 8, "Ингредиент", "1", 0, "L", true, 0, "")
	doc.CellFormat(35, 8, "Количество", "1", 0, "R", true, 0, "")
	doc.CellFormat(45, 8, "Ед. изм.", "1", 1, "L", true, 0, "")

	for _, row := range rows {
		doc.CellFormat(110, 8, row.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(35, 8, strconv.FormatInt(row.Amount, 10), "1", 0, "R", false, 0, "")
		doc.CellFormat(45, 8, row.MeasurementUnit, "1", 1, "L", false, 0, "")
	}

	return output(doc)
}

// newDocument binds the embedded font to a fresh document. The TTF
// bytes are read once at program start via go:embed; binding is
// per-document state in fpdf and cannot leak across requests.
func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddUTF8FontFromBytes(fontFamily, "", dejaVuSans)
	doc.AddPage()
	return doc
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
