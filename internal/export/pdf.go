package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/quizextract/internal/question"
)

// WriteQuizPDF renders the questions as a printable quiz: numbered
// questions with lettered options, followed by an answer key on its own
// page. Records are rendered in the order given, so callers shuffle
// beforehand if they want a randomized sheet.
func WriteQuizPDF(title string, records []question.Record, outPath string) error {
	if len(records) == 0 {
		return fmt.Errorf("no questions to render")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
	}

	for i, rec := range records {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, rec.Question), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for _, letter := range []string{"A", "B", "C", "D"} {
			pdf.MultiCell(0, 5, fmt.Sprintf("   %s) %s", letter, rec.OptionText(letter)), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Answer Key", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	for i, rec := range records {
		pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s", i+1, rec.Answer), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
