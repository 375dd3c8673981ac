package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFSource extracts the text layer of a PDF document page by page via
// pdfcpu content streams. Pages are joined by a single line break, keeping
// page order; anything the content stream does not encode as text (images,
// vector art) is out of scope.
type PDFSource struct {
	Path string
	Name string
}

func (s *PDFSource) ID() string {
	if s.Name != "" {
		return s.Name
	}
	return filepath.Base(s.Path)
}

func (s *PDFSource) Text(context.Context) (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	pctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("read pdf %s: %w", s.Path, err)
	}

	pages := make([]string, 0, pctx.PageCount)
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
		if err != nil || r == nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		if text := textFromContentStream(data); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("no text content in %s", s.Path)
	}
	return strings.Join(pages, "\n"), nil
}

var pdfStringLiteral = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// textFromContentStream walks the page's operators and collects the string
// arguments of the text-showing ones. Positioning operators become
// whitespace so words on separate lines do not run together.
func textFromContentStream(data []byte) string {
	var b strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				b.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			b.WriteByte('\n')
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				b.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			b.WriteByte('\n')
		}
	}
	return strings.TrimSpace(b.String())
}

// decodePDFString resolves the escape sequences PDF string literals allow:
// backslashed delimiters, the usual control shorthands, and octal codes.
func decodePDFString(raw []byte) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b', 'f':
			// backspace and form feed carry no text
		case '(', ')', '\\':
			b.WriteByte(raw[i])
		case '0', '1', '2', '3', '4', '5', '6', '7':
			end := i
			for end < len(raw) && end-i < 3 && raw[end] >= '0' && raw[end] <= '7' {
				end++
			}
			if v, err := strconv.ParseUint(string(raw[i:end]), 8, 16); err == nil {
				b.WriteRune(rune(v))
			}
			i = end - 1
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
