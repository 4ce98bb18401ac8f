// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts the plain text of a PDF file. A document that cannot be
// opened or parsed yields an error the batch treats as a DocumentError.
func PDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var out []byte
	totalPage := reader.NumPage()
	for i := 1; i <= totalPage; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i, err)
		}
		out = append(out, text...)
	}

	if len(out) == 0 {
		return "", fmt.Errorf("no extractable text")
	}

	return string(out), nil
}
