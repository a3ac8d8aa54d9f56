package page

import (
	"strings"

	page2 "github.com/pagecraft/pages-go/lib/models/page"
)

// GetTxtFromPage renders a page as plain text. Table cells use their display
// values (computed results for formula cells), separated by tabs.
func GetTxtFromPage(p *page2.Page) string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteString("\n\n")

	for _, block := range p.Blocks {
		switch block.Type {
		case page2.BlockParagraph:
			sb.WriteString(block.Text)
			sb.WriteString("\n")
		case page2.BlockTable:
			if block.Table == nil {
				continue
			}
			for _, row := range block.Table.Rows {
				values := make([]string, len(row.Cells))
				for i, cell := range row.Cells {
					values[i] = cell.Value
				}
				sb.WriteString(strings.Join(values, "\t"))
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
