package page

import (
	table2 "github.com/pagecraft/pages-go/lib/models/table"
)

type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockTable     BlockType = "table"
)

// Block is one element of a page's content. Only the shape needed to host
// tables is modeled here; rich-text concerns stay with the host editor.
type Block struct {
	Type  BlockType     `json:"type"`
	Text  string        `json:"text,omitempty"`
	Table *table2.Table `json:"table,omitempty"`
}

// Page is a document made of blocks.
type Page struct {
	Id        string
	Title     string
	Blocks    []Block
	CreatedAt int64
	UpdatedAt int64
}

// Tables returns the page's table blocks with their block indices. The block
// index doubles as the table's opaque position handle within the page.
func (p *Page) Tables() map[int]*table2.Table {
	tables := make(map[int]*table2.Table)
	for i := range p.Blocks {
		if p.Blocks[i].Type == BlockTable && p.Blocks[i].Table != nil {
			tables[i] = p.Blocks[i].Table
		}
	}
	return tables
}

// TableAt returns the table hosted by the given block index.
func (p *Page) TableAt(blockIndex int) (*table2.Table, bool) {
	if blockIndex < 0 || blockIndex >= len(p.Blocks) {
		return nil, false
	}
	block := &p.Blocks[blockIndex]
	if block.Type != BlockTable || block.Table == nil {
		return nil, false
	}
	return block.Table, true
}
