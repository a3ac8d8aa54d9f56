package db

import (
	page2 "github.com/pagecraft/pages-go/lib/models/page"
)

// PageDB is the persisted form of a page. The formula string attribute on a
// table cell travels inside the serialized block tree; it is the only wire
// format the formula subsystem owns.
type PageDB struct {
	Id        string        `json:"id"`
	Title     string        `json:"title"`
	Blocks    []page2.Block `json:"blocks"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
}
