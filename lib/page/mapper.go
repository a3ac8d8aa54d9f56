package page

import (
	db2 "github.com/pagecraft/pages-go/lib/models/db"
	page2 "github.com/pagecraft/pages-go/lib/models/page"
)

func mapDBPageToModel(dbPage *db2.PageDB) *page2.Page {
	return &page2.Page{
		Id:        dbPage.Id,
		Title:     dbPage.Title,
		Blocks:    dbPage.Blocks,
		CreatedAt: dbPage.CreatedAt,
		UpdatedAt: dbPage.UpdatedAt,
	}
}

func mapModelToDBPage(p *page2.Page) db2.PageDB {
	return db2.PageDB{
		Id:        p.Id,
		Title:     p.Title,
		Blocks:    p.Blocks,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
