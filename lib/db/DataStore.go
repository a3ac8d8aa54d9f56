package db

import (
	db2 "github.com/pagecraft/pages-go/lib/models/db"
)

type PageMethods interface {
	DoesPageExist(pageID string) bool
	SavePage(page db2.PageDB) error
	GetPage(pageID string) (*db2.PageDB, error)
	RemovePage(pageID string) error
	GetPageIds() []string
}

type DataStore interface {
	PageMethods
	Ping() error
}
