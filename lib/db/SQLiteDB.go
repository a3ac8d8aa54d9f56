package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/pagecraft/pages-go/lib/exception"
	db2 "github.com/pagecraft/pages-go/lib/models/db"
)

const pagePrefix = "page:%s"

type SQLiteDB struct {
	path  string
	sqlDB *sql.DB
}

func NewSQLiteDB(path string) (DataStore, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, exception.NewDatabaseError("opening sqlite database", err)
	}

	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS page (id TEXT PRIMARY KEY, data TEXT NOT NULL)`); err != nil {
		return nil, exception.NewDatabaseError("creating page table", err)
	}

	return &SQLiteDB{path: path, sqlDB: sqlDB}, nil
}

func (d *SQLiteDB) DoesPageExist(pageID string) bool {
	createdSQL, args, err := sq.
		Select("id").
		From("page").
		Where(sq.Eq{"id": fmt.Sprintf(pagePrefix, pageID)}).
		ToSql()
	if err != nil {
		panic(err)
	}

	rows, err := d.sqlDB.Query(createdSQL, args...)
	if err != nil {
		return false
	}
	defer rows.Close()
	return rows.Next()
}

func (d *SQLiteDB) SavePage(page db2.PageDB) error {
	marshalled, err := json.Marshal(page)
	if err != nil {
		return exception.NewDatabaseError("marshalling page", err)
	}

	key := fmt.Sprintf(pagePrefix, page.Id)

	var createdSQL string
	var args []interface{}
	if d.DoesPageExist(page.Id) {
		createdSQL, args, err = sq.
			Update("page").
			Set("data", string(marshalled)).
			Where(sq.Eq{"id": key}).
			ToSql()
	} else {
		createdSQL, args, err = sq.
			Insert("page").
			Columns("id", "data").
			Values(key, string(marshalled)).
			ToSql()
	}
	if err != nil {
		panic(err)
	}

	if _, err := d.sqlDB.Exec(createdSQL, args...); err != nil {
		return exception.NewDatabaseError("saving page", err)
	}
	return nil
}

func (d *SQLiteDB) GetPage(pageID string) (*db2.PageDB, error) {
	createdSQL, args, err := sq.
		Select("data").
		From("page").
		Where(sq.Eq{"id": fmt.Sprintf(pagePrefix, pageID)}).
		ToSql()
	if err != nil {
		panic(err)
	}

	rows, err := d.sqlDB.Query(createdSQL, args...)
	if err != nil {
		return nil, exception.NewDatabaseError("querying page", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, exception.NewPageNotFoundError(pageID)
	}

	var data string
	if err := rows.Scan(&data); err != nil {
		return nil, exception.NewDatabaseError("scanning page row", err)
	}

	var page db2.PageDB
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		return nil, exception.NewDatabaseError("unmarshalling page", err)
	}
	return &page, nil
}

func (d *SQLiteDB) RemovePage(pageID string) error {
	if !d.DoesPageExist(pageID) {
		return exception.NewPageNotFoundError(pageID)
	}

	createdSQL, args, err := sq.
		Delete("page").
		Where(sq.Eq{"id": fmt.Sprintf(pagePrefix, pageID)}).
		ToSql()
	if err != nil {
		panic(err)
	}

	if _, err := d.sqlDB.Exec(createdSQL, args...); err != nil {
		return exception.NewDatabaseError("removing page", err)
	}
	return nil
}

func (d *SQLiteDB) GetPageIds() []string {
	createdSQL, args, err := sq.Select("id").From("page").ToSql()
	if err != nil {
		panic(err)
	}

	rows, err := d.sqlDB.Query(createdSQL, args...)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var pageIds []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		pageIds = append(pageIds, strings.TrimPrefix(id, "page:"))
	}
	return pageIds
}

func (d *SQLiteDB) Ping() error {
	return d.sqlDB.Ping()
}
