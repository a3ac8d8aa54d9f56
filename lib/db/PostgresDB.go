package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/pagecraft/pages-go/lib/exception"
	db2 "github.com/pagecraft/pages-go/lib/models/db"
)

type PostgresOptions struct {
	Username string
	Password string
	Host     string
	Database string
	Port     int
}

type PostgresDB struct {
	sqlDB *sql.DB
	psql  sq.StatementBuilderType
}

func NewPostgresDB(options PostgresOptions) (DataStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		options.Host, options.Port, options.Username, options.Password, options.Database)

	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, exception.NewDatabaseError("opening postgres database", err)
	}

	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS page (id TEXT PRIMARY KEY, data TEXT NOT NULL)`); err != nil {
		return nil, exception.NewDatabaseError("creating page table", err)
	}

	return &PostgresDB{
		sqlDB: sqlDB,
		psql:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func (d *PostgresDB) DoesPageExist(pageID string) bool {
	createdSQL, args, err := d.psql.
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

func (d *PostgresDB) SavePage(page db2.PageDB) error {
	marshalled, err := json.Marshal(page)
	if err != nil {
		return exception.NewDatabaseError("marshalling page", err)
	}

	createdSQL, args, err := d.psql.
		Insert("page").
		Columns("id", "data").
		Values(fmt.Sprintf(pagePrefix, page.Id), string(marshalled)).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data").
		ToSql()
	if err != nil {
		panic(err)
	}

	if _, err := d.sqlDB.Exec(createdSQL, args...); err != nil {
		return exception.NewDatabaseError("saving page", err)
	}
	return nil
}

func (d *PostgresDB) GetPage(pageID string) (*db2.PageDB, error) {
	createdSQL, args, err := d.psql.
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

func (d *PostgresDB) RemovePage(pageID string) error {
	if !d.DoesPageExist(pageID) {
		return exception.NewPageNotFoundError(pageID)
	}

	createdSQL, args, err := d.psql.
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

func (d *PostgresDB) GetPageIds() []string {
	createdSQL, args, err := d.psql.Select("id").From("page").ToSql()
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

func (d *PostgresDB) Ping() error {
	return d.sqlDB.Ping()
}
