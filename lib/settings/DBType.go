package settings

import "errors"

type DatabaseType string

const (
	SQLITE   DatabaseType = "sqlite"
	POSTGRES DatabaseType = "postgres"
	MEMORY   DatabaseType = "memory"
)

func ParseDBType(raw string) (DatabaseType, error) {
	switch DatabaseType(raw) {
	case SQLITE, POSTGRES, MEMORY:
		return DatabaseType(raw), nil
	}
	return "", errors.New("unsupported database type: " + raw)
}
