package settings

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

type Settings struct {
	Title            string
	IP               string
	Port             string
	LogLevel         string
	DefaultPageTitle string

	DBType     DatabaseType
	DBSettings DBSettings

	// MaxWSMessageSize bounds inbound websocket messages.
	MaxWSMessageSize int64
}
