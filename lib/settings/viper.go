package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	title            = "title"
	ip               = "ip"
	port             = "port"
	logLevel         = "loglevel"
	defaultPageTitle = "defaultPageTitle"
	dbType           = "dbType"
	dbFilename       = "dbSettings.filename"
	dbHost           = "dbSettings.host"
	dbPort           = "dbSettings.port"
	dbDatabase       = "dbSettings.database"
	dbUser           = "dbSettings.user"
	dbPassword       = "dbSettings.password"
	maxWSMessageSize = "maxWSMessageSize"
)

// ReadConfig loads settings from settings.json in the working directory,
// overridable through PAGES_-prefixed environment variables. A missing config
// file falls back to defaults.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pages")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
		}
	}

	viper.SetDefault(title, "Pages")
	viper.SetDefault(ip, "0.0.0.0")
	viper.SetDefault(port, "9002")
	viper.SetDefault(logLevel, "INFO")
	viper.SetDefault(defaultPageTitle, "Untitled page")
	viper.SetDefault(dbType, string(MEMORY))
	viper.SetDefault(dbFilename, "var/pages.db")
	viper.SetDefault(maxWSMessageSize, 50000)

	dbTypeToUse, err := ParseDBType(viper.GetString(dbType))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Title:            viper.GetString(title),
		IP:               viper.GetString(ip),
		Port:             viper.GetString(port),
		LogLevel:         viper.GetString(logLevel),
		DefaultPageTitle: viper.GetString(defaultPageTitle),
		DBType:           dbTypeToUse,
		DBSettings: DBSettings{
			Filename: viper.GetString(dbFilename),
			Host:     viper.GetString(dbHost),
			Port:     viper.GetString(dbPort),
			Database: viper.GetString(dbDatabase),
			User:     viper.GetString(dbUser),
			Password: viper.GetString(dbPassword),
		},
		MaxWSMessageSize: viper.GetInt64(maxWSMessageSize),
	}, nil
}
