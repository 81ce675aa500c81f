package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	sourceStatic = "static"
	sourceFile   = "file"
	sourceMySQL  = "mysql"
)

type config struct {
	Source          string   `envconfig:"source" default:"static"`
	UsersFile       string   `envconfig:"users_file"`
	MySQLDSN        string   `envconfig:"mysql_dsn"`
	Channels        []string `envconfig:"channels" default:"email,push"`
	DeviceIDPattern string   `envconfig:"device_id_pattern" default:"^[A-Za-z0-9]+$"`
	LogLevel        string   `envconfig:"log_level" default:"info"`
	LogFormat       string   `envconfig:"log_format" default:"text"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

func initLogger(c *config) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{})
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
