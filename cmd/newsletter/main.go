package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	appservice "newsletter/pkg/application/service"
	"newsletter/pkg/domain/model"
	"newsletter/pkg/infrastructure/event"
	"newsletter/pkg/infrastructure/mysql"
	"newsletter/pkg/infrastructure/sender"
	"newsletter/pkg/infrastructure/source"
)

const appID = "newsletter"

func main() {
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:   appID,
		Usage:  "send email and push notifications to every eligible user once",
		Action: send,
		Commands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "run every configured channel over the user source",
				Action: send,
			},
			{
				Name:   "migrate",
				Usage:  "apply the mysql user source schema",
				Action: migrateDB,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("newsletter failed")
		os.Exit(1)
	}
}

func send(c *cli.Context) error {
	conf, err := parseEnv()
	if err != nil {
		return err
	}
	if err := initLogger(conf); err != nil {
		return err
	}

	users, closer, err := newUserSource(conf)
	if err != nil {
		return err
	}
	defer closer.Close()

	newsletter, err := appservice.NewNewsletterService(
		users,
		sender.NewConsoleSender(os.Stdout),
		event.NewLogDispatcher(log.StandardLogger()),
		appservice.Settings{
			Channels:        conf.Channels,
			DeviceIDPattern: conf.DeviceIDPattern,
		},
	)
	if err != nil {
		return err
	}

	kinds := make([]string, 0, len(newsletter.Channels()))
	for _, channel := range newsletter.Channels() {
		kinds = append(kinds, channel.Kind().String())
	}
	log.WithField("channels", kinds).Debug("channels configured")

	reports, err := newsletter.Run(c.Context)
	for _, report := range reports {
		log.WithFields(log.Fields{
			"channel":           report.Channel.String(),
			"sent":              report.Sent,
			"skipped_no_name":   report.SkippedNoName,
			"skipped_invalid":   report.SkippedInvalid,
			"skipped_duplicate": report.SkippedDuplicate,
			"failed":            report.Failed,
		}).Info("channel finished")
	}
	return err
}

func migrateDB(_ *cli.Context) error {
	conf, err := parseEnv()
	if err != nil {
		return err
	}
	if err := initLogger(conf); err != nil {
		return err
	}
	if conf.MySQLDSN == "" {
		return errors.New("NEWSLETTER_MYSQL_DSN is required")
	}

	if err := mysql.Migrate(conf.MySQLDSN); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newUserSource(conf *config) (model.UserSource, io.Closer, error) {
	switch conf.Source {
	case sourceStatic:
		return source.NewDefaultUserSource(), nopCloser{}, nil
	case sourceFile:
		if conf.UsersFile == "" {
			return nil, nil, errors.New("NEWSLETTER_USERS_FILE is required for the file source")
		}
		users, err := source.NewFileUserSource(conf.UsersFile)
		if err != nil {
			return nil, nil, err
		}
		return users, nopCloser{}, nil
	case sourceMySQL:
		if conf.MySQLDSN == "" {
			return nil, nil, errors.New("NEWSLETTER_MYSQL_DSN is required for the mysql source")
		}
		db, err := mysql.Open(conf.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return mysql.NewUserSource(db), db, nil
	default:
		return nil, nil, errors.Errorf("unknown user source %q", conf.Source)
	}
}
