package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lib/pq"
)

var ErrNoDSN = errors.New("no postgres connection settings provided")

// BuildDSN returns a key/value connection string understood by the postgres driver.
func BuildDSN(config *Config) (string, error) {
	switch {
	case config.Conn != "":
		return fromURL(config.Conn, config)
	case config.DatabaseURL != "":
		return fromURL(config.DatabaseURL, config)
	case config.JDBCURL != "":
		return fromJDBC(config.JDBCURL, config)
	case config.Host != "":
		return withDefaults(keyValues(
			"host", config.Host,
			"port", config.Port,
			"user", config.User,
			"password", config.Password,
			"dbname", config.DBName,
		), config), nil
	}
	return "", ErrNoDSN
}

func fromJDBC(raw string, config *Config) (string, error) {
	u, err := url.Parse(strings.TrimPrefix(raw, "jdbc:"))
	if err != nil {
		return "", fmt.Errorf("parse jdbc url: %w", err)
	}
	q := u.Query()
	user, password := q.Get("user"), q.Get("password")
	q.Del("user")
	q.Del("password")
	u.RawQuery = q.Encode()
	if u.User == nil {
		if user == "" {
			user = config.User
		}
		if password == "" {
			password = config.Password
		}
		if user != "" {
			u.User = url.UserPassword(user, password)
		}
	}
	return fromURL(u.String(), config)
}

func fromURL(raw string, config *Config) (string, error) {
	if !strings.Contains(raw, "://") {
		// already a key/value DSN
		return withDefaults(raw, config), nil
	}
	if strings.HasPrefix(raw, "postgresql+") {
		// SQLAlchemy-style scheme, e.g. postgresql+psycopg2://
		raw = "postgresql" + raw[strings.Index(raw, "://"):]
	}
	dsn, err := pq.ParseURL(raw)
	if err != nil {
		return "", fmt.Errorf("parse postgres url: %w", err)
	}
	return withDefaults(dsn, config), nil
}

func withDefaults(dsn string, config *Config) string {
	if !strings.Contains(dsn, "sslmode=") && config.SSLMode != "" {
		dsn += " " + keyValues("sslmode", config.SSLMode)
	}
	if !strings.Contains(dsn, "TimeZone=") && config.TimeZone != "" {
		dsn += " " + keyValues("TimeZone", config.TimeZone)
	}
	return dsn
}

var escaper = strings.NewReplacer(`'`, `\'`, `\`, `\\`)

// keyValues renders pairs the same way pq.ParseURL does; empty values are skipped.
func keyValues(pairs ...string) string {
	kvs := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		kvs = append(kvs, pairs[i]+"='"+escaper.Replace(pairs[i+1])+"'")
	}
	return strings.Join(kvs, " ")
}
