package database

import "time"

// Config describes how to reach postgres. URL-style settings take precedence over
// the discrete fields, in the order Conn, DatabaseURL, JDBCURL.
type Config struct {
	Conn        string
	DatabaseURL string
	JDBCURL     string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	TimeZone    string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
