package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"pureheart/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits reads from writes. Reservation conflict checks run on
// Write so they see rows committed a moment earlier.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. The returned cleanup closes both.
func New(cfg *config.Config) (*Connection, func()) {
	pg := cfg.DB.Postgres

	conn := &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("attempts", pg.MaxRetry).Msg("Could not connect to database")
	}

	return conn, conn.Close
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

// DSN builds a lib/pq URL for the endpoint. The prefix is prepended to the
// database name; a configured timezone becomes the session timezone.
func DSN(ep config.PostgresEndpoint, prefix string) *url.URL {
	query := url.Values{}

	if ep.SSLMode != "" {
		query.Set("sslmode", ep.SSLMode)
	}

	if ep.Timezone != "" {
		query.Set("timezone", ep.Timezone)
	}

	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, ep.Port),
		Path:     prefix + ep.Name,
		RawQuery: query.Encode(),
	}
}

func connect(name string, dsn *url.URL, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().
		Str("name", name).
		Str("host", dsn.Host).
		Str("dbName", dsn.Path).
		Logger()

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn.String())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
