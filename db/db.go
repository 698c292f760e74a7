// Package db abstracts the two storage backends. The server picks one at
// startup from DB_TYPE; repositories are compiled for both.
package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the lifecycle contract shared by both backends. Connect must verify
// the server is reachable, not just build a client.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
