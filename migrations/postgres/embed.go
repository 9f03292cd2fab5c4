// Package postgres embeds the goose SQL migrations for the Postgres
// attempt store. Pass Files to db.Migrate.
package postgres

import "embed"

//go:embed *.sql
var Files embed.FS
