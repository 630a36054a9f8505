package db

// DB is a generic database port that allows swapping
// GORM, sqlc, pgx or an in-memory DB behind the repositories.
type DB interface {
	Conn() any
}
