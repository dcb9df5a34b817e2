package storage

import (
	"reflect"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Storage {
	return &Storage{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Storage) stmpBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// fields возвращает список всех полей структуры, которые есть в БД.
func fields(data any) string {
	var s string
	r := reflect.TypeOf(data)
	for i := 0; i < r.NumField(); i++ {
		tag := r.Field(i).Tag.Get("db")
		if tag != "" {
			s += tag + ","
		}
	}
	return s[:len(s)-1]
}
