package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// jsonColumn stores V as a jsonb value. An invalid column is written as NULL.
type jsonColumn[T any] struct {
	V     T
	Valid bool
}

func newJSONColumn[T any](v T) jsonColumn[T] {
	return jsonColumn[T]{V: v, Valid: true}
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	raw, err := sonic.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return raw, nil
}

func (c *jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = jsonColumn[T]{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan json column: unsupported type %T", src)
	}

	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	*c = jsonColumn[T]{V: out, Valid: true}
	return nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
