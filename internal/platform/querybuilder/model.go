package querybuilder

import (
	"errors"
	"reflect"
	"slices"
	"strings"
)

// InsertModel inserts every db-tagged field of model as one row.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

// UpdateModel sets every db-tagged column of model except the ones listed in
// skip, restricted by conditions.
func UpdateModel(table string, model any, skip []string, conditions ...Condition) (string, []any, error) {
	cols, vals, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	for i, col := range cols {
		if slices.Contains(skip, col) {
			continue
		}
		b.Set(col, vals[i])
	}
	return b.Where(conditions...).ToSQL()
}

// Columns lists the db-tagged columns of model in field order. It returns
// nil when model is not a struct.
func Columns(model any) []string {
	cols, _, err := modelFields(model)
	if err != nil {
		return nil
	}
	return cols
}

func modelFields(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, errors.New("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, errors.New("model must be struct")
	}

	var (
		cols []string
		vals []any
	)
	for _, f := range reflect.VisibleFields(v.Type()) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.FieldByIndex(f.Index).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}
	return cols, vals, nil
}
