// Package env reads and writes the runtime .env file.
package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var errNotStructPtr = errors.New("env: expected a pointer to a struct")

// Values collects the set fields of the struct c points to, keyed by the
// name in their env tag. Zero values are left out so defaults still apply
// when the result is loaded back.
func Values(c any) (map[string]string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, errNotStructPtr
	}
	v = v.Elem()

	t := v.Type()
	out := make(map[string]string)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		val := v.Field(i)
		if key == "" || val.IsZero() {
			continue
		}
		out[key] = formatValue(val)
	}
	return out, nil
}

// MarshalEnv renders Values as sorted .env lines.
func MarshalEnv(c any) (string, error) {
	values, err := Values(c)
	if err != nil || len(values) == 0 {
		return "", err
	}
	content, err := godotenv.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal env: %w", err)
	}
	return content + "\n", nil
}

func formatValue(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
