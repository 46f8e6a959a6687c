// Package validate runs struct-tag validation and reports offending fields by
// their JSON names.
package validate

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error lists every offending field, sorted.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return v
}

// Fields returns the JSON names of the fields of s that fail their tags.
func Fields(s any) ([]string, error) {
	err := instance().Struct(s)
	if err == nil {
		return nil, nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, err
	}
	out := make([]string, 0, len(ves))
	for _, fe := range ves {
		out = append(out, fe.Field())
	}
	return out, nil
}

// Struct validates s and returns an *Error naming every bad field.
func Struct(s any) error {
	fields, err := Fields(s)
	if err != nil {
		return err
	}
	return New(fields...)
}

// New builds an *Error from field names, deduplicated and sorted; nil when
// there are none.
func New(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return &Error{Fields: out}
}
