package utils

import (
	"fmt"
	"reflect"
)

var ColumnTag = "db"

// StructTagValues returns the column tag values of a struct's exported
// fields, in declaration order. Used to build SELECT column lists.
func StructTagValues(input any) []string {
	var result []string
	eachTaggedField(input, func(tag string, _ reflect.Value) {
		result = append(result, tag)
	})
	return result
}

// StructToMap flattens a struct into a column-to-value map for INSERT and
// UPDATE statements.
func StructToMap(input any) map[string]any {
	result := make(map[string]any)
	eachTaggedField(input, func(tag string, field reflect.Value) {
		result[tag] = field.Interface()
	})
	return result
}

func eachTaggedField(input any, fn func(tag string, field reflect.Value)) {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue
		}

		tag := t.Field(i).Tag.Get(ColumnTag)
		if tag == "" || tag == "-" {
			continue
		}

		fn(tag, v.Field(i))
	}
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
