package errors

import (
	"reflect"
	"strings"
)

// JSONFieldName makes validator report fields by their json name.
// Register it with validator.Validate.RegisterTagNameFunc.
func JSONFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
