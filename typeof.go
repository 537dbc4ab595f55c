// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bytebuf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// typeName classifies a dynamic value using the vocabulary the error
// messages speak: number, string, boolean, function, object, or undefined
// for nil.  Named types are classified by their underlying kind.
func typeName(v any) string {
	if v == nil {
		return "undefined"
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// isNumber reports whether v is of a numeric kind, named numeric types
// included.
func isNumber(v any) bool {
	return v != nil && typeName(v) == "number"
}

// numberLiteral renders a numeric value as its decimal literal, the way it
// would have been written at the call site.  Floats drop a trailing ".0" so
// integral values read as integers.
func numberLiteral(v any) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isIntegral reports whether a numeric value carries no fractional part.
func isIntegral(v any) bool {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()

		return f == float64(int64(f))
	default:
		return true
	}
}

// asInt converts any numeric value to an int.  The value must have been
// checked with isNumber and isIntegral first.
func asInt(v any) int {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return int(rv.Float())
	default:
		return int(rv.Int())
	}
}

const inspectTextLimit = 25

// received renders the "Received ..." clause of an argument type complaint.
func received(v any) string {
	switch typeName(v) {
	case "undefined":
		return "undefined"
	case "number":
		return "type number (" + numberLiteral(v) + ")"
	case "string":
		return "type string (" + inspectText(reflect.ValueOf(v).String()) + ")"
	case "boolean":
		return fmt.Sprintf("type boolean (%v)", reflect.ValueOf(v).Bool())
	case "function":
		return "type function"
	default:
		return "an instance of " + reflect.TypeOf(v).String()
	}
}

// inspectValue renders a value for an argument value complaint.
func inspectValue(v any) string {
	switch typeName(v) {
	case "undefined":
		return "undefined"
	case "string":
		return inspectText(reflect.ValueOf(v).String())
	case "number":
		return numberLiteral(v)
	case "boolean":
		return fmt.Sprintf("%v", reflect.ValueOf(v).Bool())
	default:
		return fmt.Sprintf("%v", v)
	}
}

// inspectText quotes a string for an error message, eliding everything past
// the first 25 characters.
func inspectText(s string) string {
	if len(s) > inspectTextLimit {
		s = s[:inspectTextLimit] + "..."
	}

	return "'" + s + "'"
}

// oneOf joins a list of acceptable type names the way the messages expect:
// "a", "a or b", "a, b, or c".
func oneOf(expected []string) string {
	switch len(expected) {
	case 0:
		return ""
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + ", or " + expected[len(expected)-1]
	}
}
