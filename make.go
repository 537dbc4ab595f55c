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

import "reflect"

// Make constructs a buffer from a dynamically typed value, dispatching on
// its runtime type the way the JavaScript Buffer constructor does:
//
//   - a string is decoded in the given encoding, UTF8 when absent;
//   - a []byte, Buffer or *Buffer is copied;
//   - a number is a size, yielding a zero-filled buffer of that length.
//
// Passing an encoding together with a numeric value is rejected with an
// *InvalidArgTypeError before any allocation takes place: an encoding only
// makes sense for a string, so the caller has almost certainly mixed up a
// size with text.  The encoding argument is ignored for byte and buffer
// inputs.
//
// All failures are plain values satisfying Error; constructing the same
// error twice yields equal messages and kinds.
func Make(value any, encoding ...Encoding) (*Buffer, error) {
	if isNumber(value) {
		if len(encoding) > 0 {
			return nil, &InvalidArgTypeError{
				ArgName:  "string",
				Expected: []string{"string"},
				Value:    value,
			}
		}

		size, err := sizeArg(value)
		if err != nil {
			return nil, err
		}

		return Alloc(size)
	}

	enc := UTF8
	if len(encoding) > 0 {
		enc = encoding[0]
	}

	switch v := value.(type) {
	case string:
		return FromString(v, enc)
	case []byte:
		return FromBytes(v), nil
	case *Buffer:
		if v != nil {
			return v.Clone(), nil
		}
	case Buffer:
		return v.Clone(), nil
	}

	return nil, &InvalidArgTypeError{
		ArgName:  "first argument",
		Expected: []string{"string", "Buffer", "[]byte", "number"},
		Value:    value,
	}
}

// sizeArg validates a numeric construction argument and converts it to an
// int size.  Range complaints carry the caller's original literal, not a
// converted one, so an overflowing uint64 is reported as written.
func sizeArg(value any) (int, error) {
	if !isIntegral(value) {
		return 0, newIntegerRangeError("size", value)
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > MaxLength {
			return 0, newSizeRangeError("size", 0, MaxLength, value)
		}

		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f < 0 || f > MaxLength {
			return 0, newSizeRangeError("size", 0, MaxLength, value)
		}

		return int(f), nil
	default:
		i := rv.Int()
		if i < 0 || i > MaxLength {
			return 0, newSizeRangeError("size", 0, MaxLength, value)
		}

		return int(i), nil
	}
}
