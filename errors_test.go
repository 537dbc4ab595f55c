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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgTypeMessages(t *testing.T) {
	tests := map[string]struct {
		err  InvalidArgTypeError
		want string
	}{
		"number": {
			InvalidArgTypeError{ArgName: "string", Expected: []string{"string"}, Value: 42},
			`The "string" argument must be of type string. Received type number (42)`,
		},
		"float": {
			InvalidArgTypeError{ArgName: "string", Expected: []string{"string"}, Value: 4.5},
			`The "string" argument must be of type string. Received type number (4.5)`,
		},
		"string value": {
			InvalidArgTypeError{ArgName: "size", Expected: []string{"number"}, Value: "ten"},
			`The "size" argument must be of type number. Received type string ('ten')`,
		},
		"long string elided": {
			InvalidArgTypeError{ArgName: "size", Expected: []string{"number"},
				Value: "abcdefghijklmnopqrstuvwxyz"},
			`The "size" argument must be of type number. Received type string ('abcdefghijklmnopqrstuvwxy...')`,
		},
		"boolean": {
			InvalidArgTypeError{ArgName: "string", Expected: []string{"string"}, Value: false},
			`The "string" argument must be of type string. Received type boolean (false)`,
		},
		"nil": {
			InvalidArgTypeError{ArgName: "string", Expected: []string{"string"}, Value: nil},
			`The "string" argument must be of type string. Received undefined`,
		},
		"instance": {
			InvalidArgTypeError{ArgName: "string", Expected: []string{"string"}, Value: Of(1)},
			`The "string" argument must be of type string. Received an instance of *bytebuf.Buffer`,
		},
		"two expected": {
			InvalidArgTypeError{ArgName: "value", Expected: []string{"string", "number"}, Value: true},
			`The "value" argument must be of type string or number. Received type boolean (true)`,
		},
		"positional name": {
			InvalidArgTypeError{ArgName: "first argument",
				Expected: []string{"string", "Buffer", "[]byte", "number"}, Value: nil},
			`The first argument must be of type string, Buffer, []byte, or number. Received undefined`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  Error
		kind Kind
		name string
	}{
		{&InvalidArgTypeError{ArgName: "string"}, ErrInvalidArgType, "TypeError"},
		{&InvalidArgValueError{ArgName: "string"}, ErrInvalidArgValue, "TypeError"},
		{&OutOfRangeError{ArgName: "size"}, ErrOutOfRange, "RangeError"},
		{&UnknownEncodingError{Name: "x"}, ErrUnknownEncoding, "TypeError"},
		{&InvalidBufferSizeError{Bits: 16}, ErrInvalidBufferSize, "RangeError"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, tt.name, tt.err.JSName())
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}

func TestInvalidArgValueMessage(t *testing.T) {
	err := &InvalidArgValueError{ArgName: "string", Reason: "is malformed hex input", Value: "zz"}
	assert.Equal(t, `The argument 'string' is malformed hex input. Received 'zz'`, err.Error())

	err = &InvalidArgValueError{ArgName: "size", Value: 3}
	assert.Equal(t, `The argument 'size' is invalid. Received 3`, err.Error())
}

func TestOutOfRangeMessage(t *testing.T) {
	err := newSizeRangeError("size", 0, MaxLength, -7)
	assert.Equal(t,
		`The value of "size" is out of range. It must be >= 0 and <= 2147483647. Received -7`,
		err.Error())

	err = newIntegerRangeError("size", 1.25)
	assert.Equal(t, `The value of "size" is out of range. It must be an integer. Received 1.25`,
		err.Error())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "number", typeName(42))
	assert.Equal(t, "number", typeName(uint8(1)))
	assert.Equal(t, "number", typeName(3.14))
	assert.Equal(t, "string", typeName("x"))
	assert.Equal(t, "boolean", typeName(true))
	assert.Equal(t, "function", typeName(func() {}))
	assert.Equal(t, "object", typeName(struct{}{}))
	assert.Equal(t, "object", typeName([]int{1}))
	assert.Equal(t, "undefined", typeName(nil))

	type count int
	assert.Equal(t, "number", typeName(count(3)))
}

func TestNumberLiteral(t *testing.T) {
	assert.Equal(t, "42", numberLiteral(42))
	assert.Equal(t, "-7", numberLiteral(int8(-7)))
	assert.Equal(t, "255", numberLiteral(uint8(255)))
	assert.Equal(t, "4.5", numberLiteral(4.5))
	assert.Equal(t, "1", numberLiteral(1.0))
	assert.Equal(t, "1099511627776", numberLiteral(uint64(1)<<40))
}

func TestReceivedFunction(t *testing.T) {
	assert.Equal(t, "type function", received(func() {}))
}
