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
	"strings"
)

// Kind is the machine-readable category code carried by every typed error
// raised by this package.  Kinds double as sentinels for errors.Is, so
// callers can match a whole category without knowing the concrete type:
//
//	if errors.Is(err, bytebuf.ErrInvalidArgType) { ... }
type Kind string

// The error categories raised by buffer construction and access.
const (
	ErrInvalidArgType    Kind = "InvalidArgType"
	ErrInvalidArgValue   Kind = "InvalidArgValue"
	ErrOutOfRange        Kind = "OutOfRange"
	ErrUnknownEncoding   Kind = "UnknownEncoding"
	ErrInvalidBufferSize Kind = "InvalidBufferSize"
)

// Error implements the error interface so Kinds can serve as sentinels.
func (k Kind) Error() string { return string(k) }

// Error is the interface implemented by all typed errors raised by this
// package.  In addition to the human-readable message, every error carries
// its category code and the name of the error class it would map to in a
// JavaScript runtime, so callers that pattern-match on the shape
// {kind, name, message} can do so without type assertions on concrete
// structs.
type Error interface {
	error

	// Kind returns the machine-readable category code.
	Kind() Kind

	// JSName returns the JavaScript error class the error corresponds to,
	// "TypeError" or "RangeError".
	JSName() string
}

// TypeError is implemented by errors that correspond to a JavaScript
// TypeError: the argument was of the wrong type or shape.  These are
// programmer errors; they are never recovered internally and never retried.
type TypeError interface {
	error
	IsTypeError()
}

// RangeError is implemented by errors that correspond to a JavaScript
// RangeError: the argument had the right type but an out-of-range value.
type RangeError interface {
	error
	IsRangeError()
}

// InvalidArgTypeError reports an argument of the wrong dynamic type.  The
// complaint is framed around the parameter that was expected, not around the
// offending value: constructing from a number with an explicit encoding
// yields ArgName "string", because only a string argument can meaningfully
// carry an encoding.
type InvalidArgTypeError struct {
	// ArgName names the offended parameter.  A name containing a space is
	// used verbatim in the message ("The first argument must be ..."),
	// otherwise it is quoted ("The "string" argument must be ...").
	ArgName string

	// Expected lists the acceptable type names.
	Expected []string

	// Value is the actual value received.
	Value any
}

var _ Error = (*InvalidArgTypeError)(nil)
var _ TypeError = (*InvalidArgTypeError)(nil)

// Kind returns ErrInvalidArgType.
func (e *InvalidArgTypeError) Kind() Kind { return ErrInvalidArgType }

// JSName returns "TypeError".
func (e *InvalidArgTypeError) JSName() string { return "TypeError" }

// IsTypeError marks the error as a type error.
func (e *InvalidArgTypeError) IsTypeError() {}

// ActualType returns the classified type of the received value.
func (e *InvalidArgTypeError) ActualType() string { return typeName(e.Value) }

func (e *InvalidArgTypeError) Error() string {
	var b strings.Builder

	if strings.ContainsRune(e.ArgName, ' ') {
		b.WriteString("The ")
		b.WriteString(e.ArgName)
	} else {
		b.WriteString(`The "`)
		b.WriteString(e.ArgName)
		b.WriteString(`" argument`)
	}

	b.WriteString(" must be of type ")
	b.WriteString(oneOf(e.Expected))
	b.WriteString(". Received ")
	b.WriteString(received(e.Value))

	return b.String()
}

// Is matches the error against its category sentinel.
func (e *InvalidArgTypeError) Is(target error) bool { return target == ErrInvalidArgType }

// InvalidArgValueError reports an argument of an acceptable type whose value
// cannot be used, e.g. a malformed hexadecimal string.
type InvalidArgValueError struct {
	ArgName string

	// Reason completes the sentence "The argument '<name>' <reason>."; when
	// empty "is invalid" is used.
	Reason string

	// Value is the actual value received.
	Value any
}

var _ Error = (*InvalidArgValueError)(nil)
var _ TypeError = (*InvalidArgValueError)(nil)

// Kind returns ErrInvalidArgValue.
func (e *InvalidArgValueError) Kind() Kind { return ErrInvalidArgValue }

// JSName returns "TypeError".
func (e *InvalidArgValueError) JSName() string { return "TypeError" }

// IsTypeError marks the error as a type error.
func (e *InvalidArgValueError) IsTypeError() {}

func (e *InvalidArgValueError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is invalid"
	}

	return fmt.Sprintf("The argument '%s' %s. Received %s", e.ArgName, reason, inspectValue(e.Value))
}

// Is matches the error against its category sentinel.
func (e *InvalidArgValueError) Is(target error) bool { return target == ErrInvalidArgValue }

// OutOfRangeError reports a numeric argument outside its permitted range.
type OutOfRangeError struct {
	ArgName string

	// Requirement completes the sentence "It must <requirement>.",
	// e.g. "be >= 0 and <= 2147483647" or "be an integer".
	Requirement string

	// Received is the offending value.
	Received any
}

var _ Error = (*OutOfRangeError)(nil)
var _ RangeError = (*OutOfRangeError)(nil)

// Kind returns ErrOutOfRange.
func (e *OutOfRangeError) Kind() Kind { return ErrOutOfRange }

// JSName returns "RangeError".
func (e *OutOfRangeError) JSName() string { return "RangeError" }

// IsRangeError marks the error as a range error.
func (e *OutOfRangeError) IsRangeError() {}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(`The value of "%s" is out of range. It must %s. Received %s`,
		e.ArgName, e.Requirement, inspectValue(e.Received))
}

// Is matches the error against its category sentinel.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// newSizeRangeError builds the OutOfRangeError for size and offset arguments
// constrained to [min, max].
func newSizeRangeError(name string, min, max int, received any) *OutOfRangeError {
	return &OutOfRangeError{
		ArgName:     name,
		Requirement: fmt.Sprintf("be >= %d and <= %d", min, max),
		Received:    received,
	}
}

// newIntegerRangeError builds the OutOfRangeError for numeric arguments that
// must be integral.
func newIntegerRangeError(name string, received any) *OutOfRangeError {
	return &OutOfRangeError{
		ArgName:     name,
		Requirement: "be an integer",
		Received:    received,
	}
}

// UnknownEncodingError reports an encoding name that no codec answers to.
type UnknownEncodingError struct {
	Name string
}

var _ Error = (*UnknownEncodingError)(nil)
var _ TypeError = (*UnknownEncodingError)(nil)

// Kind returns ErrUnknownEncoding.
func (e *UnknownEncodingError) Kind() Kind { return ErrUnknownEncoding }

// JSName returns "TypeError".
func (e *UnknownEncodingError) JSName() string { return "TypeError" }

// IsTypeError marks the error as a type error.
func (e *UnknownEncodingError) IsTypeError() {}

func (e *UnknownEncodingError) Error() string {
	return "Unknown encoding: " + e.Name
}

// Is matches the error against its category sentinel.
func (e *UnknownEncodingError) Is(target error) bool { return target == ErrUnknownEncoding }

// InvalidBufferSizeError reports an in-place byte swap over a buffer whose
// length is not a multiple of the swap width.
type InvalidBufferSizeError struct {
	// Bits is the swap width, 16, 32 or 64.
	Bits int
}

var _ Error = (*InvalidBufferSizeError)(nil)
var _ RangeError = (*InvalidBufferSizeError)(nil)

// Kind returns ErrInvalidBufferSize.
func (e *InvalidBufferSizeError) Kind() Kind { return ErrInvalidBufferSize }

// JSName returns "RangeError".
func (e *InvalidBufferSizeError) JSName() string { return "RangeError" }

// IsRangeError marks the error as a range error.
func (e *InvalidBufferSizeError) IsRangeError() {}

func (e *InvalidBufferSizeError) Error() string {
	return fmt.Sprintf("Buffer size must be a multiple of %d-bits", e.Bits)
}

// Is matches the error against its category sentinel.
func (e *InvalidBufferSizeError) Is(target error) bool { return target == ErrInvalidBufferSize }
