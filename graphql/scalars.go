/**
 * Copyright (c) 2020, The Calyx Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"math"
	"strconv"
)

// The "type of internal value" for each builtin scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the type of the underlying value behind the interface{} returned by a successful
// coercion is fixed to the one given in the table for each type. When you receive an Int argument,
// you can expect an "int", not an int32 or others.

// Reasons for the error when coercing builtin scalar types
const (
	coercionErrorNonInteger               string = "not an integer"
	coercionErrorIntegerTooLarge                 = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall                 = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric                      = "not a numeric value"
	coercionErrorIntegerToFloatOutOfRange        = "integer that cannot represent with float: out of range"
	coercionErrorNonBoolean                      = "not a boolean value"
	coercionErrorNonValue                        = "not a value"
)

// coercionMode tells a coercer which of the two coercions defined for scalars is running. Several
// value categories are only acceptable in one direction (e.g., Int serializes a bool to 0 or 1 in
// a result but never accepts a bool from input).
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type coercionMode uint8

const (
	resultCoercion coercionMode = iota
	inputCoercion
)

// builtinCoercionError is the uniform message form for values a builtin scalar rejects.
func builtinCoercionError(typeName string, value interface{}, reason string) error {
	return NewCoercionError("%s cannot represent %s: %s", typeName, Inspect(value), reason)
}

// invalidTypeError rejects a value whose Go type the scalar has no mapping for, phrased for the
// direction the coercion runs in.
func (mode coercionMode) invalidTypeError(typeName string, value interface{}) error {
	reason := fmt.Sprintf("unexpected result type `%T`", value)
	if mode == inputCoercion {
		reason = fmt.Sprintf("invalid variable type `%T`", value)
	}
	return builtinCoercionError(typeName, value, reason)
}

// builtinCoercion is implemented once per builtin scalar with the values it accepts. The hooks
// receive values normalized by coerceBuiltinScalar: integers widened to 64 bits, float32 widened
// to float64 and pointers dereferenced, so each scalar deals with a small closed set of
// categories.
type builtinCoercion interface {
	typeName() string

	// nonValueReason is the reason reported for NaN and the infinities.
	nonValueReason() string

	coerceBool(mode coercionMode, value bool) (interface{}, error)
	coerceSigned(mode coercionMode, value int64) (interface{}, error)
	coerceUnsigned(mode coercionMode, value uint64) (interface{}, error)
	coerceFloat(mode coercionMode, value float64) (interface{}, error)
	coerceString(mode coercionMode, value string) (interface{}, error)
}

// coerceFiniteFloat intercepts NaN and the infinities before the per-scalar float hook runs. They
// are not real values and no scalar accepts them in either mode; only the reported reason varies.
func coerceFiniteFloat(c builtinCoercion, mode coercionMode, value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, builtinCoercionError(c.typeName(), value, c.nonValueReason())
	}
	return c.coerceFloat(mode, value)
}

// coerceBuiltinScalar normalizes a Go value and hands it to the scalar's hook for its category.
// nil is accepted by every scalar asis, and a nil pointer coerces like nil. Values outside the
// categories below (slices, maps, structs, ...) are rejected as invalid types.
func coerceBuiltinScalar(c builtinCoercion, mode coercionMode, value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case nil:
		return nil, nil

	case bool:
		return c.coerceBool(mode, value)

	case int:
		return c.coerceSigned(mode, int64(value))
	case int8:
		return c.coerceSigned(mode, int64(value))
	case int16:
		return c.coerceSigned(mode, int64(value))
	case int32:
		return c.coerceSigned(mode, int64(value))
	case int64:
		return c.coerceSigned(mode, value)

	case uint:
		return c.coerceUnsigned(mode, uint64(value))
	case uint8:
		return c.coerceUnsigned(mode, uint64(value))
	case uint16:
		return c.coerceUnsigned(mode, uint64(value))
	case uint32:
		return c.coerceUnsigned(mode, uint64(value))
	case uint64:
		return c.coerceUnsigned(mode, value)

	case float32:
		return coerceFiniteFloat(c, mode, float64(value))
	case float64:
		return coerceFiniteFloat(c, mode, value)

	case string:
		return c.coerceString(mode, value)

	case *bool:
		if value == nil {
			return nil, nil
		}
		return c.coerceBool(mode, *value)

	case *int:
		if value == nil {
			return nil, nil
		}
		return c.coerceSigned(mode, int64(*value))
	case *int8:
		if value == nil {
			return nil, nil
		}
		return c.coerceSigned(mode, int64(*value))
	case *int16:
		if value == nil {
			return nil, nil
		}
		return c.coerceSigned(mode, int64(*value))
	case *int32:
		if value == nil {
			return nil, nil
		}
		return c.coerceSigned(mode, int64(*value))
	case *int64:
		if value == nil {
			return nil, nil
		}
		return c.coerceSigned(mode, *value)

	case *uint:
		if value == nil {
			return nil, nil
		}
		return c.coerceUnsigned(mode, uint64(*value))
	case *uint8:
		if value == nil {
			return nil, nil
		}
		return c.coerceUnsigned(mode, uint64(*value))
	case *uint16:
		if value == nil {
			return nil, nil
		}
		return c.coerceUnsigned(mode, uint64(*value))
	case *uint32:
		if value == nil {
			return nil, nil
		}
		return c.coerceUnsigned(mode, uint64(*value))
	case *uint64:
		if value == nil {
			return nil, nil
		}
		return c.coerceUnsigned(mode, *value)

	case *float32:
		if value == nil {
			return nil, nil
		}
		return coerceFiniteFloat(c, mode, float64(*value))
	case *float64:
		if value == nil {
			return nil, nil
		}
		return coerceFiniteFloat(c, mode, *value)

	case *string:
		if value == nil {
			return nil, nil
		}
		return c.coerceString(mode, *value)
	}

	return nil, mode.invalidTypeError(c.typeName(), value)
}

//===----------------------------------------------------------------------------------------====//
// Int
//===----------------------------------------------------------------------------------------====//
// The Int scalar type represents a signed 32-bit numeric non-fractional value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Int

// intCoercion implements both coercions for the Int type.
type intCoercion struct{}

var (
	_ builtinCoercion     = intCoercion{}
	_ ScalarResultCoercer = intCoercion{}
	_ ScalarInputCoercer  = intCoercion{}
)

// typeName implements builtinCoercion.
func (intCoercion) typeName() string { return "Int" }

// nonValueReason implements builtinCoercion.
func (intCoercion) nonValueReason() string { return coercionErrorNonInteger }

// coerceBool implements builtinCoercion.
func (c intCoercion) coerceBool(mode coercionMode, value bool) (interface{}, error) {
	// Input coercion accepts integer values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	if value {
		return 1, nil
	}
	return 0, nil
}

// coerceSigned implements builtinCoercion.
func (c intCoercion) coerceSigned(mode coercionMode, value int64) (interface{}, error) {
	if value > math.MaxInt32 {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorIntegerTooLarge)
	}
	if value < math.MinInt32 {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

// coerceUnsigned implements builtinCoercion.
func (c intCoercion) coerceUnsigned(mode coercionMode, value uint64) (interface{}, error) {
	if value > math.MaxInt32 {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorIntegerTooLarge)
	}
	return int(value), nil
}

// coerceFloat implements builtinCoercion.
func (c intCoercion) coerceFloat(mode coercionMode, value float64) (interface{}, error) {
	// Input coercion accepts integer values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}

	// The conversion must be lossless; that also rules out values beyond the 32-bit range.
	intValue := int32(value)
	if float64(intValue) != value {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorNonInteger)
	}
	return int(intValue), nil
}

// coerceString implements builtinCoercion.
func (c intCoercion) coerceString(mode coercionMode, value string) (interface{}, error) {
	// Input coercion accepts integer values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}

	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorNonInteger)
	}
	return int(intValue), nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (c intCoercion) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, resultCoercion, value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (c intCoercion) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, inputCoercion, value)
}

var intScalarInstance = &Scalar{
	name: "Int",
	description: "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1.",
	resultCoercer: intCoercion{},
	inputCoercer:  intCoercion{},
}

// Int returns the builtin Int type.
func Int() *Scalar {
	return intScalarInstance
}

//===----------------------------------------------------------------------------------------====//
// Float
//===----------------------------------------------------------------------------------------====//
// The Float scalar type represents signed double-precision fractional values as specified by IEEE
// 754.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Float

// floatCoercion implements both coercions for the Float type.
type floatCoercion struct{}

var (
	_ builtinCoercion     = floatCoercion{}
	_ ScalarResultCoercer = floatCoercion{}
	_ ScalarInputCoercer  = floatCoercion{}
)

// typeName implements builtinCoercion.
func (floatCoercion) typeName() string { return "Float" }

// nonValueReason implements builtinCoercion.
func (floatCoercion) nonValueReason() string { return coercionErrorNonNumeric }

// coerceBool implements builtinCoercion.
func (c floatCoercion) coerceBool(mode coercionMode, value bool) (interface{}, error) {
	// Input coercion accepts integer and float values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	if value {
		return 1.0, nil
	}
	return 0.0, nil
}

// coerceSigned implements builtinCoercion.
func (c floatCoercion) coerceSigned(mode coercionMode, value int64) (interface{}, error) {
	floatValue := float64(value)
	if int64(floatValue) != value {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorIntegerToFloatOutOfRange)
	}
	return floatValue, nil
}

// coerceUnsigned implements builtinCoercion.
func (c floatCoercion) coerceUnsigned(mode coercionMode, value uint64) (interface{}, error) {
	floatValue := float64(value)
	if uint64(floatValue) != value {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorIntegerToFloatOutOfRange)
	}
	return floatValue, nil
}

// coerceFloat implements builtinCoercion.
func (c floatCoercion) coerceFloat(mode coercionMode, value float64) (interface{}, error) {
	return value, nil
}

// coerceString implements builtinCoercion.
func (c floatCoercion) coerceString(mode coercionMode, value string) (interface{}, error) {
	// Input coercion accepts integer and float values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, builtinCoercionError(c.typeName(), value, coercionErrorNonNumeric)
	}
	// ParseFloat accepts spellings of NaN and the infinities; they are still not values. The
	// parsed float goes into the message so "NaN" reports the same way as math.NaN().
	if math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
		return nil, builtinCoercionError(c.typeName(), floatValue, c.nonValueReason())
	}
	return floatValue, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (c floatCoercion) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, resultCoercion, value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (c floatCoercion) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, inputCoercion, value)
}

var floatScalarInstance = &Scalar{
	name: "Float",
	description: "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point). ",
	resultCoercer: floatCoercion{},
	inputCoercer:  floatCoercion{},
}

// Float returns the builtin Float type.
func Float() *Scalar {
	return floatScalarInstance
}

//===----------------------------------------------------------------------------------------====//
// String
//===----------------------------------------------------------------------------------------====//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-String

// stringCoercion implements both coercions for the String type.
type stringCoercion struct{}

var (
	_ builtinCoercion     = stringCoercion{}
	_ ScalarResultCoercer = stringCoercion{}
	_ ScalarInputCoercer  = stringCoercion{}
)

// typeName implements builtinCoercion.
func (stringCoercion) typeName() string { return "String" }

// nonValueReason implements builtinCoercion.
func (stringCoercion) nonValueReason() string { return coercionErrorNonValue }

// coerceBool implements builtinCoercion.
func (c stringCoercion) coerceBool(mode coercionMode, value bool) (interface{}, error) {
	// Input coercion accepts string values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	if value {
		return "true", nil
	}
	return "false", nil
}

// coerceSigned implements builtinCoercion.
func (c stringCoercion) coerceSigned(mode coercionMode, value int64) (interface{}, error) {
	// Input coercion accepts string values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	return strconv.FormatInt(value, 10), nil
}

// coerceUnsigned implements builtinCoercion.
func (c stringCoercion) coerceUnsigned(mode coercionMode, value uint64) (interface{}, error) {
	// Input coercion accepts string values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	return strconv.FormatUint(value, 10), nil
}

// coerceFloat implements builtinCoercion.
func (c stringCoercion) coerceFloat(mode coercionMode, value float64) (interface{}, error) {
	// Input coercion accepts string values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	return fmt.Sprintf("%v", value), nil
}

// coerceString implements builtinCoercion.
func (c stringCoercion) coerceString(mode coercionMode, value string) (interface{}, error) {
	return value, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (c stringCoercion) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, resultCoercion, value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (c stringCoercion) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, inputCoercion, value)
}

var stringScalarInstance = &Scalar{
	name: "String",
	description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences. The String type is most often used by GraphQL to represent free-form human-" +
		"readable text.",
	resultCoercer: stringCoercion{},
	inputCoercer:  stringCoercion{},
}

// String returns the builtin String type.
func String() *Scalar {
	return stringScalarInstance
}

//===----------------------------------------------------------------------------------------====//
// Boolean
//===----------------------------------------------------------------------------------------====//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Boolean

// booleanCoercion implements both coercions for the Boolean type.
type booleanCoercion struct{}

var (
	_ builtinCoercion     = booleanCoercion{}
	_ ScalarResultCoercer = booleanCoercion{}
	_ ScalarInputCoercer  = booleanCoercion{}
)

// typeName implements builtinCoercion.
func (booleanCoercion) typeName() string { return "Boolean" }

// nonValueReason implements builtinCoercion.
func (booleanCoercion) nonValueReason() string { return coercionErrorNonBoolean }

// coerceBool implements builtinCoercion.
func (c booleanCoercion) coerceBool(mode coercionMode, value bool) (interface{}, error) {
	return value, nil
}

// coerceSigned implements builtinCoercion.
func (c booleanCoercion) coerceSigned(mode coercionMode, value int64) (interface{}, error) {
	// Input coercion accepts boolean values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	return value != 0, nil
}

// coerceUnsigned implements builtinCoercion.
func (c booleanCoercion) coerceUnsigned(mode coercionMode, value uint64) (interface{}, error) {
	// Input coercion accepts boolean values only.
	if mode == inputCoercion {
		return nil, mode.invalidTypeError(c.typeName(), value)
	}
	return value != 0, nil
}

// coerceFloat implements builtinCoercion. Floats never represent a Boolean; graphql-js rejects
// them in results as well.
func (c booleanCoercion) coerceFloat(mode coercionMode, value float64) (interface{}, error) {
	return nil, mode.invalidTypeError(c.typeName(), value)
}

// coerceString implements builtinCoercion.
func (c booleanCoercion) coerceString(mode coercionMode, value string) (interface{}, error) {
	return nil, mode.invalidTypeError(c.typeName(), value)
}

// CoerceResultValue implements ScalarResultCoercer.
func (c booleanCoercion) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, resultCoercion, value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (c booleanCoercion) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, inputCoercion, value)
}

var booleanScalarInstance = &Scalar{
	name:          "Boolean",
	description:   "The `Boolean` scalar type represents `true` or `false`.",
	resultCoercer: booleanCoercion{},
	inputCoercer:  booleanCoercion{},
}

// Boolean returns the builtin Boolean type.
func Boolean() *Scalar {
	return booleanScalarInstance
}

//===----------------------------------------------------------------------------------------====//
// ID
//===----------------------------------------------------------------------------------------====//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-ID

// idCoercion implements both coercions for the ID type. ID accepts integers and strings in both
// directions; integers appear as strings in results.
type idCoercion struct{}

var (
	_ builtinCoercion     = idCoercion{}
	_ ScalarResultCoercer = idCoercion{}
	_ ScalarInputCoercer  = idCoercion{}
)

// typeName implements builtinCoercion.
func (idCoercion) typeName() string { return "ID" }

// nonValueReason implements builtinCoercion.
func (idCoercion) nonValueReason() string { return coercionErrorNonValue }

// coerceBool implements builtinCoercion.
func (c idCoercion) coerceBool(mode coercionMode, value bool) (interface{}, error) {
	return nil, mode.invalidTypeError(c.typeName(), value)
}

// coerceSigned implements builtinCoercion.
func (c idCoercion) coerceSigned(mode coercionMode, value int64) (interface{}, error) {
	return strconv.FormatInt(value, 10), nil
}

// coerceUnsigned implements builtinCoercion.
func (c idCoercion) coerceUnsigned(mode coercionMode, value uint64) (interface{}, error) {
	return strconv.FormatUint(value, 10), nil
}

// coerceFloat implements builtinCoercion.
func (c idCoercion) coerceFloat(mode coercionMode, value float64) (interface{}, error) {
	return nil, mode.invalidTypeError(c.typeName(), value)
}

// coerceString implements builtinCoercion.
func (c idCoercion) coerceString(mode coercionMode, value string) (interface{}, error) {
	return value, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (c idCoercion) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, resultCoercion, value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (c idCoercion) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBuiltinScalar(c, inputCoercion, value)
}

var idScalarInstance = &Scalar{
	name: "ID",
	description: "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON " +
		"response as a String; however, it is not intended to be human-readable. " +
		"When expected as an input type, any string (such as `\"4\"`) or integer " +
		"(such as `4`) input value will be accepted as an ID.",
	resultCoercer: idCoercion{},
	inputCoercer:  idCoercion{},
}

// ID returns the builtin ID type.
func ID() *Scalar {
	return idScalarInstance
}
