package candle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrWrongType is returned by DecodeNumber for JSON values that are neither
// a number nor a string.
var ErrWrongType = errors.New("wrong type")

// DecodeNumber resolves a loosely typed JSON value into a float64.
//
//	number       -> its value
//	string       -> strconv.ParseFloat of its contents, or 0 if that fails
//	anything else (object, array, null, bool, missing) -> ErrWrongType
func DecodeNumber(raw []byte) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: missing value", ErrWrongType)
	}

	var v structpb.Value
	if err := protojson.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("invalid json value: %w", err)
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return k.NumberValue, nil
	case *structpb.Value_StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(k.StringValue), 64)
		if err != nil {
			return 0, nil
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrWrongType, kindName(&v))
	}
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StructValue:
		return "object"
	case *structpb.Value_ListValue:
		return "array"
	default:
		return "unknown"
	}
}
