package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/apparata/appconsole/catalog"
)

// convert parses a raw command-line token into the value shape its
// DataType calls for. A file argument's raw token is the path to read:
// the FileValue carries the basename plus the bytes read from it.
func convert(dataType catalog.DataType, raw string) (catalog.ArgumentValue, error) {
	switch dataType {
	case catalog.DataTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return catalog.BoolValue(b), nil
	case catalog.DataTypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return catalog.IntValue(i), nil
	case catalog.DataTypeDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return catalog.DoubleValue(f), nil
	case catalog.DataTypeString:
		return catalog.StringValue(raw), nil
	case catalog.DataTypeDate:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		return catalog.DateValue(t), nil
	case catalog.DataTypeFile:
		data, err := os.ReadFile(raw)
		if err != nil {
			return nil, err
		}
		return catalog.FileValue{Name: filepath.Base(raw), Data: data}, nil
	default:
		return nil, &Error{Kind: ErrValueNotConvertibleToType, Msg: "unknown data type " + string(dataType)}
	}
}
