// This file implements schema type/format to Go type mapping.

package resolver

// stringFormatToGoType maps string formats to Go types.
func stringFormatToGoType(format string) (goType, imp string) {
	switch format {
	case "date-time":
		return "time.Time", "time"
	case "date":
		return "string", "" // could use time.Time with custom parsing
	case "time":
		return "string", ""
	case "byte":
		return "[]byte", ""
	case "binary":
		return "[]byte", ""
	default:
		return "string", ""
	}
}

// integerFormatToGoType maps integer formats to Go types.
func integerFormatToGoType(format string) string {
	switch format {
	case "int32":
		return "int32"
	case "int64":
		return "int64"
	default:
		return "int64"
	}
}

// numberFormatToGoType maps number formats to Go types.
func numberFormatToGoType(format string) string {
	switch format {
	case "float":
		return "float32"
	case "double":
		return "float64"
	default:
		return "float64"
	}
}
