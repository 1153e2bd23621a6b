package scanner

import (
	"strconv"
	"strings"
)

// baseTypeNames is the closed set of model base type names the scanner
// recognizes, indexed by canonical protocol code. Names past the protocol
// table (currently only "size") are recognized but have no protocol mapping
// of their own.
var baseTypeNames = []string{"",
	"bool", "char", "wchar",
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
	"timedate32", "timedate48", "timedate64",
	"size",
}

// protocolTypeIDs maps canonical codes to protocol base type identifiers.
var protocolTypeIDs = []string{"",
	/* 1*/ "BOOL8", "CHAR8", "UTF16",
	/* 4*/ "INT8", "INT16", "INT32", "INT64",
	/* 8*/ "UINT8", "UINT16", "UINT32", "UINT64",
	/*12*/ "REAL32", "REAL64",
	/*14*/ "TIMEDATE32", "TIMEDATE48", "TIMEDATE64",
}

// defaultWidthCode is the fallback target width for recognized base types
// without a protocol mapping of their own (INT32).
const defaultWidthCode = 6

// lookupBaseType resolves a model base type name (case-insensitive) to its
// canonical protocol code. Recognized names without a protocol mapping fall
// back to the default width.
func lookupBaseType(name string) (int, bool) {
	for code := len(baseTypeNames) - 1; code > 0; code-- {
		if strings.EqualFold(name, baseTypeNames[code]) {
			if code >= len(protocolTypeIDs) {
				return defaultWidthCode, true
			}
			return code, true
		}
	}
	return 0, false
}

// protocolTypeID renders a canonical code as the protocol type identifier,
// either by name or numerically.
func protocolTypeID(code int, numeric bool) string {
	if numeric {
		return strconv.Itoa(code)
	}
	return protocolTypeIDs[code]
}
