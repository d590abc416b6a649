package parsers

import "sort"

var parserKeys = map[string]struct{}{}

// RegisterParsers records the output formats that can be requested.
func RegisterParsers(keys []string) {
	for _, key := range keys {
		parserKeys[key] = struct{}{}
	}
}

// GetParserKeys returns the registered output formats, sorted.
func GetParserKeys() []string {
	keys := make([]string, 0, len(parserKeys))
	for key := range parserKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsParserKey reports whether key names a registered output format.
func IsParserKey(key string) bool {
	_, ok := parserKeys[key]
	return ok
}
