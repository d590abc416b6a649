package config

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckSuperfluousConfigKeys returns the keys that no command reads, so typos
// in the config file can be reported instead of silently ignored.
func CheckSuperfluousConfigKeys(keys []string) (ignoredKeys []string) {
	validKeys := make(map[string]struct{})
	for _, key := range getValidConfigKeys("database", database{}) {
		validKeys[key] = struct{}{}
	}
	for _, key := range getValidConfigKeys("log", log{}) {
		validKeys[key] = struct{}{}
	}
	for _, key := range getValidConfigKeys("base", mergeBase{}) {
		validKeys[key] = struct{}{}
	}
	for _, key := range getValidConfigKeys("base", serveBase{}) {
		validKeys[key] = struct{}{}
	}

	for _, key := range keys {
		if _, ok := validKeys[key]; !ok {
			ignoredKeys = append(ignoredKeys, key)
		}
	}

	return
}

// getValidConfigKeys lists section.key for every field, preferring the
// mapstructure name. Viper reports keys lowercased.
func getValidConfigKeys(section string, s any) (keys []string) {
	t := reflect.TypeOf(s)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		keys = append(keys, fmt.Sprintf("%v.%v", section, name))
	}
	return
}
