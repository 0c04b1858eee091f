//go:build unit || e2e

package testutil

import "strings"

// Field sets key in a DtoMap result; a nil value deletes it. Dotted keys such
// as "tarjeta.numero" reach into nested objects, which must already exist.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				return
			}
			m = next
		}
		last := path[len(path)-1]
		if value == nil {
			delete(m, last)
			return
		}
		m[last] = value
	}
}
