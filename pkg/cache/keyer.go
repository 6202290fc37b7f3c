package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Key derives a stable cache key from a capability name and its query
// parameters. The query is serialised canonically (object keys sorted) so the
// same parameters always map to the same key, whatever order optional fields
// were set in.
func Key(capability string, query any) string {
	canonical, err := canonicalise(query)
	if err != nil {
		// Unserialisable queries never hit the cache
		return ""
	}

	hash := sha256.Sum256(canonical)

	return fmt.Sprintf("%s:%s", capability, hex.EncodeToString(hash[:8]))
}

func canonicalise(value any) ([]byte, error) {
	marshalled, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(marshalled, &generic); err != nil {
		return nil, err
	}

	return canonicaliseValue(generic)
}

func canonicaliseValue(value any) ([]byte, error) {
	switch typedValue := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typedValue))
		for key := range typedValue {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		result := []byte("{")
		for i, key := range keys {
			if i > 0 {
				result = append(result, ',')
			}

			keyBytes, _ := json.Marshal(key)
			result = append(result, keyBytes...)
			result = append(result, ':')

			valueBytes, err := canonicaliseValue(typedValue[key])
			if err != nil {
				return nil, err
			}
			result = append(result, valueBytes...)
		}

		return append(result, '}'), nil
	case []any:
		result := []byte("[")
		for i, item := range typedValue {
			if i > 0 {
				result = append(result, ',')
			}

			itemBytes, err := canonicaliseValue(item)
			if err != nil {
				return nil, err
			}
			result = append(result, itemBytes...)
		}

		return append(result, ']'), nil
	default:
		return json.Marshal(value)
	}
}
