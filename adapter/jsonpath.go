package adapter

import "encoding/json"

// Response bodies are walked one node at a time. A node that is missing or
// has an unexpected JSON type is reported as absent instead of failing the
// whole body.

func jsonField(node json.RawMessage, key string) (json.RawMessage, bool) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(node, &object); err != nil {
		return nil, false
	}
	value, ok := object[key]
	return value, ok
}

func jsonElements(node json.RawMessage) ([]json.RawMessage, bool) {
	var list []json.RawMessage
	if err := json.Unmarshal(node, &list); err != nil || list == nil {
		return nil, false
	}
	return list, true
}

func jsonIndex(node json.RawMessage, i int) (json.RawMessage, bool) {
	list, ok := jsonElements(node)
	if !ok || i < 0 || i >= len(list) {
		return nil, false
	}
	return list[i], true
}

// jsonString reads node[key] as a string. null and non-string values are absent.
func jsonString(node json.RawMessage, key string) (string, bool) {
	value, ok := jsonField(node, key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil || string(value) == "null" {
		return "", false
	}
	return s, true
}
