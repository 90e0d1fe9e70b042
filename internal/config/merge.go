package config

import (
	"gopkg.in/yaml.v3"
)

// fieldSet lists the keys a struct level owns. Keys outside it belong to
// the user (or to other tools reading the same file) and are written back
// untouched.
type fieldSet struct {
	known map[string]bool
	lists map[string]listField
}

// listField describes a list of objects matched across saves by an
// identifying key.
type listField struct {
	id   string
	item *fieldSet
}

var (
	commandFields = &fieldSet{
		known: map[string]bool{"key": true, "url": true, "browser": true, "args": true, "urlEncode": true},
	}
	projectFields = &fieldSet{
		known: map[string]bool{"name": true, "path": true, "description": true, "browser": true, "commands": true},
		lists: map[string]listField{"commands": {id: "key", item: commandFields}},
	}
	rootFields = &fieldSet{
		known: map[string]bool{"currentProject": true, "defaultBrowser": true, "global": true, "projects": true},
		lists: map[string]listField{
			"global":   {id: "key", item: commandFields},
			"projects": {id: "name", item: projectFields},
		},
	}
)

// ---------------- YAML 节点合并（保留顺序与注释） ----------------

// mergeYAMLMapping returns fresh with raw's unknown keys, key order and
// comments carried over. Known keys missing from fresh are dropped.
func mergeYAMLMapping(raw, fresh *yaml.Node, fields *fieldSet) *yaml.Node {
	if raw == nil || raw.Kind != yaml.MappingNode || fresh.Kind != yaml.MappingNode {
		return fresh
	}

	freshValues := make(map[string]*yaml.Node, len(fresh.Content)/2)
	for i := 0; i+1 < len(fresh.Content); i += 2 {
		freshValues[fresh.Content[i].Value] = fresh.Content[i+1]
	}

	out := *raw
	out.Content = make([]*yaml.Node, 0, len(raw.Content)+len(fresh.Content))
	written := make(map[string]bool, len(freshValues))
	for i := 0; i+1 < len(raw.Content); i += 2 {
		key, value := raw.Content[i], raw.Content[i+1]
		if !fields.known[key.Value] {
			out.Content = append(out.Content, key, value)
			continue
		}
		fv, ok := freshValues[key.Value]
		if !ok || written[key.Value] {
			continue
		}
		written[key.Value] = true
		out.Content = append(out.Content, key, mergeYAMLValue(value, fv, fields.lists[key.Value]))
	}
	for i := 0; i+1 < len(fresh.Content); i += 2 {
		if !written[fresh.Content[i].Value] {
			out.Content = append(out.Content, fresh.Content[i], fresh.Content[i+1])
		}
	}
	return &out
}

func mergeYAMLValue(raw, fresh *yaml.Node, list listField) *yaml.Node {
	if list.item == nil || raw.Kind != yaml.SequenceNode || fresh.Kind != yaml.SequenceNode || len(raw.Content) == 0 {
		if raw.Kind == yaml.ScalarNode && fresh.Kind == yaml.ScalarNode {
			fresh.HeadComment, fresh.LineComment, fresh.FootComment = raw.HeadComment, raw.LineComment, raw.FootComment
		}
		return fresh
	}

	byID := make(map[string]*yaml.Node, len(raw.Content))
	for _, item := range raw.Content {
		if id, ok := yamlMappingValue(item, list.id); ok {
			if _, dup := byID[id]; !dup {
				byID[id] = item
			}
		}
	}

	out := *raw
	out.Content = make([]*yaml.Node, 0, len(fresh.Content))
	for _, item := range fresh.Content {
		id, _ := yamlMappingValue(item, list.id)
		out.Content = append(out.Content, mergeYAMLMapping(byID[id], item, list.item))
	}
	if len(out.Content) == 0 {
		return fresh
	}
	return &out
}

func yamlMappingValue(node *yaml.Node, key string) (string, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value, true
		}
	}
	return "", false
}

// ---------------- 通用 map 合并（JSON / TOML） ----------------

// mergeMap is mergeYAMLMapping for generically decoded documents.
func mergeMap(raw, fresh map[string]interface{}, fields *fieldSet) map[string]interface{} {
	if raw == nil {
		return fresh
	}
	out := make(map[string]interface{}, len(raw)+len(fresh))
	for k, v := range raw {
		if !fields.known[k] {
			out[k] = v
		}
	}
	for k, v := range fresh {
		list, isList := fields.lists[k]
		if !isList {
			out[k] = v
			continue
		}
		out[k] = mergeList(asMaps(raw[k]), asMaps(v), list)
	}
	return out
}

func mergeList(raw, fresh []map[string]interface{}, list listField) []map[string]interface{} {
	byID := make(map[string]map[string]interface{}, len(raw))
	for _, item := range raw {
		if id, ok := item[list.id].(string); ok {
			if _, dup := byID[id]; !dup {
				byID[id] = item
			}
		}
	}

	out := make([]map[string]interface{}, 0, len(fresh))
	for _, item := range fresh {
		id, _ := item[list.id].(string)
		out = append(out, mergeMap(byID[id], item, list.item))
	}
	return out
}

// asMaps normalizes a decoded list of objects. encoding/json yields
// []interface{}, BurntSushi/toml yields []map[string]interface{}.
func asMaps(v interface{}) []map[string]interface{} {
	switch list := v.(type) {
	case []map[string]interface{}:
		return list
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
