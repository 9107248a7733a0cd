package nbtjson

import "github.com/nbt-format/go-nbt/tag"

// TypePrefix returns the key prefix a tag carries in the roundtrip shape:
// the kind name, "list<inner>" for a typed list, "list<?>" for an untyped
// empty list, and "null" for no tag at all.
func TypePrefix(t *tag.Tag) string {
	if t == nil {
		return "null"
	}
	if t.Type() == tag.TypeList {
		if t.Len() > 0 {
			return "list<" + TypePrefix(t.Index(0)) + ">"
		}
		return "list<?>"
	}
	return t.Type().String()
}
