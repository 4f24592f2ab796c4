package header

import "reflect"

// Key identifies a class of headers in a [List].
//
// Keys are compared by their canonical names only: a [*Type] and a [Name]
// with the same canonical spelling select the same headers.
type Key interface {
	Name() Name
}

// TypedKey is a [Key] that also carries the runtime type of its header values.
type TypedKey interface {
	Key
	ValueType() reflect.Type
}

// SameKey reports whether both keys select the same headers.
// Keys with an empty name select nothing.
func SameKey(k1, k2 Key) bool {
	n1, n2 := keyName(k1), keyName(k2)
	return n1 != "" && n1 == n2
}

func keyName(k Key) Name {
	if k == nil {
		return ""
	}
	return k.Name()
}

func keyNames(keys []Key) []Name {
	names := make([]Name, 0, len(keys))
	for _, k := range keys {
		if n := keyName(k); n != "" {
			names = append(names, n)
		}
	}
	return names
}
