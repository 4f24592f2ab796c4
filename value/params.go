package value

import (
	"slices"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Params maps a parameter name to a list of values.
// The keys are case-insensitive, they are stored in lower case.
type Params map[string][]string

// Get returns values associated with the given key.
func (ps Params) Get(key string) []string { return ps[util.LCase(key)] }

// First returns the first value associated with the given key.
func (ps Params) First(key string) (string, bool) {
	v := ps[util.LCase(key)]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value associated with the given key.
func (ps Params) Last(key string) (string, bool) {
	v := ps[util.LCase(key)]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Set sets the key to value. It replaces any existing values.
func (ps Params) Set(key, value string) Params {
	ps[util.LCase(key)] = []string{value}
	return ps
}

// Append adds the value to key.
func (ps Params) Append(key, value string) Params {
	key = util.LCase(key)
	ps[key] = append(ps[key], value)
	return ps
}

// Del deletes the values associated with the key.
func (ps Params) Del(key string) Params {
	delete(ps, util.LCase(key))
	return ps
}

// Has checks whether a given key is present.
func (ps Params) Has(key string) bool {
	_, ok := ps[util.LCase(key)]
	return ok
}

// Keys returns the sorted parameter names.
func (ps Params) Keys() []string {
	keys := make([]string, 0, len(ps))
	for k := range ps {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a copy of the map.
func (ps Params) Clone() Params {
	var ps2 Params
	for k, vs := range ps {
		if ps2 == nil {
			ps2 = make(Params, len(ps))
		}
		ps2[k] = slices.Clone(vs)
	}
	return ps2
}

// Equal compares parameters, values are compared case-sensitively.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if len(ps) != len(other) {
		return false
	}
	for k, vs := range ps {
		if !slices.Equal(vs, other[k]) {
			return false
		}
	}
	return true
}
