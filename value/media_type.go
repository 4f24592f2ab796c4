package value

import (
	"errors"
	"fmt"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// MediaType holds a media type with optional parameters, e.g. "text/html; charset=utf-8".
type MediaType struct {
	Type    string
	Subtype string
	Params  Params
}

// ParseMediaType parses a single media type.
// Quoted parameter values are unquoted, repeated parameters keep all their values.
func ParseMediaType(s string) (MediaType, error) {
	node, err := grammar.ParseMediaType(s)
	if err != nil {
		return MediaType{}, errtrace.Wrap(newMalformedErr(err))
	}
	return buildFromMediaTypeNode(node), nil
}

func buildFromMediaTypeNode(node *abnf.Node) MediaType {
	mt := MediaType{
		Type:    grammar.MustGetNode(node, "type").String(),
		Subtype: grammar.MustGetNode(node, "subtype").String(),
	}
	for _, pn := range node.GetNodes("parameter") {
		if mt.Params == nil {
			mt.Params = make(Params)
		}
		mt.Params.Append(
			grammar.MustGetNode(pn, "parameter-name").String(),
			grammar.Text(grammar.MustGetNode(pn, "parameter-value")),
		)
	}
	return mt
}

// MustParseMediaType is like [ParseMediaType] but panics on error.
func MustParseMediaType(s string) MediaType { return util.Must2(ParseMediaType(s)) }

// Essence returns the lower-cased "type/subtype" part.
func (mt MediaType) Essence() string { return util.LCase(mt.Type + "/" + mt.Subtype) }

// Param returns the value of the named parameter.
func (mt MediaType) Param(name string) (string, bool) { return mt.Params.Last(name) }

// Charset returns the value of the charset parameter.
func (mt MediaType) Charset() (string, bool) { return mt.Param("charset") }

// CharsetOr returns the value of the charset parameter or def if it is missing or empty.
func (mt MediaType) CharsetOr(def string) string {
	if cs, ok := mt.Charset(); ok && cs != "" {
		return cs
	}
	return def
}

// Quality returns the value of the "q" parameter, 1 if it is missing or invalid.
func (mt MediaType) Quality() float64 {
	if q, ok := mt.Param("q"); ok {
		if f, err := strconv.ParseFloat(q, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return 1
}

// With returns a copy of mt with the given parameters set.
// The parameters are given as name-value pairs, a trailing name without value is ignored.
func (mt MediaType) With(kvs ...string) MediaType {
	mt = mt.Clone()
	if len(kvs) > 1 && mt.Params == nil {
		mt.Params = make(Params, len(kvs)/2)
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		mt.Params.Set(kvs[i], kvs[i+1])
	}
	return mt
}

// SameType reports whether both media types have the same type and subtype, parameters are ignored.
func (mt MediaType) SameType(other MediaType) bool {
	return util.EqFold(mt.Type, other.Type) && util.EqFold(mt.Subtype, other.Subtype)
}

// Equal reports whether val is a media type with the same type, subtype and parameters.
// Type and subtype are compared case-insensitively.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return mt.SameType(other) && mt.Params.Equal(other.Params)
}

func (mt MediaType) IsZero() bool { return mt.Type == "" && mt.Subtype == "" && len(mt.Params) == 0 }

func (mt MediaType) Clone() MediaType {
	mt.Params = mt.Params.Clone()
	return mt
}

// String renders the media type, parameters are sorted by name and keep the order of their values.
func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(mt.Type)
	sb.WriteByte('/')
	sb.WriteString(mt.Subtype)
	for _, k := range mt.Params.Keys() {
		for _, v := range mt.Params[k] {
			sb.WriteString(";")
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(grammar.QuoteIfNeeded(v))
		}
	}
	return sb.String()
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

func (mt MediaType) MarshalText() ([]byte, error) { return []byte(mt.String()), nil }

func (mt *MediaType) UnmarshalText(data []byte) error {
	v, err := ParseMediaType(string(data))
	if err != nil {
		*mt = MediaType{}
		return errtrace.Wrap(err)
	}
	*mt = v
	return nil
}

// MediaTypeCodec converts a single media type, e.g. Content-Type.
type MediaTypeCodec struct{}

func (MediaTypeCodec) Parse(s string) (MediaType, error) { return errtrace.Wrap2(ParseMediaType(s)) }

func (MediaTypeCodec) Render(v MediaType) string { return v.String() }

// MediaTypeList is a comma separated list of media types, e.g. Accept.
type MediaTypeList []MediaType

// Equal reports whether both lists hold equal media types in the same order.
func (l MediaTypeList) Equal(val any) bool {
	var other MediaTypeList
	switch v := val.(type) {
	case MediaTypeList:
		other = v
	case *MediaTypeList:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Preferred returns the media type with the highest quality, the first one wins on ties.
func (l MediaTypeList) Preferred() (MediaType, bool) {
	if len(l) == 0 {
		return MediaType{}, false
	}
	best := 0
	for i := 1; i < len(l); i++ {
		if l[i].Quality() > l[best].Quality() {
			best = i
		}
	}
	return l[best], true
}

func (l MediaTypeList) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l[i].String())
	}
	return sb.String()
}

// MediaTypeListCodec converts comma separated media type lists.
// Empty list elements are skipped, an empty value results in an empty list.
type MediaTypeListCodec struct{}

func (MediaTypeListCodec) Parse(s string) (MediaTypeList, error) {
	node, err := grammar.ParseMediaTypeList(s)
	if err != nil {
		if errors.Is(err, grammar.ErrEmptyInput) {
			return MediaTypeList{}, nil
		}
		return nil, errtrace.Wrap(newMalformedErr(err))
	}

	nodes := node.GetNodes("media-type")
	l := make(MediaTypeList, 0, len(nodes))
	for _, n := range nodes {
		l = append(l, buildFromMediaTypeNode(n))
	}
	return l, nil
}

func (MediaTypeListCodec) Render(v MediaTypeList) string { return v.String() }
