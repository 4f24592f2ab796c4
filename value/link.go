package value

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
	"golang.org/x/text/language"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// LinkParam is a single target attribute of a link.
// Value holds the unquoted value, NoValue marks a parameter given by name only.
type LinkParam struct {
	Name    string
	Value   string
	NoValue bool
}

func (p LinkParam) String() string {
	if p.NoValue {
		return p.Name
	}
	return p.Name + "=" + grammar.QuoteIfNeeded(p.Value)
}

// Link is a typed link as defined by RFC 8288.
type Link struct {
	Target *url.URL
	Params []LinkParam
}

// ParseLink parses a single link value like `<http://example.com/>; rel="next"`.
func ParseLink(s string) (Link, error) {
	node, err := grammar.ParseLinkValue(s)
	if err != nil {
		return Link{}, errtrace.Wrap(newMalformedErr(err))
	}
	return errtrace.Wrap2(buildFromLinkNode(node))
}

func buildFromLinkNode(node *abnf.Node) (Link, error) {
	target, err := url.Parse(grammar.MustGetNode(node, "uri-reference").String())
	if err != nil {
		return Link{}, errtrace.Wrap(newMalformedErr(err))
	}

	lnk := Link{Target: target}
	for _, pn := range node.GetNodes("link-param") {
		p := LinkParam{Name: grammar.MustGetNode(pn, "link-param-name").String()}
		if vn, ok := pn.GetNode("link-param-value"); ok {
			p.Value = grammar.Text(vn)
		} else {
			p.NoValue = true
		}
		lnk.Params = append(lnk.Params, p)
	}
	return lnk, nil
}

// MustParseLink is like [ParseLink] but panics on error.
func MustParseLink(s string) Link { return util.Must2(ParseLink(s)) }

// Has reports whether the link has the named parameter.
func (lnk Link) Has(name string) bool {
	return slices.ContainsFunc(lnk.Params, func(p LinkParam) bool { return util.EqFold(p.Name, name) })
}

// Param returns the value of the first parameter with the given name.
func (lnk Link) Param(name string) (string, bool) {
	for _, p := range lnk.Params {
		if util.EqFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns the values of all parameters with the given name.
func (lnk Link) Values(name string) []string {
	var vals []string
	for _, p := range lnk.Params {
		if util.EqFold(p.Name, name) {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Anchor returns the anchor parameter as is.
// It is relative to the link context, resolving it is up to the caller.
func (lnk Link) Anchor() (*url.URL, bool) {
	v, ok := lnk.Param("anchor")
	if !ok {
		return nil, false
	}
	u, err := url.Parse(v)
	if err != nil {
		return nil, false
	}
	return u, true
}

// Rel returns the relation types of the link.
func (lnk Link) Rel() []string { return lnk.relTypes("rel") }

// Rev returns the reverse relation types of the link.
func (lnk Link) Rev() []string { return lnk.relTypes("rev") }

func (lnk Link) relTypes(name string) []string {
	v, ok := lnk.Param(name)
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// HasRel reports whether the link has the given relation type, compared case-insensitively.
func (lnk Link) HasRel(rel string) bool {
	return slices.ContainsFunc(lnk.Rel(), func(r string) bool { return util.EqFold(r, rel) })
}

// Title returns the title parameter.
func (lnk Link) Title() string {
	v, _ := lnk.Param("title")
	return v
}

// MediaType returns the media type hint of the link.
func (lnk Link) MediaType() (MediaType, bool) {
	v, ok := lnk.Param("type")
	if !ok {
		return MediaType{}, false
	}
	mt, err := ParseMediaType(v)
	if err != nil {
		return MediaType{}, false
	}
	return mt, true
}

// HrefLang returns the language hints of the link, invalid tags are skipped.
func (lnk Link) HrefLang() []language.Tag {
	var tags []language.Tag
	for _, v := range lnk.Values("hreflang") {
		if tag, err := language.Parse(v); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Equal reports whether val is a link with the same target and parameters.
func (lnk Link) Equal(val any) bool {
	var other Link
	switch v := val.(type) {
	case Link:
		other = v
	case *Link:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return lnk.target() == other.target() && slices.Equal(lnk.Params, other.Params)
}

func (lnk Link) target() string {
	if lnk.Target == nil {
		return ""
	}
	return lnk.Target.String()
}

// String renders the link, parameters are written in their original order.
// Values are quoted unless they are tokens.
func (lnk Link) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('<')
	sb.WriteString(lnk.target())
	sb.WriteByte('>')
	for _, p := range lnk.Params {
		sb.WriteString("; ")
		sb.WriteString(p.String())
	}
	return sb.String()
}

func (lnk Link) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, lnk.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(lnk.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, lnk.String())
			return
		}

		type hideMethods Link
		type Link hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Link(lnk))
		return
	}
}

// LinkCodec converts a single link value.
type LinkCodec struct{}

func (LinkCodec) Parse(s string) (Link, error) { return errtrace.Wrap2(ParseLink(s)) }

func (LinkCodec) Render(v Link) string { return v.String() }

// LinkList is a comma separated list of links.
type LinkList []Link

// ByRel returns the first link with the given relation type.
func (l LinkList) ByRel(rel string) (Link, bool) {
	for _, lnk := range l {
		if lnk.HasRel(rel) {
			return lnk, true
		}
	}
	return Link{}, false
}

func (l LinkList) Equal(val any) bool {
	var other LinkList
	switch v := val.(type) {
	case LinkList:
		other = v
	case *LinkList:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(l, other, func(a, b Link) bool { return a.Equal(b) })
}

func (l LinkList) String() string {
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

// LinkListCodec converts comma separated link lists.
// Empty list elements are skipped, an empty value results in an empty list.
type LinkListCodec struct{}

func (LinkListCodec) Parse(s string) (LinkList, error) {
	node, err := grammar.ParseLinkList(s)
	if err != nil {
		if errors.Is(err, grammar.ErrEmptyInput) {
			return LinkList{}, nil
		}
		return nil, errtrace.Wrap(newMalformedErr(err))
	}

	nodes := node.GetNodes("link-value")
	l := make(LinkList, 0, len(nodes))
	for _, n := range nodes {
		lnk, err := buildFromLinkNode(n)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		l = append(l, lnk)
	}
	return l, nil
}

func (LinkListCodec) Render(v LinkList) string { return v.String() }
