// Package links assembles absolute URLs from their parts with an ordered,
// percent-encoded query string.
//
// Query values are escaped the way share endpoints such as reddit expect:
// a space becomes %20 rather than the form-encoded +, and everything other
// than letters, digits and "-_.~" is escaped.
package links

import (
	"net/url"
	"strings"
)

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Order is kept as given.
type Query []Pair

// Encode renders the query as k1=v1&k2=v2 with each key and value escaped.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(p.Key))
		b.WriteByte('=')
		b.WriteString(Escape(p.Value))
	}
	return b.String()
}

// Components are the parts of a URL. Path is written as given, so it must
// already be safe for a URL path.
type Components struct {
	Scheme string
	Host   string
	Path   string
	Query  Query
}

// String assembles the URL as scheme://host/path?query. The "?" is omitted
// when the query is empty, and a leading "/" is added to a non-empty path
// that lacks one.
func (c Components) String() string {
	var b strings.Builder
	if c.Scheme != "" {
		b.WriteString(c.Scheme)
		b.WriteByte(':')
	}
	if c.Host != "" || c.Scheme != "" {
		b.WriteString("//")
		b.WriteString(c.Host)
	}
	if c.Path != "" && !strings.HasPrefix(c.Path, "/") {
		b.WriteByte('/')
	}
	b.WriteString(c.Path)
	if q := c.Query.Encode(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String()
}

// Build is shorthand for Components{...}.String().
func Build(scheme, host, path string, query ...Pair) string {
	return Components{
		Scheme: scheme,
		Host:   host,
		Path:   path,
		Query:  query,
	}.String()
}

// Escape percent-encodes s for use as a query key or value, with spaces
// encoded as %20.
func Escape(s string) string {
	// QueryEscape already turns a literal "+" into %2B, so any "+" left
	// in its output stands for a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
