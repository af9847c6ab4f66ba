package appwrite

import (
	"encoding/json"
	"net/url"
)

// Query is one predicate, ordering, or paging directive in the backend's
// query vocabulary. Queries serialize to JSON strings on the wire
type Query struct {
	Method    string  `json:"method"`
	Attribute string  `json:"attribute,omitempty"`
	Values    []any   `json:"values,omitempty"`
	Queries   []Query `json:"queries,omitempty"`
}

// OrderDesc sorts results by attribute, newest first
func OrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// Offset skips n results
func Offset(n int) Query { return Query{Method: "offset", Values: []any{n}} }

// Limit caps the result set at n
func Limit(n int) Query { return Query{Method: "limit", Values: []any{n}} }

// Equal matches documents whose attribute equals value
func Equal(attribute string, value any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: []any{value}}
}

// Search matches documents via the store's full-text index on attribute.
// Fails when no such index exists; callers are expected to degrade
func Search(attribute, term string) Query {
	return Query{Method: "search", Attribute: attribute, Values: []any{term}}
}

// Contains matches documents whose attribute contains the substring
func Contains(attribute, term string) Query {
	return Query{Method: "contains", Attribute: attribute, Values: []any{term}}
}

// Or combines sub-queries with a logical OR
func Or(queries ...Query) Query {
	return Query{Method: "or", Queries: queries}
}

// Encode serializes the query to its wire form
func (q Query) Encode() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// encodeQueries packs queries into url values under queries[]
func encodeQueries(queries []Query) url.Values {
	if len(queries) == 0 {
		return nil
	}
	v := url.Values{}
	for _, q := range queries {
		v.Add("queries[]", q.Encode())
	}
	return v
}
