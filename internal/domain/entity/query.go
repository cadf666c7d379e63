package entity

import (
	"errors"
	"fmt"
	"strings"

	"weather-cli/pkg/util/numberutils"
)

// QueryKind identifies how a Query locates a place.
type QueryKind int

const (
	CityQuery QueryKind = iota
	PostalCodeQuery
	LocationIDQuery
)

// Param returns the provider query parameter for the kind.
func (k QueryKind) Param() string {
	switch k {
	case PostalCodeQuery:
		return "zip"
	case LocationIDQuery:
		return "id"
	default:
		return "q"
	}
}

func (k QueryKind) String() string {
	switch k {
	case PostalCodeQuery:
		return "zip"
	case LocationIDQuery:
		return "id"
	default:
		return "city"
	}
}

// ParseQueryKind maps the command words "city", "zip" and "id" to a kind.
func ParseQueryKind(word string) (QueryKind, bool) {
	switch strings.ToLower(word) {
	case "city":
		return CityQuery, true
	case "zip":
		return PostalCodeQuery, true
	case "id":
		return LocationIDQuery, true
	}
	return CityQuery, false
}

// Query is one way of naming a location: exactly one kind with a non-empty value.
type Query struct {
	kind  QueryKind
	value string
}

// NewQuery validates value for kind. Location ids must be numeric.
func NewQuery(kind QueryKind, value string) (Query, error) {
	if kind < CityQuery || kind > LocationIDQuery {
		return Query{}, errors.New("unknown query kind")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Query{}, fmt.Errorf("empty %s query", kind)
	}
	if kind == LocationIDQuery && !numberutils.IsDigits(value) {
		return Query{}, fmt.Errorf("location id %q is not numeric", value)
	}
	return Query{kind: kind, value: value}, nil
}

func NewCityQuery(name string) (Query, error) {
	return NewQuery(CityQuery, name)
}

func NewPostalCodeQuery(code string) (Query, error) {
	return NewQuery(PostalCodeQuery, code)
}

func NewLocationIDQuery(id string) (Query, error) {
	return NewQuery(LocationIDQuery, id)
}

func (q Query) Kind() QueryKind {
	return q.kind
}

func (q Query) Value() string {
	return q.value
}

// Param returns the query parameter name, see QueryKind.Param.
func (q Query) Param() string {
	return q.kind.Param()
}

func (q Query) String() string {
	return fmt.Sprintf("%s %q", q.kind, q.value)
}
