package api

import (
	"net/url"
	"strings"
	"testing"

	"weather-cli/internal/domain/entity"
)

func mustQuery(t *testing.T, kind entity.QueryKind, value string) entity.Query {
	t.Helper()
	q, err := entity.NewQuery(kind, value)
	if err != nil {
		t.Fatalf("NewQuery(%v, %q): %v", kind, value, err)
	}
	return q
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name  string
		kind  entity.QueryKind
		value string
		want  string
	}{
		{name: "city", kind: entity.CityQuery, value: "London", want: "https://api.openweathermap.org/data/2.5/weather?APPID=key123&q=London"},
		{name: "zip", kind: entity.PostalCodeQuery, value: "94040", want: "https://api.openweathermap.org/data/2.5/weather?APPID=key123&zip=94040"},
		{name: "id", kind: entity.LocationIDQuery, value: "2643743", want: "https://api.openweathermap.org/data/2.5/weather?APPID=key123&id=2643743"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL("https://api.openweathermap.org", "key123", mustQuery(t, tt.kind, tt.value))
			if got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}

			parsed, err := url.Parse(got)
			if err != nil {
				t.Fatalf("invalid URL: %v", err)
			}
			params := parsed.Query()
			if len(params) != 2 {
				t.Errorf("expected exactly 2 query params, got %v", params)
			}
			if params.Get("APPID") != "key123" {
				t.Errorf("expected APPID=key123, got %v", params)
			}

			found := 0
			for _, p := range []string{"q", "zip", "id"} {
				if _, ok := params[p]; ok {
					found++
				}
			}
			if found != 1 {
				t.Errorf("expected exactly one of q/zip/id, got %v", params)
			}
		})
	}
}

func TestBuildURLEscapesValue(t *testing.T) {
	got := BuildURL("http://localhost:8080/", "k", mustQuery(t, entity.CityQuery, "São Paulo,br"))

	if !strings.HasPrefix(got, "http://localhost:8080/data/2.5/weather?") {
		t.Errorf("unexpected prefix in %q", got)
	}

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("invalid URL: %v", err)
	}
	if parsed.Query().Get("q") != "São Paulo,br" {
		t.Errorf("value did not survive escaping: %q", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("URL contains a raw space: %q", got)
	}
}

func TestBuildURLIsDeterministic(t *testing.T) {
	q := mustQuery(t, entity.CityQuery, "Berlin")
	first := BuildURL("https://h", "k", q)
	for i := 0; i < 20; i++ {
		if got := BuildURL("https://h", "k", q); got != first {
			t.Fatalf("BuildURL changed between calls: %q vs %q", first, got)
		}
	}
}
