package command

import (
	"fmt"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/model"
	"weather-cli/pkg/msg"
)

type queryError struct {
	Err error
}

func (e *queryError) Error() string {
	return "invalid query: " + e.Err.Error()
}

func (e *queryError) Unwrap() error {
	return e.Err
}

// buildQueries turns positional arguments into queries.
//
//	(none)             the default location, as a city
//	city|zip|id V...   every V as that kind
//	V...               every V as a city
func buildQueries(args []string, defaultLocation string) ([]entity.Query, error) {
	kind := entity.CityQuery
	explicit := false
	if len(args) > 0 {
		if k, ok := entity.ParseQueryKind(args[0]); ok {
			kind, explicit, args = k, true, args[1:]
		}
	}

	if len(args) == 0 {
		if explicit {
			return nil, &queryError{Err: fmt.Errorf("missing value after %s", kind)}
		}
		if defaultLocation == "" {
			return nil, &model.ConfigurationError{Reason: msg.GetMessage("config.missing-location")}
		}
		args = []string{defaultLocation}
	}

	queries := make([]entity.Query, 0, len(args))
	for _, arg := range args {
		q, err := entity.NewQuery(kind, arg)
		if err != nil {
			return nil, &queryError{Err: err}
		}
		queries = append(queries, q)
	}
	return queries, nil
}
