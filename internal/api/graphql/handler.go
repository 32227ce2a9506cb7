package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/voluntariados/volunteer-api/internal/api/metrics"
)

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// NewHandler returns the echo handler serving POST /graphql. Execution errors
// travel inside the result's errors array with a 200 status, as GraphQL
// clients expect.
func NewHandler(schema graphql.Schema) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req graphqlRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid graphql request")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request().Context(),
		})

		status := "ok"
		if len(result.Errors) > 0 {
			status = "error"
		}
		metrics.GraphQLRequestsTotal.WithLabelValues(status).Inc()

		return c.JSON(http.StatusOK, result)
	}
}
