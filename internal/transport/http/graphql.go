package http

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
)

// Query runs a GraphQL query against endpoint and decodes its "data" object into out.
// The request goes through the dispatcher's transport chain and per-request timeout.
func (d *Dispatcher) Query(ctx context.Context, endpoint, query string, vars map[string]any, out any) error {
	client := graphql.NewClient(endpoint, graphql.WithHTTPClient(d.httpClient))

	graphqlRequest := graphql.NewRequest(query)

	for name, value := range vars {
		graphqlRequest.Var(name, value)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := client.Run(ctx, graphqlRequest, out); err != nil {
		return fmt.Errorf("graphql query failed: %w", err)
	}

	return nil
}
