package playground

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	// playgroundURL is the URL path where the GraphiQL UI will be served
	playgroundURL = "/playground"

	// endpointURL is the GraphQL endpoint the UI sends queries to
	endpointURL = "/graphql"
)

// Register registers the GraphiQL handler on the given router
func Register(r chi.Router) {
	templateBytes := []byte(getTemplate(endpointURL))

	r.Get(playgroundURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(templateBytes)
	})
}

// getTemplate returns the HTML template for GraphiQL
func getTemplate(endpoint string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>GraphiQL</title>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
  <style>
    body { margin: 0; }
    #graphiql { height: 100vh; }
  </style>
</head>
<body>
<div id="graphiql"></div>
<script src="https://unpkg.com/react@18/umd/react.production.min.js" crossorigin></script>
<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js" crossorigin></script>
<script src="https://unpkg.com/graphiql@3/graphiql.min.js" crossorigin></script>
<script>
  const root = ReactDOM.createRoot(document.getElementById('graphiql'));
  root.render(
    React.createElement(GraphiQL, {
      fetcher: GraphiQL.createFetcher({ url: '%s' }),
    }),
  );
</script>
</body>
</html>
`, endpoint)
}
