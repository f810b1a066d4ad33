// Package nbclient provides the primary entry point for constructing a
// NationBuilder API v1 client that implements the nationbuilder.Client interface.
//
// It validates configuration, derives the API root from the nation slug and wires
// the authorized session underneath the resource clients defined in the
// nationbuilder package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
//	  "github.com/fivetwenty-io/nbapi/pkg/nbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := nbclient.New(&nationbuilder.Config{
//	    Nation:      "acme",
//	    AccessToken: "0123abcd...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  me, err := cli.People().Me(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
//
// Construction never touches the network. A missing access token fails here, and
// the session itself is created on the first request.
//
// # Helpers
//
// NewWithToken builds a client from a nation slug and token. NewWithBaseURL
// targets an explicit API root. BaseURLForNation exposes the slug-to-root mapping.
package nbclient
