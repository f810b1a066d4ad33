// Package nationbuilder provides types, interfaces, and helpers for working with the
// NationBuilder API v1.
//
// # Overview
//
// The nationbuilder package defines the domain types (Person, Tagging, List, Contact)
// and the interfaces for resource-oriented clients (PeopleClient, TagsClient,
// ListsClient, ContactsClient). A concrete implementation is provided by the nbclient
// package, which wires configuration, transport and authentication. Most consumers
// should import nbclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := nbclient.New(&nationbuilder.Config{Nation: "acme", AccessToken: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  person, err := cli.People().Get(ctx, 42)
//	  if err != nil { log.Fatal(err) }
//	  _ = person
//	}
//
// # Pagination
//
// NationBuilder pages are addressed with page and per_page. List methods return a
// single Page; methods taking a perPage argument walk every page and return the
// concatenated results.
//
// # Errors
//
// Every non-2xx response becomes a *ResponseError. Its Kind is NotFound for 404,
// BadRequest for 400 and Response for everything else. Use errors.Is with ErrNotFound,
// ErrBadRequest or ErrResponse, or the IsNotFound and IsBadRequest helpers.
//
// # TLS
//
// NationBuilder has historically served broken certificate chains, so certificate
// validation is skipped unless Config.VerifyTLS is set.
package nationbuilder
