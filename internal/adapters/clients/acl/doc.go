// Package acl translates between external service DTOs and domain types.
//
// It is the anti-corruption boundary for downstream integrations: external
// DTOs never leak into the domain, external error codes map to domain
// errors, and external data is validated before domain objects are built.
//
// # Package Components
//
//   - [BaseAdapter]: embeddable struct with request plumbing and error mapping
//   - [ErrorResponse]: external error body parsing (nested, flat and
//     errors-array formats)
//   - [MapHTTPError]: HTTP status code to domain error mapping
//   - [DecodeResponse]: generic JSON response decoder
//   - [TranslateSlice], [TranslateMap]: batch translation helpers
//   - [ClerkAdapter]: the identity provider integration
//
// # Creating an Adapter
//
//  1. Define external DTOs (unexported, in your adapter file)
//  2. Embed [BaseAdapter] for common functionality
//  3. Implement translation methods that validate and convert
//  4. Let [BaseAdapter.Get] and friends handle error mapping
//
// # Error Handling Strategy
//
// External failures of every shape (status codes, error bodies, transport
// errors) are translated to domain errors:
//   - 404 Not Found → [domain.ErrNotFound]
//   - 401 Unauthorized → [domain.ErrUnauthenticated]
//   - 403 Forbidden → [domain.ErrForbidden]
//   - 400/422 Validation → [domain.ErrValidation]
//   - 429/5xx/Network → [domain.ErrUnavailable]
//
// Client-level errors ([clients.ErrCircuitOpen], [clients.ErrMaxRetriesExceeded])
// are also translated to [domain.ErrUnavailable] with appropriate context.
package acl
