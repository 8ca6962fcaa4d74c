// Package api is the HTTP client of the business-card REST backend.
//
// # Overview
//
// Client wraps a resty client configured with the backend base URL and two
// hooks:
//
//   - before every request the bearer token is read from a TokenSource and
//     attached as "Authorization: Bearer <token>", together with a fresh
//     X-Request-ID;
//   - after every response a 401 status triggers the UnauthorizedHandler
//     (session teardown) and is returned as an error matching ErrUnauthorized.
//
// # Error Handling
//
// Non-2xx responses are returned as *Error carrying the status and the
// backend "message", if any. Transport failures wrap ErrUnavailable. Use
// errors.Is / errors.As to match, and MessageOf to pick a user-facing text.
//
// # Endpoints
//
//	POST   /auth/login                       Login
//	POST   /auth/signup                      Signup
//	GET    /{userId}/cards/my-cards          ListCards
//	POST   /{userId}/cards/create            CreateCard
//	PUT    /{userId}/cards/my-cards/{cardId} UpdateCard
//	DELETE /{userId}/cards/my-cards/{cardId} DeleteCard
//	GET    /cards/{cardId}                   GetCard
//	GET    /cards/search?query=...           SearchCards
package api
