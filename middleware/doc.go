// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID tags every request with an id (a UUID unless the client sent
X-Request-ID) and echoes it in the response header:

	server := http.Server{
		Handler: middleware.WithRequestID(middleware.Recover(mux)),
	}

Read it back with middleware.RequestID(r.Context()).

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /search", middleware.WithLogging(searchHandler.Search))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Panic Recovery

Recover logs a panicking handler and answers 500 instead of dropping the
connection.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
