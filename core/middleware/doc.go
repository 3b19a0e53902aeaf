// Package middleware groups the HTTP middleware of the catalog server.
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: assigns a request id (RayID) to every request, stores it in the
//     context for logger.WithRayID and echoes it in the X-Ray-ID header.
package middleware
