// Package integrity validates the served catalogs.
//
// Catalog checks cover id uniqueness, slot shapes, skill references and the
// armor enumerations; the published check inspects the object storage copy.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/:check : Runs one check by name.
package integrity
