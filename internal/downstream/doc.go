// Package downstream provides the client facade for the sales-data service.
// All business logic, storage, and computation live behind this client; the
// gateway only forwards requests to it and receives either a payload or a
// typed failure. One client instance is constructed at startup and shared,
// immutably, across all requests.
package downstream
