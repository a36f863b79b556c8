// Package directory is the client-side core of the user directory: it keeps
// a local mirror of the shared profile collection in sync with the remote
// store, drives the account lifecycle, and applies bulk moderation.
//
// The package talks to the outside world only through two contracts, Store
// and SessionProvider. Everything else (the mirror, the selection set, the
// composed view) is local state owned by one Session value that is passed
// explicitly to whatever presents it.
package directory
