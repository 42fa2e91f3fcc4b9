// Package version holds the library version reported to the remote service
// in the client-version header.
package version

// Version is the semantic version of the client library. Release builds may
// override it via -ldflags "-X".
var Version = "1.3.0"
