// Package config provides configuration loading, merging, and validation
// for the client.
//
// Configuration is assembled from up to three sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Explicit values supplied by the caller (or CLI flags)
//  2. Process environment variables (DOPPLER_*)
//  3. The local .env file
//
// [GetClientConfig] runs the full layered resolution and finishes with
// [StructuredConfig.ClientConfig], which validates the merged config and
// applies defaults.
package config
