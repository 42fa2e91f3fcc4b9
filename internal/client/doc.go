// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the doppler-env command line application.
//
// It fetches the variables once and either prints them as dotenv or runs a
// command with the variables added to its environment.
package client
