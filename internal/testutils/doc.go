// Package testutils provides testing utilities for the Pokedex API.
//
// This package contains helpers for:
//  1. Setting up test servers for API testing
//  2. Executing JSON requests against them
//  3. Asserting API responses
//  4. Building a valid configuration without touching the environment
package testutils
