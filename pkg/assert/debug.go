//go:build debug

package assert

// Debug enables checks that are too hot for release builds.
const Debug = true
