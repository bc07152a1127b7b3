//go:build !debug

package assert

const Debug = false
