// +build udiv128debug

package udiv128

// debug enables internal invariant assertions. Build with -tags udiv128debug.
const debug = true
