// +build !udiv128debug

package udiv128

const debug = false
