//go:build !linux

package app

// watchMediaKeys is a no-op on non-Linux platforms.
func watchMediaKeys() *mediaKeys {
	return nil
}
