package hullctx

import "fmt"

// wrapf mirrors the teacher's fmt.Errorf("flow: %w", ...) wrapping
// idiom, giving every error surfaced through a Context a consistent
// package prefix.
func wrapf(err error) error {
	return fmt.Errorf("hullctx: %w", err)
}
