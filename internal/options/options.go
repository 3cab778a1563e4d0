// Package options holds small helpers shared by the functional-option
// surfaces of the loader and generator packages.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one input source flag is set,
// returning the none-set or multiple-set message as the error.
func ValidateSingleInputSource(noneMsg, multipleMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(noneMsg)
	case count > 1:
		return errors.New(multipleMsg)
	default:
		return nil
	}
}
