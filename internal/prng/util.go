package prng

import "fmt"

func stateLengthError(name string, want, got int) error {
	return fmt.Errorf("prng: %s requires a %d-word state, got %d", name, want, got)
}
