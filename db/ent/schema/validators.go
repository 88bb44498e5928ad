package schema

import "fmt"

// oneOf returns a string field validator accepting only the listed values.
func oneOf(values []string) func(string) error {
	return func(s string) error {
		for _, v := range values {
			if v == s {
				return nil
			}
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
