package schema

import (
	"testing"

	"github.com/ecotally/ecotally/constants"
)

func TestOneOf(t *testing.T) {
	validate := oneOf(constants.AsStringSlice())

	for _, label := range constants.AsStringSlice() {
		if err := validate(label); err != nil {
			t.Errorf("validate(%q) = %v, want nil", label, err)
		}
	}
	for _, label := range []string{"", "groceries", "Gadgets"} {
		if err := validate(label); err == nil {
			t.Errorf("validate(%q) = nil, want error", label)
		}
	}
}
