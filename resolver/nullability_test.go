package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNullable(t *testing.T) {
	tests := []struct {
		name       string
		required   bool
		explicit   bool
		hasDefault bool
		nullBranch bool
		want       bool
	}{
		{name: "optional without default", want: true},
		{name: "required plain", required: true, want: false},
		{name: "optional with default", hasDefault: true, want: false},
		{name: "required but explicitly nullable", required: true, explicit: true, want: true},
		{name: "default but explicitly nullable", hasDefault: true, explicit: true, want: true},
		{name: "required null-union branch", required: true, nullBranch: true, want: true},
		{name: "everything set", required: true, explicit: true, hasDefault: true, nullBranch: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNullable(tt.required, tt.explicit, tt.hasDefault, tt.nullBranch)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureNullable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain type", in: "string", want: "*string"},
		{name: "already marked", in: "*string", want: "*string"},
		{name: "slice stays bare", in: "[]Product", want: "[]Product"},
		{name: "map stays bare", in: "map[string]any", want: "map[string]any"},
		{name: "any stays bare", in: "any", want: "any"},
		{name: "empty stays empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureNullable(tt.in)
			assert.Equal(t, tt.want, got)

			// Idempotence: applying the marker twice never stacks.
			assert.Equal(t, got, EnsureNullable(got))
		})
	}
}
