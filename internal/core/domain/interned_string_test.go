package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/risteon/ic-workspace/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("core")
	is2 := domain.NewInternedString("core")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}
	if is1 != is2 {
		t.Error("Expected identifiers to compare equal")
	}
	if is1.String() != "core" {
		t.Errorf("Expected String() to return %q, got %q", "core", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.False(t, domain.NewInternedString("x").IsZero())
}

func TestInternedStringJSON(t *testing.T) {
	type record struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(record{Name: domain.NewInternedString("mapping")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"mapping"}`, string(data))

	var decoded record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.NewInternedString("mapping"), decoded.Name)
}

func TestCanonicalizeIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, nil},
		{"sorted and deduplicated", []string{"c", "a", "b", "a"}, []string{"a", "b", "c"}},
		{"empty names dropped", []string{"", "b", ""}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CanonicalizeIDs(domain.NewInternedStrings(tt.input))
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, domain.Strings(got))
		})
	}
}
