package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSplitPart(t *testing.T) {
	part, err := GetSplitPart("a|b|c", "|", 1)
	assert.NoError(t, err)
	assert.Equal(t, "b", part)

	_, err = GetSplitPart("a|b", "|", 5)
	assert.Error(t, err)
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.ubereats.com/store/foo", "ubereats.com"},
		{"https://Example.COM/menu", "example.com"},
		{"http://order.joesdiner.com:8080/menu", "order.joesdiner.com"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HostOf(tt.in), tt.in)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Veggie Burger", CollapseWhitespace("  Veggie \n\t Burger  "))
	assert.Equal(t, "", CollapseWhitespace("   \n  "))
}
