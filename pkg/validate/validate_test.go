package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("jane-doe"))
	assert.True(t, IsSlug("team-42"))
	assert.False(t, IsSlug("Jane-Doe"))
	assert.False(t, IsSlug("jane doe"))
	assert.False(t, IsSlug("jane_doe"))
	assert.False(t, IsSlug(""))
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#f47321"))
	assert.True(t, IsHexColor("#FF0000"))
	assert.False(t, IsHexColor("f47321"))
	assert.False(t, IsHexColor("#f473"))
	assert.False(t, IsHexColor("#f47321ff"))
	assert.False(t, IsHexColor("red"))
}

func TestIsAmountInRange(t *testing.T) {
	assert.True(t, IsAmountInRange(MinAmountCents))
	assert.True(t, IsAmountInRange(MaxAmountCents))
	assert.True(t, IsAmountInRange(5000))
	assert.False(t, IsAmountInRange(MinAmountCents-1))
	assert.False(t, IsAmountInRange(MaxAmountCents+1))
	assert.False(t, IsAmountInRange(0))
	assert.False(t, IsAmountInRange(-100))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jane-doe", Slugify("Jane Doe"))
	assert.Equal(t, "jane-q-doe", Slugify("Jane Q. Doe"))
	assert.Equal(t, "team-42", Slugify("Team #42"))
	assert.Equal(t, "jane", Slugify("  Jane  "))
}
