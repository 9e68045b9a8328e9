package validation_test

import (
	"testing"

	"github.com/bnema/emojipick/internal/domain/validation"
	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, validation.IsHexColor("#4ade80"))
	assert.True(t, validation.IsHexColor("#FFFFFF"))
	assert.False(t, validation.IsHexColor("4ade80"))
	assert.False(t, validation.IsHexColor("#fff"))
	assert.False(t, validation.IsHexColor("#gggggg"))
	assert.False(t, validation.IsHexColor(""))
}

func TestValidateHexColors(t *testing.T) {
	errs := validation.ValidateHexColors("appearance.palette",
		validation.ColorField{Name: "text", Value: "#ffffff"},
		validation.ColorField{Name: "accent", Value: "green"},
	)
	assert.Equal(t, []string{"appearance.palette.accent must be a hex color like #RRGGBB"}, errs)
}
