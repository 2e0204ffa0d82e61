package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("asha@example.com"))
	assert.True(t, validEmail("asha.verma+leads@example.co.in"))
	assert.True(t, validEmail(" asha@example.com "))

	assert.False(t, validEmail(""))
	assert.False(t, validEmail("asha"))
	assert.False(t, validEmail("asha@"))
	assert.False(t, validEmail("asha@example"))
	assert.False(t, validEmail("@example.com"))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "9876543210", phoneDigits("98765-43210"))
	assert.Equal(t, "9876543210", phoneDigits("(987) 654 3210"))
	assert.Equal(t, "", phoneDigits("no digits here"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("9876543210"))
	assert.True(t, validPhone("98765 43210"))

	assert.False(t, validPhone("987654321"))
	assert.False(t, validPhone("98765432101"))
	assert.False(t, validPhone(""))
}
