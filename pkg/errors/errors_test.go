package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(New(ErrCodeNotFound, "gone")))
	assert.Equal(t, ErrCodeInternalError, CodeOf(fmt.Errorf("plain error")))

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("outer: %w", New(ErrCodeReadOnly, "nope"))
	assert.Equal(t, ErrCodeReadOnly, CodeOf(wrapped))
	assert.True(t, IsReadOnly(wrapped))
}

func TestValidationFields(t *testing.T) {
	err := NewValidation(map[string]string{"phone": "phone must be 10 digits"})
	assert.True(t, IsValidation(err))
	assert.Equal(t, "phone must be 10 digits", FieldsOf(err)["phone"])

	single := NewFieldValidation("name", "name is required")
	assert.Contains(t, FieldsOf(single), "name")

	assert.Nil(t, FieldsOf(fmt.Errorf("plain error")))
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeIO, "writing collection leads", cause)
	assert.Contains(t, err.Error(), "IO_ERROR")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)
}
