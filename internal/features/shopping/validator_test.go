package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateItem(t *testing.T) {
	require.Error(t, ValidateCreateItem(&CreateItemRequest{Name: "   "}))
	require.Error(t, ValidateCreateItem(&CreateItemRequest{Name: "Milk", Category: "weapons"}))
	require.NoError(t, ValidateCreateItem(&CreateItemRequest{Name: "Milk", Category: "dairy"}))
	require.NoError(t, ValidateCreateItem(&CreateItemRequest{Name: "Milk"}), "category is optional")
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("dairy"))
	assert.True(t, IsValidCategory("other"))
	assert.False(t, IsValidCategory("Dairy"), "categories are a closed lowercase set")
	assert.False(t, IsValidCategory(""))
}
