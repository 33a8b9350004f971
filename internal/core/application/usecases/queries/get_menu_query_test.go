package queries_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMenuQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetMenuQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}
