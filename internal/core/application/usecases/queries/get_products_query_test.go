package queries_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery_Success(t *testing.T) {
	query := queries.NewGetProductsQuery()

	require.NoError(t, query.Validate())
}

func TestGetProductsQuery_Validate_ZeroValueFails(t *testing.T) {
	var query queries.GetProductsQuery

	require.ErrorIs(t, query.Validate(), queries.ErrGetProductsQueryIsNotConstructed)
}
