package queries_test

import (
	"testing"

	"deliveryledger/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetPendingPackagesQuery(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		query := queries.NewGetPendingPackagesQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetPendingPackagesQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetPendingPackagesQueryIsNotConstructed)
	})
}
