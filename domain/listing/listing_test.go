package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/domain"
)

func TestGetFindAllOptions(t *testing.T) {
	opts, err := GetFindAllOptions(
		WithSeller("0xABC"),
		WithActive(true),
		WithIds(3, 1),
		WithPagination(0, 10),
		WithSort("_id"),
	)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("0xabc"), *opts.Seller)
	assert.True(t, *opts.Active)
	assert.Equal(t, []Id{3, 1}, opts.Ids)
	assert.Equal(t, int32(10), *opts.Limit)
	assert.Equal(t, "_id", *opts.Sort)

	_, err = GetFindAllOptions(WithPagination(-1, 10))
	assert.Equal(t, domain.ErrBadParamInput, err)
}

func TestIdString(t *testing.T) {
	assert.Equal(t, "42", Id(42).String())
}
