package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/repo"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

func TestDefaultCatalog(t *testing.T) {
	products := DefaultCatalog()
	require.Len(t, products, 24)

	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NoError(t, validation.CheckProduct(p), p.Name)
	}

	r := repo.NewInMemoryProductRepository()
	require.NoError(t, r.Seed(products...))
	assert.Equal(t, 24, r.Len())
}

func TestImportCSV(t *testing.T) {
	data := `Name,Price,Category,Stock,Description
Standing Desk,499,Home,19,Electric desk
Broken,-5,Home,1,
Desk Lamp,69,Home,,Adjustable
,10,,-1,
`
	r := repo.NewInMemoryProductRepository()

	result, err := ImportCSV(strings.NewReader(data), r)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, models.FieldErrors{models.FieldPrice: validation.MsgPositivePrice}, result.Errors[0].Errors)
	assert.Equal(t, 5, result.Errors[1].Row)
	assert.Len(t, result.Errors[1].Errors, 3)
	assert.Equal(t, "row 3: price must be a positive number greater than 0", result.Errors[0].Error())

	all := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Standing Desk", all[0].Name)
	assert.Equal(t, "Desk Lamp", all[1].Name)
	assert.Equal(t, 0, all[1].Stock)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("name,category\nDesk,Home\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"price"`)
}
