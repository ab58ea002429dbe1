package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/ptr"
)

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Shops: []domain.Shop{
			{ID: 1, Name: "San Bong Chi Lang", Address: "12 Chi Lang, Hai Chau, Da Nang"},
			{ID: 2, Name: "San Bong Thanh Khe", Address: "5 Dien Bien Phu, Thanh Khe, Da Nang"},
		},
		Fields: []domain.Field{
			{ID: 10, ShopID: 1, Name: "San 5A", SportType: "soccer", PricePerHour: 150000, Address: "12 Chi Lang, Hai Chau, Da Nang", Status: domain.StatusAvailable},
			{ID: 11, ShopID: 2, Name: "San Tennis 1", SportType: "tennis", PricePerHour: 200000, Address: "5 Dien Bien Phu, Thanh Khe, Da Nang", Status: domain.StatusAvailable},
		},
		Images: []domain.FieldImage{
			{ID: 100, FieldID: 10, URL: "https://img.example.com/10-1.jpg"},
			{ID: 101, FieldID: 10, URL: "https://img.example.com/10-2.jpg"},
		},
		Reviews: []domain.Review{
			{ID: 200, FieldID: 10, CustomerID: 7, Rating: 5, Comment: "San dep"},
			{ID: 201, FieldID: 10, CustomerID: 8, Rating: 4, Comment: "Ok"},
		},
	}
}

func TestNewRepositoryBuildsJoin(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Count())

	j, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "San 5A", j.Name)
	assert.Equal(t, "San Bong Chi Lang", j.Shop.Name)
	assert.Len(t, j.Images, 2)
	assert.Len(t, j.Reviews, 2)
	assert.Equal(t, 4.5, j.AverageRating)

	// Поле без отзывов и картинок
	j, err = repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Empty(t, j.Images)
	assert.Empty(t, j.Reviews)
	assert.Equal(t, 0.0, j.AverageRating)
}

func TestNewRepositoryDanglingShop(t *testing.T) {
	ds := testDataset()
	ds.Fields = append(ds.Fields, domain.Field{ID: 12, ShopID: 999, Name: "Orphan"})

	_, err := NewRepository(ds)
	assert.ErrorIs(t, err, ErrShopReferenceBroken)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGetAllPreservesOrder(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(10), all[0].ID)
	assert.Equal(t, int64(11), all[1].ID)
}

func TestGetAllReturnsCopies(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	all[0].Name = "mutated"
	all[0].Images[0].URL = "mutated"

	fresh, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "San 5A", fresh.Name)
	assert.Equal(t, "https://img.example.com/10-1.jpg", fresh.Images[0].URL)
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	first, err := repo.Create(context.Background(), 1, domain.CreateFieldInput{
		Name:         "  San 7A  ",
		SportType:    "soccer",
		PricePerHour: 180000,
		Address:      "  34 Le Duan, Hai Chau, Da Nang ",
	})
	require.NoError(t, err)

	// max(10, 11) + 1
	assert.Equal(t, int64(12), first.ID)
	assert.Equal(t, "San 7A", first.Name)
	assert.Equal(t, "34 Le Duan, Hai Chau, Da Nang", first.Address)
	assert.Equal(t, domain.StatusAvailable, first.Status)
	assert.Empty(t, first.Images)
	assert.Empty(t, first.Reviews)
	assert.Equal(t, 0.0, first.AverageRating)

	second, err := repo.Create(context.Background(), 1, domain.CreateFieldInput{Name: "San 7B", SportType: "soccer"})
	require.NoError(t, err)
	assert.Equal(t, int64(13), second.ID)
	assert.Equal(t, 4, repo.Count())
}

func TestCreateNegativePriceClampedToZero(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	j, err := repo.Create(context.Background(), 1, domain.CreateFieldInput{
		Name:         "San X",
		SportType:    "soccer",
		PricePerHour: -50,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, j.PricePerHour)
}

func TestCreateUnknownShop(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), 999, domain.CreateFieldInput{Name: "San X"})
	assert.ErrorIs(t, err, ErrShopNotFound)
	assert.Equal(t, 2, repo.Count())
}

func TestCreateInvalidStatus(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), 1, domain.CreateFieldInput{
		Name:   "San X",
		Status: domain.FieldStatus("broken"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdatePartialPatch(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	j, err := repo.Update(context.Background(), 10, domain.UpdateFieldInput{
		PricePerHour: ptr.Ptr(175000.0),
	})
	require.NoError(t, err)

	// Меняется только цена, join-данные остаются прежними
	assert.Equal(t, 175000.0, j.PricePerHour)
	assert.Equal(t, "San 5A", j.Name)
	assert.Equal(t, 4.5, j.AverageRating)
	assert.Len(t, j.Images, 2)
}

func TestUpdateTrimsAndClamps(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	j, err := repo.Update(context.Background(), 10, domain.UpdateFieldInput{
		Name:         ptr.Ptr("  San 5A Renovated  "),
		Address:      ptr.Ptr(" 15 Chi Lang, Hai Chau, Da Nang "),
		PricePerHour: ptr.Ptr(-1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "San 5A Renovated", j.Name)
	assert.Equal(t, "15 Chi Lang, Hai Chau, Da Nang", j.Address)
	assert.Equal(t, 0.0, j.PricePerHour)
}

func TestUpdateUnknownID(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), 404, domain.UpdateFieldInput{Name: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrFieldNotFound)

	// Каталог не изменился
	assert.Equal(t, 2, repo.Count())
}

func TestUpdateInvalidStatusLeavesFieldUntouched(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), 10, domain.UpdateFieldInput{
		Name:   ptr.Ptr("Should not apply"),
		Status: ptr.Ptr(domain.FieldStatus("broken")),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	j, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "San 5A", j.Name)
}

func TestSetStatus(t *testing.T) {
	repo, err := NewRepository(testDataset())
	require.NoError(t, err)

	j, err := repo.SetStatus(context.Background(), 10, domain.StatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMaintenance, j.Status)

	_, err = repo.SetStatus(context.Background(), 404, domain.StatusClosed)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
