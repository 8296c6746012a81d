package listview

import (
	"testing"
	"time"

	"mainthub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func numbers(assets []*models.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.AssetNumber
	}
	return out
}

func TestSortBy_StringFieldBothDirections(t *testing.T) {
	snapshot := []*models.Asset{
		{AssetNumber: "A3", Name: "Valve"},
		{AssetNumber: "A1", Name: "Pump"},
		{AssetNumber: "A2", Name: "Fan"},
	}
	view := New(snapshot)

	asc, err := view.SortBy("asset_number", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "A3"}, numbers(asc))

	desc, err := view.SortBy("asset_number", Desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A3", "A2", "A1"}, numbers(desc))

	// the snapshot itself is never reordered
	assert.Equal(t, []string{"A3", "A1", "A2"}, numbers(view.Items()))
	assert.Equal(t, []string{"A3", "A1", "A2"}, numbers(snapshot))
}

func TestSortBy_IsCaseSensitive(t *testing.T) {
	view := New([]*models.Asset{{AssetNumber: "b"}, {AssetNumber: "B"}, {AssetNumber: "a"}})

	sorted, err := view.SortBy("asset_number", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "a", "b"}, numbers(sorted))
}

func TestSortBy_NilStringsSortAsEmpty(t *testing.T) {
	view := New([]*models.Asset{
		{AssetNumber: "A1", Manufacturer: strPtr("Grundfos")},
		{AssetNumber: "A2"},
		{AssetNumber: "A3", Manufacturer: strPtr("ABB")},
	})

	sorted, err := view.SortBy("manufacturer", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "A3", "A1"}, numbers(sorted))
}

func TestSortBy_TiesKeepSnapshotOrderInBothDirections(t *testing.T) {
	status := models.AssetInService
	other := models.AssetOther
	view := New([]*models.Asset{
		{AssetNumber: "A1", Status: &status},
		{AssetNumber: "A2", Status: &other},
		{AssetNumber: "A3", Status: &status},
		{AssetNumber: "A4", Status: &other},
	})

	asc, err := view.SortBy("status", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A3", "A2", "A4"}, numbers(asc))

	desc, err := view.SortBy("status", Desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "A4", "A1", "A3"}, numbers(desc))
}

func TestSortBy_DatesCompareAsInstants(t *testing.T) {
	early := time.Date(2023, 1, 1, 23, 0, 0, 0, time.FixedZone("X", -5*3600))
	late := time.Date(2023, 1, 2, 1, 0, 0, 0, time.UTC)
	view := New([]*models.Asset{
		{AssetNumber: "late", PurchaseDate: &late},
		{AssetNumber: "none"},
		{AssetNumber: "early", PurchaseDate: &early},
	})

	sorted, err := view.SortBy("purchase_date", Asc)
	require.NoError(t, err)
	// early is 04:00 UTC on the 2nd, so it sorts after late (01:00 UTC)
	assert.Equal(t, []string{"none", "late", "early"}, numbers(sorted))
}

func TestSortBy_EmbeddedTimestamps(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	view := New([]*models.Asset{
		{Base: models.Base{CreatedAt: &second}, AssetNumber: "second"},
		{Base: models.Base{CreatedAt: &first}, AssetNumber: "first"},
	})

	sorted, err := view.SortBy("created_at", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, numbers(sorted))
}

func TestSortBy_NumericFields(t *testing.T) {
	view := New([]*models.InventoryItem{
		{ItemNumber: "I1", Quantity: 10},
		{ItemNumber: "I2", Quantity: 9},
		{ItemNumber: "I3", Quantity: 100},
	})

	sorted, err := view.SortBy("quantity", Asc)
	require.NoError(t, err)
	got := []string{sorted[0].ItemNumber, sorted[1].ItemNumber, sorted[2].ItemNumber}
	assert.Equal(t, []string{"I2", "I1", "I3"}, got)
}

func TestSortBy_UUIDUsesStringForm(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	view := New([]*models.Asset{
		{Base: models.Base{ID: high}, AssetNumber: "high"},
		{Base: models.Base{ID: low}, AssetNumber: "low"},
	})

	sorted, err := view.SortBy("id", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "high"}, numbers(sorted))
}

func TestSortBy_UnknownAndRelationFields(t *testing.T) {
	view := New([]*models.Asset{{AssetNumber: "A1"}})

	_, err := view.SortBy("colour", Asc)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = view.SortBy("location", Asc)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = view.SortBy("name", Direction("sideways"))
	assert.Error(t, err)
}

func TestToggleSort(t *testing.T) {
	view := New([]*models.Asset{{AssetNumber: "A1", Name: "b"}, {AssetNumber: "A2", Name: "a"}})
	assert.Equal(t, State{}, view.State())

	_, err := view.ToggleSort("name")
	require.NoError(t, err)
	assert.Equal(t, State{Field: "name", Direction: Asc}, view.State())

	sorted, err := view.ToggleSort("name")
	require.NoError(t, err)
	assert.Equal(t, State{Field: "name", Direction: Desc}, view.State())
	assert.Equal(t, []string{"A1", "A2"}, numbers(sorted))

	_, err = view.ToggleSort("name")
	require.NoError(t, err)
	assert.Equal(t, State{Field: "name", Direction: Asc}, view.State())

	_, err = view.ToggleSort("asset_number")
	require.NoError(t, err)
	assert.Equal(t, State{Field: "asset_number", Direction: Asc}, view.State())
}

func TestToggleSort_UnknownFieldKeepsState(t *testing.T) {
	view := New([]*models.Asset{{AssetNumber: "A1"}})
	_, err := view.SortBy("name", Desc)
	require.NoError(t, err)

	_, err = view.ToggleSort("nope")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, State{Field: "name", Direction: Desc}, view.State())
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Asc, dir)

	dir, err = ParseDirection(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, Desc, dir)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}
