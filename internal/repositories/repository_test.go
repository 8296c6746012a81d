package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"mainthub/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const assetSelect = "SELECT t.id, t.created_at, t.updated_at, t.asset_number, t.name, t.description, t.category, " +
	"t.manufacturer, t.model, t.serial_number, t.purchase_date, t.purchase_cost, t.status, t.location_id, t.notes, " +
	"CASE WHEN r_location.id IS NULL THEN NULL ELSE to_jsonb(r_location.*) END AS location " +
	"FROM assets t LEFT JOIN locations r_location ON r_location.id = t.location_id"

const assetReturning = "RETURNING id, created_at, updated_at, asset_number, name, description, category, " +
	"manufacturer, model, serial_number, purchase_date, purchase_cost, status, location_id, notes"

var assetColumns = []string{
	"id", "created_at", "updated_at", "asset_number", "name", "description", "category", "manufacturer",
	"model", "serial_number", "purchase_date", "purchase_cost", "status", "location_id", "notes",
}

func stringPtr(s string) *string { return &s }

func exact(sql string) string { return regexp.QuoteMeta(sql) }

type AssetRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    Repository[models.Asset]
	now     time.Time
	context context.Context
}

func (suite *AssetRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewAssetRepository(mock)
	suite.now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	suite.context = context.Background()
}

func (suite *AssetRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestAssetRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AssetRepoTestSuite))
}

// assetValues returns one scan row for a plain asset without relation.
func (suite *AssetRepoTestSuite) assetValues(id uuid.UUID, number, name string, locationID *uuid.UUID) []any {
	var description, category, manufacturer, model, serial, notes *string
	var purchaseDate *time.Time
	var cost *float64
	var status *models.AssetStatus
	return []any{
		id, &suite.now, &suite.now, number, name, description, category, manufacturer,
		model, serial, purchaseDate, cost, status, locationID, notes,
	}
}

func (suite *AssetRepoTestSuite) TestGetAll_OrdersByAssetNumberAndEmbedsLocation() {
	locationID := uuid.New()
	withLocation := uuid.New()
	withoutLocation := uuid.New()
	locationJSON := []byte(`{"id":"` + locationID.String() + `","name":"Boiler Room","description":null,"parent_location_id":null,"created_at":"2024-01-01T00:00:00+00:00","updated_at":null}`)

	rows := pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")).
		AddRow(append(suite.assetValues(withLocation, "A-001", "Pump", &locationID), locationJSON)...).
		AddRow(append(suite.assetValues(withoutLocation, "A-002", "Valve", nil), nil)...)

	suite.mock.ExpectQuery(exact(assetSelect + " ORDER BY t.asset_number ASC")).WillReturnRows(rows)

	assets, err := suite.repo.GetAll(suite.context)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), assets, 2)

	assert.Equal(suite.T(), "A-001", assets[0].AssetNumber)
	require.NotNil(suite.T(), assets[0].Location)
	assert.Equal(suite.T(), locationID, assets[0].Location.ID)
	assert.Equal(suite.T(), "Boiler Room", assets[0].Location.Name)

	assert.Equal(suite.T(), "A-002", assets[1].AssetNumber)
	assert.Nil(suite.T(), assets[1].Location)
}

func (suite *AssetRepoTestSuite) TestGetAll_EmptyTableReturnsEmptySlice() {
	suite.mock.ExpectQuery(exact(assetSelect)).
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")))

	assets, err := suite.repo.GetAll(suite.context)
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), assets)
	assert.Empty(suite.T(), assets)
}

func (suite *AssetRepoTestSuite) TestGetAll_StoreFailureIsFetchError() {
	suite.mock.ExpectQuery(exact(assetSelect)).WillReturnError(errors.New("connection reset"))

	assets, err := suite.repo.GetAll(suite.context)
	assert.Nil(suite.T(), assets)

	var fetchErr *FetchError
	require.ErrorAs(suite.T(), err, &fetchErr)
	assert.Equal(suite.T(), "asset", fetchErr.Kind)
	assert.Equal(suite.T(), "get_all", fetchErr.Op)
	assert.Contains(suite.T(), err.Error(), "connection reset")
}

func (suite *AssetRepoTestSuite) TestGetByID_Found() {
	id := uuid.New()
	rows := pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")).
		AddRow(append(suite.assetValues(id, "A-010", "Compressor", nil), nil)...)

	suite.mock.ExpectQuery(exact(assetSelect + " WHERE t.id = $1")).WithArgs(id).WillReturnRows(rows)

	asset, err := suite.repo.GetByID(suite.context, id)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), asset)
	assert.Equal(suite.T(), id, asset.ID)
	assert.Equal(suite.T(), "Compressor", asset.Name)
	require.NotNil(suite.T(), asset.CreatedAt)
	assert.Equal(suite.T(), suite.now, *asset.CreatedAt)
}

func (suite *AssetRepoTestSuite) TestGetByID_NotFoundIsAbsentNotError() {
	id := uuid.New()
	suite.mock.ExpectQuery(exact(assetSelect + " WHERE t.id = $1")).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	asset, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), asset)
}

func (suite *AssetRepoTestSuite) TestGetByID_StoreFailureIsFetchError() {
	id := uuid.New()
	suite.mock.ExpectQuery(exact(assetSelect + " WHERE t.id = $1")).WithArgs(id).WillReturnError(errors.New("timeout"))

	asset, err := suite.repo.GetByID(suite.context, id)
	assert.Nil(suite.T(), asset)
	var fetchErr *FetchError
	assert.ErrorAs(suite.T(), err, &fetchErr)
}

func (suite *AssetRepoTestSuite) TestGetByID_MismatchedRelationIsFetchError() {
	id := uuid.New()
	locationID := uuid.New()
	other := uuid.New()
	locationJSON := []byte(`{"id":"` + other.String() + `","name":"Roof"}`)
	rows := pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")).
		AddRow(append(suite.assetValues(id, "A-011", "Fan", &locationID), locationJSON)...)

	suite.mock.ExpectQuery(exact(assetSelect + " WHERE t.id = $1")).WithArgs(id).WillReturnRows(rows)

	asset, err := suite.repo.GetByID(suite.context, id)
	assert.Nil(suite.T(), asset)
	var fetchErr *FetchError
	require.ErrorAs(suite.T(), err, &fetchErr)
	assert.Contains(suite.T(), err.Error(), "does not match")
}

func (suite *AssetRepoTestSuite) TestSearch_MatchesTextColumnsCaseInsensitively() {
	rows := pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")).
		AddRow(append(suite.assetValues(uuid.New(), "A-001", "Pump", nil), nil)...)

	suite.mock.ExpectQuery(exact(assetSelect+" WHERE (t.asset_number ILIKE $1 OR t.name ILIKE $1 OR t.description ILIKE $1 "+
		"OR t.manufacturer ILIKE $1 OR t.model ILIKE $1 OR t.serial_number ILIKE $1) ORDER BY t.asset_number ASC")).
		WithArgs("%pump%").
		WillReturnRows(rows)

	assets, err := suite.repo.Search(suite.context, "  pump ")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), assets, 1)
}

func (suite *AssetRepoTestSuite) TestSearch_EscapesWildcards() {
	suite.mock.ExpectQuery(exact(assetSelect + " WHERE (")).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")))

	_, err := suite.repo.Search(suite.context, "50%_off")
	assert.NoError(suite.T(), err)
}

func (suite *AssetRepoTestSuite) TestSearch_EmptyQueryIsGetAll() {
	rows := pgxmock.NewRows(append(append([]string{}, assetColumns...), "location")).
		AddRow(append(suite.assetValues(uuid.New(), "A-001", "Pump", nil), nil)...).
		AddRow(append(suite.assetValues(uuid.New(), "A-002", "Valve", nil), nil)...)
	suite.mock.ExpectQuery(exact(assetSelect + " ORDER BY t.asset_number ASC")).WillReturnRows(rows)

	assets, err := suite.repo.Search(suite.context, "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), assets, 2)
	assert.Equal(suite.T(), "A-001", assets[0].AssetNumber)
	assert.Equal(suite.T(), "A-002", assets[1].AssetNumber)
}

func (suite *AssetRepoTestSuite) TestCreate_MissingRequiredFieldMakesNoStoreCall() {
	asset, err := suite.repo.Create(suite.context, models.Fields{"asset_number": "A-100"})
	assert.Nil(suite.T(), asset)

	var validationErr *ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "name", validationErr.Field)
	// TearDownTest fails on any unexpected call against the mock.
}

func (suite *AssetRepoTestSuite) TestCreate_BlankRequiredFieldIsMissing() {
	_, err := suite.repo.Create(suite.context, models.Fields{"asset_number": "A-100", "name": "   "})
	var validationErr *ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "name", validationErr.Field)
}

func (suite *AssetRepoTestSuite) TestCreate_UnknownFieldRejected() {
	_, err := suite.repo.Create(suite.context, models.Fields{"asset_number": "A-100", "name": "Pump", "colour": "red"})
	var validationErr *ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "colour", validationErr.Field)
}

func (suite *AssetRepoTestSuite) TestCreate_ServerAssignsIDAndTimestamps() {
	id := uuid.New()
	suite.mock.ExpectQuery(exact("INSERT INTO assets (asset_number, name, purchase_cost, created_at, updated_at) VALUES ($1, $2, $3, NOW(), NOW()) " + assetReturning)).
		WithArgs("A-100", "Pump", 1250.5).
		WillReturnRows(pgxmock.NewRows(assetColumns).AddRow(suite.assetValues(id, "A-100", "Pump", nil)...))

	asset, err := suite.repo.Create(suite.context, models.Fields{"asset_number": "A-100", "name": "Pump", "purchase_cost": "1250.5"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, asset.ID)
	assert.Equal(suite.T(), "A-100", asset.AssetNumber)
	assert.Equal(suite.T(), "Pump", asset.Name)
	assert.NotNil(suite.T(), asset.CreatedAt)
	assert.NotNil(suite.T(), asset.UpdatedAt)
}

func (suite *AssetRepoTestSuite) TestCreate_UniqueViolationKeepsStoreMessage() {
	storeErr := &pgconn.PgError{
		Code:    CodeUniqueViolation,
		Message: `duplicate key value violates unique constraint "assets_asset_number_key"`,
	}
	suite.mock.ExpectQuery(exact("INSERT INTO assets")).
		WithArgs("A-100", "Pump").
		WillReturnError(storeErr)

	asset, err := suite.repo.Create(suite.context, models.Fields{"asset_number": "A-100", "name": "Pump"})
	assert.Nil(suite.T(), asset)

	var persistErr *PersistError
	require.ErrorAs(suite.T(), err, &persistErr)
	assert.Equal(suite.T(), storeErr.Message, err.Error())
	assert.True(suite.T(), persistErr.Conflict())
	assert.False(suite.T(), persistErr.NotFound())
}

func (suite *AssetRepoTestSuite) TestUpdate_OnlyTouchesSuppliedFields() {
	id := uuid.New()
	suite.mock.ExpectQuery(exact("UPDATE assets SET name = $1, notes = $2, updated_at = NOW() WHERE id = $3 " + assetReturning)).
		WithArgs("Main Pump", nil, id).
		WillReturnRows(pgxmock.NewRows(assetColumns).AddRow(suite.assetValues(id, "A-100", "Main Pump", nil)...))

	asset, err := suite.repo.Update(suite.context, id, models.Fields{"name": "Main Pump", "notes": nil})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Main Pump", asset.Name)
	assert.Nil(suite.T(), asset.Notes)
}

func (suite *AssetRepoTestSuite) TestUpdate_MissingRowIsPersistNotFound() {
	id := uuid.New()
	suite.mock.ExpectQuery(exact("UPDATE assets SET name = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("Ghost", id).
		WillReturnError(pgx.ErrNoRows)

	asset, err := suite.repo.Update(suite.context, id, models.Fields{"name": "Ghost"})
	assert.Nil(suite.T(), asset)

	var persistErr *PersistError
	require.ErrorAs(suite.T(), err, &persistErr)
	assert.True(suite.T(), persistErr.NotFound())
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *AssetRepoTestSuite) TestUpdate_CannotClearRequiredField() {
	_, err := suite.repo.Update(suite.context, uuid.New(), models.Fields{"asset_number": nil})
	var validationErr *ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "asset_number", validationErr.Field)
}

func (suite *AssetRepoTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mock.ExpectExec(exact("DELETE FROM assets WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Delete(suite.context, id))
}

func (suite *AssetRepoTestSuite) TestDelete_ThenGetByIDIsAbsent() {
	id := uuid.New()
	suite.mock.ExpectExec(exact("DELETE FROM assets WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectQuery(exact(assetSelect + " WHERE t.id = $1")).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	require.NoError(suite.T(), suite.repo.Delete(suite.context, id))
	asset, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), asset)
}

func (suite *AssetRepoTestSuite) TestDelete_NoRowIsPersistNotFound() {
	id := uuid.New()
	suite.mock.ExpectExec(exact("DELETE FROM assets WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := suite.repo.Delete(suite.context, id)
	var persistErr *PersistError
	require.ErrorAs(suite.T(), err, &persistErr)
	assert.True(suite.T(), persistErr.NotFound())
}

func (suite *AssetRepoTestSuite) TestDelete_ForeignKeyViolation() {
	id := uuid.New()
	suite.mock.ExpectExec(exact("DELETE FROM assets WHERE id = $1")).
		WithArgs(id).
		WillReturnError(&pgconn.PgError{Code: CodeForeignKeyViolation, Message: "update or delete on table \"assets\" violates foreign key constraint"})

	err := suite.repo.Delete(suite.context, id)
	var persistErr *PersistError
	require.ErrorAs(suite.T(), err, &persistErr)
	assert.Equal(suite.T(), CodeForeignKeyViolation, persistErr.Code)
	assert.Contains(suite.T(), err.Error(), "violates foreign key constraint")
}

func TestServiceProviderSearch_CapsResults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	columns := []string{"id", "created_at", "updated_at", "name", "email", "phone", "role", "notes"}
	rows := pgxmock.NewRows(columns)
	for i := 0; i < 12; i++ {
		var email, phone, role, notes *string
		var ts *time.Time
		rows.AddRow(uuid.New(), ts, ts, string(rune('a'+i)), email, phone, role, notes)
	}
	mock.ExpectQuery(exact("FROM service_provider t ORDER BY t.name ASC")).WillReturnRows(rows)

	repo := NewServiceProviderRepository(mock)
	providers, err := repo.Search(context.Background(), " ")
	require.NoError(t, err)
	assert.Len(t, providers, 10)
	assert.Equal(t, "a", providers[0].Name)

	mock.ExpectQuery(exact("WHERE (t.name ILIKE $1 OR t.email ILIKE $1) ORDER BY t.name ASC LIMIT 10")).
		WithArgs("%smith%").
		WillReturnRows(pgxmock.NewRows(columns))
	_, err = repo.Search(context.Background(), "smith")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryCreate_CoercesNumericText(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	var description, category, unit, notes *string
	var cost *float64
	var locationID, supplierID *uuid.UUID
	var ts *time.Time
	columns := []string{"id", "created_at", "updated_at", "item_number", "name", "description", "category", "unit",
		"quantity", "minimum_quantity", "cost_per_unit", "location_id", "supplier_id", "notes"}

	mock.ExpectQuery(exact("INSERT INTO inventory (item_number, minimum_quantity, name, quantity, created_at, updated_at) VALUES ($1, $2, $3, $4, NOW(), NOW())")).
		WithArgs("INV-1", int64(2), "Filter", int64(12)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, ts, ts, "INV-1", "Filter", description, category, unit, 12, 2, cost, locationID, supplierID, notes))

	repo := NewInventoryItemRepository(mock)
	item, err := repo.Create(context.Background(), models.Fields{
		"item_number": "INV-1", "name": "Filter", "quantity": "12", "minimum_quantity": "2",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, item.Quantity)
	assert.Equal(t, 2, item.MinimumQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.Create(context.Background(), models.Fields{
		"item_number": "INV-2", "name": "Belt", "quantity": "twelve", "minimum_quantity": "2",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quantity", validationErr.Field)
}

func TestCategoryGetAll_OrderedByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	var ts *time.Time
	var noDescription *string
	mock.ExpectQuery(exact("SELECT t.id, t.created_at, t.updated_at, t.name, t.description FROM categories t ORDER BY t.name ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at", "name", "description"}).
			AddRow(uuid.New(), ts, ts, "HVAC", stringPtr("Heating and cooling")).
			AddRow(uuid.New(), ts, ts, "Pumps", noDescription))

	categories, err := NewCategoryRepository(mock).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "HVAC", categories[0].Name)
	assert.Equal(t, "Heating and cooling", *categories[0].Description)
	assert.Nil(t, categories[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
