package validator

import (
	"testing"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newTestDB(t *testing.T, v *Validator) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewGormPlugin(v, nil)))
	return db
}

func TestGormPlugin_Name(t *testing.T) {
	assert.Equal(t, "fieldvalidation", NewGormPlugin(New(), nil).Name())
}

func TestGormPlugin_CreateValid(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := validAccount()
	tx := db.Create(&acc)
	require.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "INSERT")
}

func TestGormPlugin_CreateInvalid(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := account{Email: "ops@example.com", Limits: limits{Min: 3, Max: 3}}
	tx := db.Create(&acc)

	var verr *validation.ValidationError
	require.ErrorAs(t, tx.Error, &verr)
	assert.Empty(t, tx.Statement.SQL.String())
	assert.Equal(t, []validation.FieldValidation{
		{Path: validation.Path{"limits", "min"}, Message: "must be < max"},
		{Path: validation.Path{"limits", "max"}, Message: "must be > min"},
	}, validation.FlattenValidationErrors(verr, nil))
}

func TestGormPlugin_CreateBatch(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	accounts := []account{validAccount(), {Email: "bad", Limits: limits{Min: 1, Max: 2}}, validAccount()}
	tx := db.Create(&accounts)

	flattened, ok := validation.Flatten(tx.Error, nil)
	require.True(t, ok)
	assert.Equal(t, []validation.FieldValidation{
		{Path: validation.Path{1, "email"}, Message: "must be a valid email address"},
	}, flattened)
}

func TestGormPlugin_SaveInvalid(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := validAccount()
	acc.ID = 7
	acc.Email = ""

	err := db.Save(&acc).Error
	assert.ErrorIs(t, err, validation.ErrValidationFailed)
}

func TestGormPlugin_ColumnUpdatesSkipped(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := account{ID: 7}
	err := db.Model(&acc).Updates(map[string]interface{}{"email": "not-validated"}).Error
	assert.NoError(t, err)
}

func TestGormPlugin_PartialStructUpdatesSkipped(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := validAccount()
	acc.ID = 7
	tx := db.Model(&acc).Updates(account{Limits: limits{Min: 1, Max: 5}})
	require.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "UPDATE")
}

func TestGormPlugin_SaveValidatesModel(t *testing.T) {
	db := newTestDB(t, newAccountValidator(t))

	acc := validAccount()
	acc.ID = 7
	tx := db.Save(&acc)
	require.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "UPDATE")

	acc.Limits = limits{Min: 4, Max: 2}
	flattened, ok := validation.Flatten(db.Save(&acc).Error, nil)
	require.True(t, ok)
	assert.Equal(t, []validation.FieldValidation{
		{Path: validation.Path{"limits", "min"}, Message: "must be < max"},
		{Path: validation.Path{"limits", "max"}, Message: "must be > min"},
	}, flattened)
}
