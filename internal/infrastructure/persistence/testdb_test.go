package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with every table and
// the address equivalence index.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.StateModel{},
		&models.CityModel{},
		&models.AddressModel{},
		&models.ProductModel{},
		&models.PermissionModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
		&models.DeliveryModel{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX idx_addresses_equivalent ON addresses (lower(street), number, cep, city_id)`,
	).Error)
	return db
}

type seeded struct {
	sc, pr             models.StateModel
	joinville, curitiba models.CityModel
}

func seedLocations(t *testing.T, db *gorm.DB) seeded {
	t.Helper()
	s := seeded{
		sc: models.StateModel{Name: "Santa Catarina", Initials: "SC"},
		pr: models.StateModel{Name: "Paraná", Initials: "PR"},
	}
	require.NoError(t, db.Create(&s.sc).Error)
	require.NoError(t, db.Create(&s.pr).Error)

	s.joinville = models.CityModel{Name: "Joinville", StateID: s.sc.ID}
	s.curitiba = models.CityModel{Name: "Curitiba", StateID: s.pr.ID}
	require.NoError(t, db.Create(&s.joinville).Error)
	require.NoError(t, db.Create(&s.curitiba).Error)
	return s
}

func seedSale(t *testing.T, db *gorm.DB, productID uint64) models.SaleModel {
	t.Helper()
	sale := models.SaleModel{
		ClientID: 1,
		SellerID: 2,
		SaleDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.SaleItemModel{
			{ProductID: productID, Amount: 2, UnitPrice: decimal.RequireFromString("9.90")},
		},
	}
	require.NoError(t, db.Create(&sale).Error)
	return sale
}

// newMockGormDB opens gorm on a sqlmock connection using the postgres dialect
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gormDB, mock, mockDB
}
