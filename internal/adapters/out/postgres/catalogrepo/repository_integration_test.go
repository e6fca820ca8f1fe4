package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"remont/internal/adapters/out/postgres/catalogrepo"
	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogDirectoryIntegrationTestSuite provides integration tests for the
// catalog directories using PostgreSQL containers.
type CatalogDirectoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	categories *catalogrepo.GormCategoryDirectory
	addresses  *catalogrepo.GormAddressDirectory
	branches   *catalogrepo.GormBranchDirectory
}

func (suite *CatalogDirectoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.AddressDTO{},
		&catalogrepo.BranchDTO{},
	))
}

func (suite *CatalogDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE categories, addresses, branches").Error)
	suite.categories = catalogrepo.NewGormCategoryDirectory(suite.db)
	suite.addresses = catalogrepo.NewGormAddressDirectory(suite.db)
	suite.branches = catalogrepo.NewGormBranchDirectory(suite.db)
}

func (suite *CatalogDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestFindActive_ExistingCategory_ReturnsCategory() {
	ctx := context.Background()

	id := kernel.NewUUID()
	category, err := catalog.NewCategory(id, "სარეცხი მანქანები")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.categories.Add(ctx, category))

	found, err := suite.categories.FindActive(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(id, found.ID())
	suite.Equal("სარეცხი მანქანები", found.Name())
	suite.True(found.IsActive())
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestFindActive_UnknownCategory_ReturnsNotFoundError() {
	found, err := suite.categories.FindActive(context.Background(), kernel.NewUUID())

	suite.Nil(found)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestFind_ExistingAddress_RoundTripsPoint() {
	ctx := context.Background()

	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	point, err := kernel.NewGeoPoint(41.7151, 44.8271)
	suite.Require().NoError(err)
	address, err := catalog.NewAddress(id, ownerID, "ჭავჭავაძის 12", point)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addresses.Add(ctx, address))

	found, err := suite.addresses.Find(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(id, found.ID())
	suite.Equal(ownerID, found.OwnerID())
	suite.Equal("ჭავჭავაძის 12", found.Label())
	suite.InDelta(41.7151, found.Point().Lat(), 1e-9)
	suite.InDelta(44.8271, found.Point().Lng(), 1e-9)
	suite.True(found.IsOwnedBy(ownerID))
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestFind_UnknownAddress_ReturnsNotFoundError() {
	found, err := suite.addresses.Find(context.Background(), kernel.NewUUID())

	suite.Nil(found)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestGetAll_ReturnsEveryBranch() {
	ctx := context.Background()

	tbilisi, err := kernel.NewGeoPoint(41.7151, 44.8271)
	suite.Require().NoError(err)
	batumi, err := kernel.NewGeoPoint(41.6168, 41.6367)
	suite.Require().NoError(err)

	branch1, err := catalog.NewBranch(kernel.NewUUID(), "თბილისი", tbilisi, 25)
	suite.Require().NoError(err)
	branch2, err := catalog.NewBranch(kernel.NewUUID(), "ბათუმი", batumi, 15)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.branches.Add(ctx, branch1))
	suite.Require().NoError(suite.branches.Add(ctx, branch2))

	all, err := suite.branches.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Len(all, 2)
	for _, branch := range all {
		suite.Positive(branch.CoverageRadiusKm())
	}
}

func (suite *CatalogDirectoryIntegrationTestSuite) TestGetAll_NoBranches_ReturnsEmptySlice() {
	all, err := suite.branches.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(all)
}

func TestCatalogDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogDirectoryIntegrationTestSuite))
}
