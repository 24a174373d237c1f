//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"tenant-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization record
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()
	org.ID = primitive.NilObjectID

	err := suite.repo.Create(suite.ctx, org)
	suite.NoError(err)
	suite.False(org.ID.IsZero())

	found, err := suite.repo.GetByID(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal(org.Slug, found.Slug)
	suite.Equal(org.CollectionName, found.CollectionName)
}

// TestCreate_DuplicateSlug verifies the unique slug index rejects a second
// record with the same slug.
func (suite *OrganizationRepositoryTestSuite) TestCreate_DuplicateSlug() {
	first := suite.factories.Organization.WithName("Acme Corp")
	first.ID = primitive.NilObjectID
	suite.NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.Organization.WithName("Acme Corp")
	second.ID = primitive.NilObjectID
	err := suite.repo.Create(suite.ctx, second)
	suite.Error(err)
	suite.True(mongo.IsDuplicateKeyError(err))
}

// TestGetBySlug tests slug lookups
func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.WithName("Acme Corp")
	org.ID = primitive.NilObjectID
	suite.NoError(suite.repo.Create(suite.ctx, org))

	found, err := suite.repo.GetBySlug(suite.ctx, "acme-corp")
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetBySlug(suite.ctx, "no-such-org")
	suite.ErrorIs(err, mongo.ErrNoDocuments)
}

// TestUpdate tests rewriting the mutable fields
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.WithName("Acme Corp")
	org.ID = primitive.NilObjectID
	suite.NoError(suite.repo.Create(suite.ctx, org))

	org.Name = "Globex"
	org.Slug = "globex"
	org.CollectionName = "tenant_globex"
	org.UpdatedAt = time.Now().UTC()
	suite.NoError(suite.repo.Update(suite.ctx, org))

	found, err := suite.repo.GetBySlug(suite.ctx, "globex")
	suite.NoError(err)
	suite.Equal("Globex", found.Name)
	suite.Equal("tenant_globex", found.CollectionName)

	_, err = suite.repo.GetBySlug(suite.ctx, "acme-corp")
	suite.ErrorIs(err, mongo.ErrNoDocuments)
}

// TestUpdate_Missing verifies updating a nonexistent record reports not found
func (suite *OrganizationRepositoryTestSuite) TestUpdate_Missing() {
	ghost := suite.factories.Organization.Create()
	err := suite.repo.Update(suite.ctx, ghost)
	suite.ErrorIs(err, mongo.ErrNoDocuments)
}

// TestDelete tests removing a record
func (suite *OrganizationRepositoryTestSuite) TestDelete() {
	org := suite.factories.Organization.Create()
	org.ID = primitive.NilObjectID
	suite.NoError(suite.repo.Create(suite.ctx, org))

	suite.NoError(suite.repo.Delete(suite.ctx, org.ID))

	_, err := suite.repo.GetByID(suite.ctx, org.ID)
	suite.ErrorIs(err, mongo.ErrNoDocuments)
}

// TestGetAll tests listing every record
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	names := []string{"Acme Corp", "Globex", "Initech"}
	for _, name := range names {
		org := suite.factories.Organization.WithName(name)
		org.ID = primitive.NilObjectID
		suite.NoError(suite.repo.Create(suite.ctx, org))
	}

	orgs, err := suite.repo.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Len(orgs, 3)

	slugs := make(map[string]bool)
	for _, org := range orgs {
		slugs[org.Slug] = true
	}
	suite.True(slugs["acme-corp"])
	suite.True(slugs["globex"])
	suite.True(slugs["initech"])
}

func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
