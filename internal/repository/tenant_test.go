//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"tenant-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

// TenantStoreRepositoryTestSuite tests the TenantStoreRepository
type TenantStoreRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantStoreRepository
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TenantStoreRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantStoreRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantStoreRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantStoreRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantStoreRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TenantStoreRepositoryTestSuite) insertDocs(collection string, docs ...bson.M) {
	coll := suite.baseTestSuite.DB.Master.Collection(collection)
	for _, doc := range docs {
		_, err := coll.InsertOne(suite.ctx, doc)
		suite.NoError(err)
	}
}

// TestProvision verifies a fresh collection materializes with its sentinel
func (suite *TenantStoreRepositoryTestSuite) TestProvision() {
	suite.NoError(suite.repo.Provision(suite.ctx, "tenant_acme-corp"))

	exists, err := suite.repo.Exists(suite.ctx, "tenant_acme-corp")
	suite.NoError(err)
	suite.True(exists)

	count, err := suite.repo.CountDocuments(suite.ctx, "tenant_acme-corp")
	suite.NoError(err)
	suite.Equal(int64(1), count)

	var sentinel bson.M
	err = suite.baseTestSuite.DB.Master.Collection("tenant_acme-corp").
		FindOne(suite.ctx, bson.M{}).Decode(&sentinel)
	suite.NoError(err)
	suite.Contains(sentinel, "_schema_version")
}

// TestCopyDocuments verifies every document lands in the destination with a
// fresh id, and the source stays untouched.
func (suite *TenantStoreRepositoryTestSuite) TestCopyDocuments() {
	suite.NoError(suite.repo.Provision(suite.ctx, "tenant_acme-corp"))
	suite.insertDocs("tenant_acme-corp",
		bson.M{"kind": "record", "value": 1},
		bson.M{"kind": "record", "value": 2},
	)

	copied, err := suite.repo.CopyDocuments(suite.ctx, "tenant_acme-corp", "tenant_globex")
	suite.NoError(err)
	suite.Equal(int64(3), copied) // sentinel travels too

	srcCount, err := suite.repo.CountDocuments(suite.ctx, "tenant_acme-corp")
	suite.NoError(err)
	suite.Equal(int64(3), srcCount)

	dstCount, err := suite.repo.CountDocuments(suite.ctx, "tenant_globex")
	suite.NoError(err)
	suite.Equal(int64(3), dstCount)

	// fresh ids: no destination document shares an id with the source
	srcIDs := suite.collectIDs("tenant_acme-corp")
	for _, id := range suite.collectIDs("tenant_globex") {
		suite.NotContains(srcIDs, id)
	}
}

func (suite *TenantStoreRepositoryTestSuite) collectIDs(collection string) []interface{} {
	cursor, err := suite.baseTestSuite.DB.Master.Collection(collection).Find(suite.ctx, bson.M{})
	suite.NoError(err)
	defer cursor.Close(suite.ctx)

	var ids []interface{}
	for cursor.Next(suite.ctx) {
		var doc bson.M
		suite.NoError(cursor.Decode(&doc))
		ids = append(ids, doc["_id"])
	}
	return ids
}

// TestCopyDocuments_EmptySource copies nothing from an absent collection
func (suite *TenantStoreRepositoryTestSuite) TestCopyDocuments_EmptySource() {
	copied, err := suite.repo.CopyDocuments(suite.ctx, "tenant_nothing-here", "tenant_globex")
	suite.NoError(err)
	suite.Equal(int64(0), copied)
}

// TestDrop removes the collection entirely
func (suite *TenantStoreRepositoryTestSuite) TestDrop() {
	suite.NoError(suite.repo.Provision(suite.ctx, "tenant_acme-corp"))
	suite.NoError(suite.repo.Drop(suite.ctx, "tenant_acme-corp"))

	exists, err := suite.repo.Exists(suite.ctx, "tenant_acme-corp")
	suite.NoError(err)
	suite.False(exists)
}

// TestListTenantCollections only reports the tenant namespace
func (suite *TenantStoreRepositoryTestSuite) TestListTenantCollections() {
	suite.NoError(suite.repo.Provision(suite.ctx, "tenant_acme-corp"))
	suite.NoError(suite.repo.Provision(suite.ctx, "tenant_globex"))
	suite.insertDocs("organizations", bson.M{"slug": "acme-corp"})

	tenants, err := suite.repo.ListTenantCollections(suite.ctx)
	suite.NoError(err)
	suite.Len(tenants, 2)
	suite.Contains(tenants, "tenant_acme-corp")
	suite.Contains(tenants, "tenant_globex")
	suite.NotContains(tenants, "organizations")
}

func TestTenantStoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantStoreRepositoryTestSuite))
}
