package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tenant-portal-backend/internal/database/models"
	apperrors "tenant-portal-backend/internal/errors"
	"tenant-portal-backend/internal/mocks"
	"tenant-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

// duplicateKeyErr mimics the server-side unique index violation
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key error"}},
}

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrgs    *mocks.MockOrganizationRepositoryInterface
	mockAdmins  *mocks.MockAdminRepositoryInterface
	mockTenants *mocks.MockTenantStoreRepositoryInterface
	orgService  *service.OrganizationService
	validator   *validator.Validate
	ctx         context.Context
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAdmins = mocks.NewMockAdminRepositoryInterface(suite.ctrl)
	suite.mockTenants = mocks.NewMockTenantStoreRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.orgService = service.NewOrganizationService(suite.mockOrgs, suite.mockAdmins, suite.mockTenants, suite.validator)
	suite.ctx = context.Background()
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) sampleOrg(name, orgSlug string) *models.Organization {
	now := time.Now().UTC()
	return &models.Organization{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Slug:           orgSlug,
		CollectionName: "tenant_" + orgSlug,
		AdminID:        primitive.NewObjectID(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (suite *OrganizationServiceTestSuite) TestCreate_Success() {
	adminID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(nil, mongo.ErrNoDocuments)
	suite.mockTenants.EXPECT().Provision(gomock.Any(), "tenant_acme-corp").Return(nil)
	suite.mockAdmins.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, admin *models.Admin) error {
			admin.ID = adminID
			return nil
		})
	suite.mockOrgs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, org *models.Organization) error {
			assert.Equal(suite.T(), "Acme Corp", org.Name)
			assert.Equal(suite.T(), "acme-corp", org.Slug)
			assert.Equal(suite.T(), "tenant_acme-corp", org.CollectionName)
			assert.Equal(suite.T(), adminID, org.AdminID)
			org.ID = orgID
			return nil
		})
	suite.mockAdmins.EXPECT().SetOrganization(gomock.Any(), adminID, orgID).Return(nil)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), orgID.Hex(), resp.ID)
	assert.Equal(suite.T(), "Acme Corp", resp.OrganizationName)
	assert.Equal(suite.T(), "acme-corp", resp.OrganizationSlug)
	assert.Equal(suite.T(), "tenant_acme-corp", resp.CollectionName)
	assert.Equal(suite.T(), "admin@acme.example", resp.AdminEmail)
}

func (suite *OrganizationServiceTestSuite) TestCreate_SlugAlreadyTaken() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").
		Return(suite.sampleOrg("Acme Corp", "acme-corp"), nil)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestCreate_CollidingNamesShareASlug() {
	// "Acme Corp" and "ACME   CORP!!" normalize to the same slug.
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").
		Return(suite.sampleOrg("Acme Corp", "acme-corp"), nil)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "ACME   CORP!!",
		Email:            "other@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestCreate_NameWithoutSlugCharacters() {
	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "!!!",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOrganizationName)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_NameTooShort() {
	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "ab",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *OrganizationServiceTestSuite) TestCreate_DuplicateAdminEmail() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(nil, mongo.ErrNoDocuments)
	suite.mockTenants.EXPECT().Provision(gomock.Any(), "tenant_acme-corp").Return(nil)
	suite.mockAdmins.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKeyErr)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminExists)
}

func (suite *OrganizationServiceTestSuite) TestCreate_ConcurrentCreateLosesOnUniqueIndex() {
	// The read check passes, a concurrent create wins, the slug index rejects ours.
	adminID := primitive.NewObjectID()

	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(nil, mongo.ErrNoDocuments)
	suite.mockTenants.EXPECT().Provision(gomock.Any(), "tenant_acme-corp").Return(nil)
	suite.mockAdmins.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, admin *models.Admin) error {
			admin.ID = adminID
			return nil
		})
	suite.mockOrgs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKeyErr)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.example",
		PasswordHash:     "$2a$10$hash",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestGetByName_Success() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)
	suite.mockAdmins.EXPECT().GetByID(gomock.Any(), org.AdminID).Return(&models.Admin{
		ID:    org.AdminID,
		Email: "admin@acme.example",
	}, nil)

	resp, err := suite.orgService.GetByName(suite.ctx, "Acme Corp")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme-corp", resp.OrganizationSlug)
	assert.Equal(suite.T(), "tenant_acme-corp", resp.CollectionName)
	assert.Equal(suite.T(), "admin@acme.example", resp.AdminEmail)
}

func (suite *OrganizationServiceTestSuite) TestGetByName_NotFound() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "ghost-org").Return(nil, mongo.ErrNoDocuments)

	resp, err := suite.orgService.GetByName(suite.ctx, "Ghost Org")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestGetByName_MissingAdminDegradesToEmptyEmail() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)
	suite.mockAdmins.EXPECT().GetByID(gomock.Any(), org.AdminID).Return(nil, mongo.ErrNoDocuments)

	resp, err := suite.orgService.GetByName(suite.ctx, "Acme Corp")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "", resp.AdminEmail)
}

func (suite *OrganizationServiceTestSuite) TestGetByID_BadHexMapsToNotFound() {
	resp, err := suite.orgService.GetByID(suite.ctx, "not-a-hex-id")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestGetByID_StaleClaimMapsToNotFound() {
	orgID := primitive.NewObjectID()
	suite.mockOrgs.EXPECT().GetByID(gomock.Any(), orgID).Return(nil, mongo.ErrNoDocuments)

	resp, err := suite.orgService.GetByID(suite.ctx, orgID.Hex())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestRename_Success() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")

	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "globex").Return(nil, mongo.ErrNoDocuments)
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)
	suite.mockTenants.EXPECT().CopyDocuments(gomock.Any(), "tenant_acme-corp", "tenant_globex").Return(int64(42), nil)
	suite.mockOrgs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *models.Organization) error {
			assert.Equal(suite.T(), "Globex", updated.Name)
			assert.Equal(suite.T(), "globex", updated.Slug)
			assert.Equal(suite.T(), "tenant_globex", updated.CollectionName)
			return nil
		})

	result, err := suite.orgService.Rename(suite.ctx, "acme-corp", "Globex")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "globex", result.OrganizationSlug)
	assert.Equal(suite.T(), "tenant_acme-corp", result.OldCollection)
	assert.Equal(suite.T(), "tenant_globex", result.NewCollection)
	assert.Equal(suite.T(), int64(42), result.DocumentsCopied)
}

func (suite *OrganizationServiceTestSuite) TestRename_NewNameTaken() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "globex").
		Return(suite.sampleOrg("Globex", "globex"), nil)

	result, err := suite.orgService.Rename(suite.ctx, "acme-corp", "Globex")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestRename_CurrentNotFound() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "globex").Return(nil, mongo.ErrNoDocuments)
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "ghost-org").Return(nil, mongo.ErrNoDocuments)

	result, err := suite.orgService.Rename(suite.ctx, "ghost-org", "Globex")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestRename_InvalidNewName() {
	result, err := suite.orgService.Rename(suite.ctx, "acme-corp", "!!!")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOrganizationName)
}

func (suite *OrganizationServiceTestSuite) TestDelete_Success() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")

	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)
	drop := suite.mockTenants.EXPECT().Drop(gomock.Any(), "tenant_acme-corp").Return(nil)
	adminDelete := suite.mockAdmins.EXPECT().Delete(gomock.Any(), org.AdminID).Return(nil).After(drop)
	suite.mockOrgs.EXPECT().Delete(gomock.Any(), org.ID).Return(nil).After(adminDelete)

	err := suite.orgService.Delete(suite.ctx, "acme-corp", org.AdminID.Hex())

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestDelete_NotOwner() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)

	err := suite.orgService.Delete(suite.ctx, "acme-corp", primitive.NewObjectID().Hex())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationOwner)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *OrganizationServiceTestSuite) TestDelete_NotFound() {
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "ghost-org").Return(nil, mongo.ErrNoDocuments)

	err := suite.orgService.Delete(suite.ctx, "ghost-org", primitive.NewObjectID().Hex())

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestDelete_DropFailureStopsSequence() {
	org := suite.sampleOrg("Acme Corp", "acme-corp")
	suite.mockOrgs.EXPECT().GetBySlug(gomock.Any(), "acme-corp").Return(org, nil)
	suite.mockTenants.EXPECT().Drop(gomock.Any(), "tenant_acme-corp").Return(errors.New("storage down"))

	err := suite.orgService.Delete(suite.ctx, "acme-corp", org.AdminID.Hex())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to drop tenant storage")
}

func (suite *OrganizationServiceTestSuite) TestAuditStorage() {
	orgs := []models.Organization{
		*suite.sampleOrg("Acme Corp", "acme-corp"),
		*suite.sampleOrg("Globex", "globex"),
	}
	suite.mockOrgs.EXPECT().GetAll(gomock.Any()).Return(orgs, nil)
	// acme-corp present, globex missing, old-corp orphaned
	suite.mockTenants.EXPECT().ListTenantCollections(gomock.Any()).
		Return([]string{"tenant_acme-corp", "tenant_old-corp"}, nil)

	audit, err := suite.orgService.AuditStorage(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"tenant_old-corp"}, audit.OrphanedCollections)
	assert.Len(suite.T(), audit.MissingCollections, 1)
	assert.Equal(suite.T(), "globex", audit.MissingCollections[0].OrganizationSlug)
	assert.Equal(suite.T(), "tenant_globex", audit.MissingCollections[0].CollectionName)
}

func (suite *OrganizationServiceTestSuite) TestAuditStorage_CleanState() {
	orgs := []models.Organization{*suite.sampleOrg("Acme Corp", "acme-corp")}
	suite.mockOrgs.EXPECT().GetAll(gomock.Any()).Return(orgs, nil)
	suite.mockTenants.EXPECT().ListTenantCollections(gomock.Any()).
		Return([]string{"tenant_acme-corp"}, nil)

	audit, err := suite.orgService.AuditStorage(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), audit.OrphanedCollections)
	assert.Empty(suite.T(), audit.MissingCollections)
}

func (suite *OrganizationServiceTestSuite) TestPurgeOrphan_Success() {
	suite.mockOrgs.EXPECT().GetAll(gomock.Any()).
		Return([]models.Organization{*suite.sampleOrg("Acme Corp", "acme-corp")}, nil)
	suite.mockTenants.EXPECT().Exists(gomock.Any(), "tenant_old-corp").Return(true, nil)
	suite.mockTenants.EXPECT().Drop(gomock.Any(), "tenant_old-corp").Return(nil)

	err := suite.orgService.PurgeOrphan(suite.ctx, "tenant_old-corp")

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestPurgeOrphan_RefusesOutsideTenantNamespace() {
	err := suite.orgService.PurgeOrphan(suite.ctx, "organizations")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestPurgeOrphan_RefusesReferencedCollection() {
	suite.mockOrgs.EXPECT().GetAll(gomock.Any()).
		Return([]models.Organization{*suite.sampleOrg("Acme Corp", "acme-corp")}, nil)

	err := suite.orgService.PurgeOrphan(suite.ctx, "tenant_acme-corp")

	assert.ErrorIs(suite.T(), err, apperrors.ErrCollectionInUse)
}

func (suite *OrganizationServiceTestSuite) TestPurgeOrphan_MissingCollection() {
	suite.mockOrgs.EXPECT().GetAll(gomock.Any()).Return([]models.Organization{}, nil)
	suite.mockTenants.EXPECT().Exists(gomock.Any(), "tenant_gone").Return(false, nil)

	err := suite.orgService.PurgeOrphan(suite.ctx, "tenant_gone")

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
