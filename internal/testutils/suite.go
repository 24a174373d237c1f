package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"tenant-portal-backend/internal/config"
	"tenant-portal-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *database.DB
	sharedConfig   *config.Config
)

// BaseTestSuite wraps the shared Mongo container for integration suites.
type BaseTestSuite struct {
	suite.Suite
	DB       *database.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite initializes (once) the shared Mongo container and returns a per-suite wrapper.
// Call this in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedMongoContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
// This is automatically called by TestMain in main_test.go
func CleanupSharedContainer() {
	log.Println("Starting Docker container cleanup...")
	if sharedDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = sharedDB.Close(ctx)
		cancel()
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		} else {
			log.Println("Successfully purged Docker container")
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean the database
// here; the Docker container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB drops every collection in the master database, directory and
// tenant alike, then restores the uniqueness indexes. The Docker container
// persists across suites for speed.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := s.DB.Master.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		log.Printf("WARN: could not list collections: %v", err)
		return
	}
	for _, name := range names {
		if err := s.DB.Master.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: could not drop collection %s: %v", name, err)
		}
	}
	if err := s.DB.EnsureIndexes(ctx); err != nil {
		log.Printf("WARN: could not restore indexes: %v", err)
	}
}

// ------------------------------
// Shared Mongo container init
// ------------------------------

func initSharedMongoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("27017/tcp")
	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", hostPort)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		db, err := database.Initialize(ctx, uri, "master_db_test", nil)
		if err != nil {
			return err
		}
		if err := db.Ping(ctx); err != nil {
			return err
		}
		sharedDB = db
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:      "test",
		Port:             "8080",
		LogLevel:         "debug",
		MongoURI:         uri,
		MasterDBName:     "master_db_test",
		JWTSecret:        "integration-test-secret",
		JWTExpireMinutes: 60,
	}

	log.Printf("Shared Mongo ready on %s", hostPort)
	return nil
}
