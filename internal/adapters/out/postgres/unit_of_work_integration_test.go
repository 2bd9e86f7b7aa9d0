package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "deliveryledger/internal/adapters/out/postgres"
	"deliveryledger/internal/adapters/out/postgres/auditrepo"
	"deliveryledger/internal/adapters/out/postgres/packagerepo"
	"deliveryledger/internal/adapters/out/postgres/podrepo"
	"deliveryledger/internal/adapters/out/postgres/staffrepo"
	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all
// tests. Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&packagerepo.PackageDTO{},
		&packagerepo.ItemDTO{},
		&podrepo.PodDTO{},
		&podrepo.PodCounterDTO{},
		&staffrepo.StaffDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE pods, pod_counters, package_items, packages, staff, audit_entries").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.PackageRepository(), "First instance should provide package repository")
	suite.NotNil(uow1.PodRepository(), "First instance should provide pod repository")
	suite.NotNil(uow2.StaffRepository(), "Second instance should provide staff repository")
	suite.NotNil(uow2.AuditRepository(), "Second instance should provide audit repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
	suite.Equal(testPackage.TrackingRef(), retrieved.TrackingRef())
}

// TestUnitOfWork_CollectionWorkflow runs the full collection flow in one
// transaction: the package walks to ReadyForCollection, a pod is recorded, the
// package is collected and the audit entry lands with everything else.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CollectionWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	clerk := createTestStaff(staff.Collection)
	err = uow.StaffRepository().Add(ctx, clerk)
	suite.Require().NoError(err)

	testPackage := createReadyPackage()
	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	reference, err := uow.PodRepository().NextReference(ctx, time.Now().Year())
	suite.Require().NoError(err)

	record, err := pod.NewPod(
		kernel.NewUUID(),
		reference,
		testPackage.ID(),
		pod.Snapshot{
			PackageRef:    testPackage.TrackingRef(),
			ReceiverEmail: testPackage.ReceiverEmail(),
			StaffName:     clerk.Name(),
			StaffEmail:    clerk.Email(),
		},
		clerk.ID(),
		"signatures/abc.png",
		time.Now().UTC(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = uow.PodRepository().Add(ctx, record)
	suite.Require().NoError(err)

	err = testPackage.Collect(clerk.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.PackageRepository().Update(ctx, testPackage)
	suite.Require().NoError(err)

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPackageCollected,
		audit.EntityPackage,
		testPackage.ID().String(),
		clerk.ID(),
		map[string]any{"podReference": reference.String()},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = uow.AuditRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the full state with a fresh unit of work.
	newUow := suite.factory.Create()

	retrievedPackage, err := newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Collected, retrievedPackage.Status())
	suite.NotNil(retrievedPackage.CollectedAt())

	retrievedPod, err := newUow.PodRepository().GetByPackageID(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(reference, retrievedPod.Reference())
	suite.Equal(clerk.Name(), retrievedPod.Snapshot().StaffName)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()
	testStaff := createTestStaff(staff.Warehouse)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	err = uow.StaffRepository().Add(ctx, testStaff)
	suite.Require().NoError(err)

	_, err = uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)

	_, err = uow.StaffRepository().Get(ctx, testStaff.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().Error(err, "Package should not exist after rollback")

	_, err = newUow.StaffRepository().Get(ctx, testStaff.ID())
	suite.Require().Error(err, "Staff should not exist after rollback")
}

// TestUnitOfWork_DenialAuditSurvivesRollback verifies that an entry written
// through the standalone appender persists even when the surrounding business
// transaction rolls back. Denial records must not vanish with the denied
// attempt.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DenialAuditSurvivesRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	appender := auditrepo.NewGormAuditAppender(suite.db)

	testPackage := createTestPackage()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	denial, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionTransitionDenied,
		audit.EntityPackage,
		testPackage.ID().String(),
		kernel.NewUUID(),
		map[string]any{"reason": "role driver may not collect"},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = appender.Append(ctx, denial)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().Error(err, "Package should not exist after rollback")

	var count int64
	err = suite.db.Model(&auditrepo.EntryDTO{}).
		Where("action = ?", string(audit.ActionTransitionDenied)).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count, "Denial entry should survive the rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	package1 := createTestPackage()
	package2 := createTestPackage()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.PackageRepository().Add(ctx, package1)
	suite.Require().NoError(err)

	err = uow2.PackageRepository().Add(ctx, package2)
	suite.Require().NoError(err)

	_, err = uow1.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "UOW1 should see package1")

	_, err = uow1.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "UOW1 should not see package2")

	_, err = uow2.PackageRepository().Get(ctx, package2.ID())
	suite.Require().NoError(err, "UOW2 should see package2")

	_, err = uow2.PackageRepository().Get(ctx, package1.ID())
	suite.Require().Error(err, "UOW2 should not see package1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "Package1 should persist after commit")

	_, err = newUow.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "Package2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()

	err := uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
}

// TestUnitOfWork_GetAllPendingConsistency verifies the pending-package read
// used by the redelivery job sees only committed pending rows.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllPendingConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	pendingPackage := createTestPackage()
	notifiedPackage := createTestPackage()

	err := uow.PackageRepository().Add(ctx, pendingPackage)
	suite.Require().NoError(err)
	err = uow.PackageRepository().Add(ctx, notifiedPackage)
	suite.Require().NoError(err)

	suite.Require().NoError(notifiedPackage.MarkNotified())
	err = uow.PackageRepository().Update(ctx, notifiedPackage)
	suite.Require().NoError(err)

	pending, err := uow.PackageRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(pendingPackage.ID(), pending[0].ID())
}

// createTestPackage creates a valid pending package for testing purposes.
func createTestPackage() *parcel.Package {
	item, _ := parcel.NewItem(2, "Monitor")
	pkg, _ := parcel.NewPackage(
		kernel.NewUUID(),
		kernel.GenerateTrackingRef(time.Now().UTC()),
		"receiver@example.com",
		"",
		"",
		nil,
		[]parcel.Item{item},
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	return pkg
}

// createReadyPackage creates a package walked to ReadyForCollection.
func createReadyPackage() *parcel.Package {
	pkg := createTestPackage()
	staffID := kernel.NewUUID()
	_ = pkg.MarkNotified()
	_ = pkg.Pickup(staffID, time.Now().UTC())
	_ = pkg.Receive(staffID, time.Now().UTC())
	return pkg
}

// createTestStaff creates a valid active staff member for testing purposes.
func createTestStaff(role staff.Role) *staff.Staff {
	member, _ := staff.NewStaff(
		kernel.NewUUID(),
		kernel.NewUUID().String(),
		"Dana Clerk",
		"dana@depot.example.com",
		role,
	)
	return member
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
