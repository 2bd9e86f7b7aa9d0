package cmd

import (
	"log/slog"

	httpin "deliveryledger/internal/adapters/in/http"
	"deliveryledger/internal/adapters/out/notification"
	"deliveryledger/internal/adapters/out/postgres"
	"deliveryledger/internal/adapters/out/postgres/auditrepo"
	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/application/usecases/queries"
	"deliveryledger/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	notifier      *notification.WebhookNotifier
	auditAppender *auditrepo.GormAuditAppender
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notifier, err := notification.NewWebhookNotifier(config.NotifierEndpoint, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:      notifier,
		auditAppender: auditrepo.NewGormAuditAppender(gormDB),
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.createUoWFactory(), c.notifier, c.auditAppender)
}

func (c *CompositionRoot) CreateTransitionPackageCommandHandler() commands.TransitionPackageCommandHandler {
	return commands.NewTransitionPackageCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateNotifyReceiverCommandHandler() commands.NotifyReceiverCommandHandler {
	return commands.NewNotifyReceiverCommandHandler(c.createUoWFactory(), c.notifier, c.auditAppender)
}

func (c *CompositionRoot) CreateCreatePodCommandHandler() commands.CreatePodCommandHandler {
	return commands.NewCreatePodCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateAttachPodDocumentCommandHandler() commands.AttachPodDocumentCommandHandler {
	return commands.NewAttachPodDocumentCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateLockPodCommandHandler() commands.LockPodCommandHandler {
	return commands.NewLockPodCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateAppendAuditCommandHandler() commands.AppendAuditCommandHandler {
	return commands.NewAppendAuditCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	return commands.NewRegisterStaffCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateDeactivateStaffCommandHandler() commands.DeactivateStaffCommandHandler {
	return commands.NewDeactivateStaffCommandHandler(c.createUoWFactory(), c.auditAppender)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPodQueryHandler() queries.GetPodQueryHandler {
	return queries.NewGetPodQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncollectedPackagesQueryHandler() queries.GetUncollectedPackagesQueryHandler {
	return queries.NewGetUncollectedPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingPackagesQueryHandler() queries.GetPendingPackagesQueryHandler {
	return queries.NewGetPendingPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveCallerQueryHandler() queries.ResolveCallerQueryHandler {
	return queries.NewResolveCallerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePackageCommandHandler(),
		c.CreateTransitionPackageCommandHandler(),
		c.CreateNotifyReceiverCommandHandler(),
		c.CreateCreatePodCommandHandler(),
		c.CreateAttachPodDocumentCommandHandler(),
		c.CreateLockPodCommandHandler(),
		c.CreateAppendAuditCommandHandler(),
		c.CreateRegisterStaffCommandHandler(),
		c.CreateDeactivateStaffCommandHandler(),
		c.CreateGetPackageQueryHandler(),
		c.CreateGetPodQueryHandler(),
		c.CreateGetAuditTrailQueryHandler(),
		c.CreateGetUncollectedPackagesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthMiddleware() httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware(
		[]byte(c.config.JWTSecret), c.CreateResolveCallerQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPendingPackagesQueryHandler(),
		c.CreateNotifyReceiverCommandHandler(),
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
