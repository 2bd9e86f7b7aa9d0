// Package http provides the inbound HTTP adapter. The server implements the
// generated ServerInterface and translates between wire types and the
// application's commands and queries.
package http

import (
	"net/http"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/application/usecases/queries"
	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler     commands.CreatePackageCommandHandler
	transitionPackageHandler commands.TransitionPackageCommandHandler
	notifyReceiverHandler    commands.NotifyReceiverCommandHandler
	createPodHandler         commands.CreatePodCommandHandler
	attachPodDocumentHandler commands.AttachPodDocumentCommandHandler
	lockPodHandler           commands.LockPodCommandHandler
	appendAuditHandler       commands.AppendAuditCommandHandler
	registerStaffHandler     commands.RegisterStaffCommandHandler
	deactivateStaffHandler   commands.DeactivateStaffCommandHandler

	// Query handlers
	getPackageHandler             queries.GetPackageQueryHandler
	getPodHandler                 queries.GetPodQueryHandler
	getAuditTrailHandler          queries.GetAuditTrailQueryHandler
	getUncollectedPackagesHandler queries.GetUncollectedPackagesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPackageHandler commands.CreatePackageCommandHandler,
	transitionPackageHandler commands.TransitionPackageCommandHandler,
	notifyReceiverHandler commands.NotifyReceiverCommandHandler,
	createPodHandler commands.CreatePodCommandHandler,
	attachPodDocumentHandler commands.AttachPodDocumentCommandHandler,
	lockPodHandler commands.LockPodCommandHandler,
	appendAuditHandler commands.AppendAuditCommandHandler,
	registerStaffHandler commands.RegisterStaffCommandHandler,
	deactivateStaffHandler commands.DeactivateStaffCommandHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	getPodHandler queries.GetPodQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	getUncollectedPackagesHandler queries.GetUncollectedPackagesQueryHandler,
) *Server {
	return &Server{
		createPackageHandler:          createPackageHandler,
		transitionPackageHandler:      transitionPackageHandler,
		notifyReceiverHandler:         notifyReceiverHandler,
		createPodHandler:              createPodHandler,
		attachPodDocumentHandler:      attachPodDocumentHandler,
		lockPodHandler:                lockPodHandler,
		appendAuditHandler:            appendAuditHandler,
		registerStaffHandler:          registerStaffHandler,
		deactivateStaffHandler:        deactivateStaffHandler,
		getPackageHandler:             getPackageHandler,
		getPodHandler:                 getPodHandler,
		getAuditTrailHandler:          getAuditTrailHandler,
		getUncollectedPackagesHandler: getUncollectedPackagesHandler,
	}
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.ItemInput{
			Quantity:    item.Quantity,
			Description: item.Description,
		})
	}

	var deliveryLocationID *kernel.UUID
	if body.DeliveryLocationId != nil {
		id, err := kernel.UUIDFromBytes((*body.DeliveryLocationId)[:])
		if err != nil {
			return badRequest(ctx, "Invalid delivery location id")
		}
		deliveryLocationID = &id
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(
		packageID,
		string(body.ReceiverEmail),
		fromOptString(body.Notes),
		fromOptString(body.PurchaseOrder),
		deliveryLocationID,
		items,
		caller,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPackageQueryByID(packageID)
	if err != nil {
		return writeError(ctx, err)
	}
	created, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PackageCreated{
		Id:          packageID.Bytes(),
		TrackingRef: created.TrackingRef,
	})
}

// GetUncollectedPackages handles GET /api/v1/packages/uncollected.
func (s *Server) GetUncollectedPackages(ctx echo.Context) error {
	query := queries.NewGetUncollectedPackagesQuery()

	packages, err := s.getUncollectedPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.PackageSummary, len(packages))
	for i, pkg := range packages {
		response[i] = servers.PackageSummary{
			Id:            pkg.ID.Bytes(),
			TrackingRef:   pkg.TrackingRef,
			Status:        pkg.Status,
			ReceiverEmail: pkg.ReceiverEmail,
			CreatedAt:     pkg.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPackageById handles GET /api/v1/packages/{packageId}.
func (s *Server) GetPackageById(ctx echo.Context, packageId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	query, err := queries.NewGetPackageQueryByID(id)
	if err != nil {
		return writeError(ctx, err)
	}

	pkg, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// GetPackageByTrackingRef handles GET /api/v1/packages/by-ref/{trackingRef}.
func (s *Server) GetPackageByTrackingRef(ctx echo.Context, trackingRef string) error {
	query, err := queries.NewGetPackageQueryByTrackingRef(trackingRef)
	if err != nil {
		return writeError(ctx, err)
	}

	pkg, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// TransitionPackage handles POST /api/v1/packages/{packageId}/transitions.
func (s *Server) TransitionPackage(ctx echo.Context, packageId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewTransition
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	transition, err := parcel.TransitionFromString(string(body.Transition))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionPackageCommand(id, transition, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.transitionPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotifyReceiver handles POST /api/v1/packages/{packageId}/notifications.
func (s *Server) NotifyReceiver(ctx echo.Context, packageId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	id, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	cmd, err := commands.NewNotifyReceiverCommand(id, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.notifyReceiverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// CreatePod handles POST /api/v1/packages/{packageId}/pod.
func (s *Server) CreatePod(ctx echo.Context, packageId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewPod
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(packageId[:])
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	podID := kernel.NewUUID()
	cmd, err := commands.NewCreatePodCommand(podID, id, body.SignatureRef, body.SignedAt, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createPodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPodQueryByID(podID)
	if err != nil {
		return writeError(ctx, err)
	}
	record, err := s.getPodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPodResponse(record))
}

// GetPodById handles GET /api/v1/pods/{podId}.
func (s *Server) GetPodById(ctx echo.Context, podId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(podId[:])
	if err != nil {
		return badRequest(ctx, "Invalid pod id")
	}

	query, err := queries.NewGetPodQueryByID(id)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.getPodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPodResponse(record))
}

// GetPodByReference handles GET /api/v1/pods/by-reference/{reference}.
func (s *Server) GetPodByReference(ctx echo.Context, reference string) error {
	query, err := queries.NewGetPodQueryByReference(reference)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.getPodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPodResponse(record))
}

// AttachPodDocument handles POST /api/v1/pods/{podId}/document.
func (s *Server) AttachPodDocument(ctx echo.Context, podId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewPodDocument
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(podId[:])
	if err != nil {
		return badRequest(ctx, "Invalid pod id")
	}

	cmd, err := commands.NewAttachPodDocumentCommand(id, body.DocumentRef, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachPodDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LockPod handles POST /api/v1/pods/{podId}/lock.
func (s *Server) LockPod(ctx echo.Context, podId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	id, err := kernel.UUIDFromBytes(podId[:])
	if err != nil {
		return badRequest(ctx, "Invalid pod id")
	}

	cmd, err := commands.NewLockPodCommand(id, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.lockPodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QueryAudit handles GET /api/v1/audit.
func (s *Server) QueryAudit(ctx echo.Context, params servers.QueryAuditParams) error {
	filter := queries.AuditTrailFilter{
		EntityType: fromOptString(params.EntityType),
		EntityID:   fromOptString(params.EntityId),
		Action:     fromOptString(params.Action),
		From:       params.From,
		To:         params.To,
	}
	if params.PerformedBy != nil {
		performedBy, err := kernel.UUIDFromBytes((*params.PerformedBy)[:])
		if err != nil {
			return badRequest(ctx, "Invalid performedBy")
		}
		filter.PerformedBy = &performedBy
	}

	offset, limit := 0, 0
	if params.Offset != nil {
		offset = *params.Offset
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetAuditTrailQuery(filter, offset, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.AuditEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.AuditEntry{
			Id:          entry.ID.Bytes(),
			Action:      entry.Action,
			EntityType:  entry.EntityType,
			EntityId:    entry.EntityID,
			PerformedBy: entry.PerformedBy.Bytes(),
			Metadata:    optMetadata(entry.Metadata),
			CreatedAt:   entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AppendAudit handles POST /api/v1/audit.
func (s *Server) AppendAudit(ctx echo.Context) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewAuditEntry
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var metadata map[string]any
	if body.Metadata != nil {
		metadata = *body.Metadata
	}

	cmd, err := commands.NewAppendAuditCommand(
		kernel.NewUUID(),
		audit.Action(body.Action),
		body.EntityType,
		body.EntityId,
		metadata,
		caller,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.appendAuditHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterStaff handles POST /api/v1/staff.
func (s *Server) RegisterStaff(ctx echo.Context) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var body servers.NewStaff
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := staff.RoleFromString(string(body.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	staffID := kernel.NewUUID()
	cmd, err := commands.NewRegisterStaffCommand(
		staffID, body.ExternalAccountId, body.Name, string(body.Email), role, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.StaffRegistered{Id: staffID.Bytes()})
}

// DeactivateStaff handles POST /api/v1/staff/{staffId}/deactivation.
func (s *Server) DeactivateStaff(ctx echo.Context, staffId openapi_types.UUID) error {
	caller, ok := callerID(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	id, err := kernel.UUIDFromBytes(staffId[:])
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewDeactivateStaffCommand(id, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deactivateStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toPackageResponse(pkg queries.GetPackageQueryResponse) servers.Package {
	items := make([]servers.PackageItem, len(pkg.Items))
	for i, item := range pkg.Items {
		items[i] = servers.PackageItem{
			Quantity:    item.Quantity,
			Description: item.Description,
		}
	}

	return servers.Package{
		Id:            pkg.ID.Bytes(),
		TrackingRef:   pkg.TrackingRef,
		Status:        pkg.Status,
		ReceiverEmail: pkg.ReceiverEmail,
		Notes:         toOptString(pkg.Notes),
		PurchaseOrder: toOptString(pkg.PurchaseOrder),
		Items:         items,
		CreatedAt:     pkg.CreatedAt,
		PickedUpAt:    pkg.PickedUpAt,
		ReceivedAt:    pkg.ReceivedAt,
		CollectedAt:   pkg.CollectedAt,
		PodReference:  toOptString(pkg.PodReference),
	}
}

func toPodResponse(record queries.GetPodQueryResponse) servers.Pod {
	return servers.Pod{
		Id:                  record.ID.Bytes(),
		Reference:           record.Reference,
		PackageId:           record.PackageID.Bytes(),
		PackageRef:          record.PackageRef,
		ReceiverEmail:       record.ReceiverEmail,
		StaffName:           record.StaffName,
		StaffEmail:          record.StaffEmail,
		SignatureRef:        record.SignatureRef,
		SignedAt:            record.SignedAt,
		CompletedAt:         record.CompletedAt,
		DocumentRef:         toOptString(record.DocumentRef),
		DocumentGeneratedAt: record.DocumentGeneratedAt,
		IsLocked:            record.IsLocked,
		LockedAt:            record.LockedAt,
	}
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toOptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optMetadata(m map[string]any) *map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	return &m
}

func fromOptString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
