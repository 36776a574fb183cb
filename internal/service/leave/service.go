package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/identity"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
	}
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if caller.EmployeeID == "" {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
	}

	leaveType, err := leave.ParseType(req.Type)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, startOK := validator.IsValidDate(req.StartDate)
	endDate, endOK := validator.IsValidDate(req.EndDate)
	if !startOK || !endOK {
		// Validate already rejects malformed dates; this only guards the
		// parse results it handed us.
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: caller.EmployeeID,
		Type:       leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveRequestToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, requestID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, requestID, leave.StatusRejected)
}

// decide applies a terminal status. The repository's conditional update is
// the arbiter when two approvers race: exactly one wins, the loser gets
// ErrAlreadyProcessed.
func (l *LeaveServiceImpl) decide(ctx context.Context, requestID string, status leave.Status) (leave.LeaveRequestResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return leave.LeaveRequestResponse{}, user.ErrManagementRequired
	}

	// Existence check first so an unknown ID reports not-found rather than
	// already-processed.
	if _, err := l.LeaveRequestRepository.GetByID(ctx, requestID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	rows, err := l.LeaveRequestRepository.Decide(ctx, requestID, status, caller.UserID, time.Now().UTC())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}
	if rows == 0 {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	decided, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get decided leave request: %w", err)
	}

	return mapLeaveRequestToResponse(decided), nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}
	if caller.EmployeeID == "" {
		return leave.ListLeaveRequestResponse{}, employee.ErrEmployeeNotFound
	}

	normalizeFilter(&filter)

	requests, total, err := l.LeaveRequestRepository.ListByEmployee(ctx, caller.EmployeeID, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list my leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return leave.ListLeaveRequestResponse{}, user.ErrManagementRequired
	}

	normalizeFilter(&filter)

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// Get implements leave.LeaveService. Employees may read their own requests;
// anything else requires the management capability.
func (l *LeaveServiceImpl) Get(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.EmployeeID != caller.EmployeeID && !user.CanManageWorkforce(caller.Role) {
		return leave.LeaveRequestResponse{}, user.ErrManagementRequired
	}

	return mapLeaveRequestToResponse(request), nil
}

func normalizeFilter(filter *leave.LeaveRequestFilter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
}

func buildListResponse(requests []leave.LeaveRequest, total int64, filter leave.LeaveRequestFilter) leave.ListLeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveRequestToResponse(req))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}
}

func mapLeaveRequestToResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	var employeeName string
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	var decidedAt *string
	if req.DecidedAt != nil {
		formatted := req.DecidedAt.Format("2006-01-02 15:04:05")
		decidedAt = &formatted
	}

	return leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		Type:         string(req.Type),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		DurationDays: req.DurationDays(),
		Reason:       req.Reason,
		Status:       req.Status,
		ApproverID:   req.ApproverID,
		ApproverName: req.ApproverName,
		DecidedAt:    decidedAt,
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
