package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/validator"
)

// fakeLeaveRepo is an in-memory LeaveRequestRepository for service tests.
type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.CreatedAt = time.Now().UTC()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var result []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			result = append(result, request)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var result []leave.LeaveRequest
	for _, request := range f.requests {
		result = append(result, request)
	}
	return result, int64(len(result)), nil
}

// Decide mirrors the store's conditional update: only a PENDING row is
// touched, and the affected-row count tells the caller whether it won.
func (f *fakeLeaveRepo) Decide(_ context.Context, id string, status leave.Status, approverID string, decidedAt time.Time) (int64, error) {
	request, ok := f.requests[id]
	if !ok || request.Status != leave.StatusPending {
		return 0, nil
	}
	request.Status = status
	request.ApproverID = &approverID
	request.DecidedAt = &decidedAt
	f.requests[id] = request
	return 1, nil
}

func ctxWithIdentity(t *testing.T, role user.Role, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id": "user-1",
		"role":    string(role),
		"type":    "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	result, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		Type:      "ANNUAL",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, result.Status)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, 3, result.DurationDays)
	assert.Nil(t, result.ApproverID)
}

func TestSubmit_RejectsInvertedRange(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		Type:      "SICK",
		StartDate: "2026-09-09",
		EndDate:   "2026-09-07",
		Reason:    "flu",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	assert.Empty(t, repo.requests)
}

func TestSubmit_RejectsUnknownType(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		Type:      "SABBATICAL",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-08",
		Reason:    "time off",
	})
	assert.Error(t, err)
}

func TestSubmit_RejectsMalformedDate(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		Type:      "SICK",
		StartDate: "07-09-2026",
		EndDate:   "2026-09-08",
		Reason:    "flu",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "start_date")
	assert.Empty(t, repo.requests)
}

func TestApprove_SetsApproverAndTimestamp(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	submitCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	submitted, err := svc.Submit(submitCtx, leave.SubmitLeaveRequest{
		Type:      "CASUAL",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-07",
		Reason:    "appointment",
	})
	require.NoError(t, err)

	managerCtx := ctxWithIdentity(t, user.RoleManager, "emp-2")
	result, err := svc.Approve(managerCtx, submitted.ID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, result.Status)
	require.NotNil(t, result.ApproverID)
	assert.Equal(t, "user-1", *result.ApproverID)
	assert.NotNil(t, result.DecidedAt)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	submitCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	submitted, err := svc.Submit(submitCtx, leave.SubmitLeaveRequest{
		Type:      "CASUAL",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-07",
		Reason:    "appointment",
	})
	require.NoError(t, err)

	managerCtx := ctxWithIdentity(t, user.RoleManager, "emp-2")
	_, err = svc.Reject(managerCtx, submitted.ID)
	require.NoError(t, err)

	// A second decision loses the race against the first.
	_, err = svc.Approve(managerCtx, submitted.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	stored, err := repo.GetByID(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, stored.Status)
}

func TestApprove_RequiresManagementCapability(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	submitCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	submitted, err := svc.Submit(submitCtx, leave.SubmitLeaveRequest{
		Type:      "ANNUAL",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-08",
		Reason:    "vacation",
	})
	require.NoError(t, err)

	// DIRECTOR sits in the hierarchy but holds no management capability.
	directorCtx := ctxWithIdentity(t, user.RoleDirector, "emp-3")
	_, err = svc.Approve(directorCtx, submitted.ID)
	assert.ErrorIs(t, err, user.ErrManagementRequired)

	employeeCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-4")
	_, err = svc.Approve(employeeCtx, submitted.ID)
	assert.ErrorIs(t, err, user.ErrManagementRequired)
}

func TestApprove_NotFound(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	managerCtx := ctxWithIdentity(t, user.RoleHR, "emp-2")
	_, err := svc.Approve(managerCtx, "missing-id")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestGet_OwnRequestAllowed(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	submitted, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		Type:      "SICK",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-07",
		Reason:    "flu",
	})
	require.NoError(t, err)

	result, err := svc.Get(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, result.ID)

	// Another plain employee may not read it.
	otherCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-2")
	_, err = svc.Get(otherCtx, submitted.ID)
	assert.ErrorIs(t, err, user.ErrManagementRequired)
}
