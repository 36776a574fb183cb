package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/location"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository keyed the same way
// the store is: one record per (employee, date).
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	key := dayKey(record.EmployeeID, record.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, record := range f.records {
		if record.ID == id {
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	record, ok := f.records[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.Attendance) error {
	f.records[dayKey(record.EmployeeID, record.Date)] = record
	return nil
}

// Close mirrors the store's conditional update: only an open record closes.
func (f *fakeAttendanceRepo) Close(_ context.Context, id string, punchOut time.Time, locationOut string, workMinutes int) error {
	for key, record := range f.records {
		if record.ID != id {
			continue
		}
		if record.PunchOut != nil {
			return attendance.ErrAlreadyPunchedOut
		}
		record.PunchOut = &punchOut
		record.LocationOut = &locationOut
		record.WorkMinutes = &workMinutes
		f.records[key] = record
		return nil
	}
	return attendance.ErrAlreadyPunchedOut
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ int) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var result []attendance.Attendance
	for _, record := range f.records {
		result = append(result, record)
	}
	return result, int64(len(result)), nil
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

func floatPtr(f float64) *float64 { return &f }

func TestPunchIn_OpensTodayRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	result, err := svc.PunchIn(ctx, attendance.PunchInRequest{
		Latitude:  floatPtr(-6.20000),
		Longitude: floatPtr(106.81667),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.NotNil(t, result.PunchInTime)
	assert.Nil(t, result.PunchOutTime)
	require.NotNil(t, result.LocationIn)
	assert.Equal(t, "-6.20000, 106.81667", *result.LocationIn)
}

func TestPunchIn_WithoutCoordinates(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	result, err := svc.PunchIn(ctx, attendance.PunchInRequest{})
	require.NoError(t, err)

	require.NotNil(t, result.LocationIn)
	assert.Equal(t, location.NotAvailable, *result.LocationIn)
}

func TestPunchIn_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.PunchIn(ctx, attendance.PunchInRequest{})
	require.NoError(t, err)

	_, err = svc.PunchIn(ctx, attendance.PunchInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchIn_MismatchedCoordinates(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.PunchIn(ctx, attendance.PunchInRequest{Latitude: floatPtr(-6.2)})
	assert.Error(t, err)
}

func TestPunchOut_WithoutPunchIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.PunchOut(ctx, attendance.PunchOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
}

func TestPunchOut_ClosesRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.PunchIn(ctx, attendance.PunchInRequest{})
	require.NoError(t, err)

	result, err := svc.PunchOut(ctx, attendance.PunchOutRequest{})
	require.NoError(t, err)

	assert.NotNil(t, result.PunchOutTime)
	assert.NotNil(t, result.WorkHours)

	// Punch-out is terminal for the day.
	_, err = svc.PunchOut(ctx, attendance.PunchOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

// staleReadAttendanceRepo serves reads from a snapshot taken before a
// concurrent punch-out landed, so the open-record check passes on a record
// that is already closed.
type staleReadAttendanceRepo struct {
	*fakeAttendanceRepo
}

func (s *staleReadAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	record, err := s.fakeAttendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if record != nil {
		stale := *record
		stale.PunchOut = nil
		stale.LocationOut = nil
		stale.WorkMinutes = nil
		return &stale, nil
	}
	return record, err
}

func TestPunchOut_ConcurrentCloseLoses(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(&staleReadAttendanceRepo{repo})
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	_, err := svc.PunchIn(ctx, attendance.PunchInRequest{})
	require.NoError(t, err)

	_, err = svc.PunchOut(ctx, attendance.PunchOutRequest{})
	require.NoError(t, err)

	// The stale read hides the earlier close, so the pre-check passes and
	// the conditional store update has to refuse the second punch-out.
	_, err = svc.PunchOut(ctx, attendance.PunchOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)

	stored, err := repo.GetByID(context.Background(), mustTodayRecordID(t, repo, "emp-1"))
	require.NoError(t, err)
	require.NotNil(t, stored.PunchOut)
}

func mustTodayRecordID(t *testing.T, repo *fakeAttendanceRepo, employeeID string) string {
	t.Helper()
	for _, record := range repo.records {
		if record.EmployeeID == employeeID {
			return record.ID
		}
	}
	t.Fatalf("no record for %s", employeeID)
	return ""
}

func TestGetToday_NoRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)
	ctx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")

	result, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestList_RequiresManagementCapability(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)

	employeeCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	_, err := svc.List(employeeCtx, attendance.AttendanceFilter{})
	assert.ErrorIs(t, err, user.ErrManagementRequired)

	directorCtx := ctxWithIdentity(t, user.RoleDirector, "emp-2")
	_, err = svc.List(directorCtx, attendance.AttendanceFilter{})
	assert.ErrorIs(t, err, user.ErrManagementRequired)

	hrCtx := ctxWithIdentity(t, user.RoleHR, "emp-3")
	_, err = svc.List(hrCtx, attendance.AttendanceFilter{})
	assert.NoError(t, err)
}

func TestUpdate_ManualStatusMark(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo)

	employeeCtx := ctxWithIdentity(t, user.RoleEmployee, "emp-1")
	punched, err := svc.PunchIn(employeeCtx, attendance.PunchInRequest{})
	require.NoError(t, err)

	status := "LATE"
	hrCtx := ctxWithIdentity(t, user.RoleHR, "emp-2")
	result, err := svc.Update(hrCtx, attendance.UpdateAttendanceRequest{
		ID:     punched.ID,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, result.Status)
}
