package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/identity"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/location"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
	}
}

// timePtrToString safely converts a *time.Time to a display string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// today truncates a timestamp to its UTC calendar date.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	nowUTC := time.Now().UTC()
	date := today(nowUTC)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}

	locationIn := location.Resolve(req.Latitude, req.Longitude)

	record := attendance.Attendance{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: caller.EmployeeID,
		Date:       date,
		PunchIn:    &nowUTC,
		LocationIn: &locationIn,
		// The punch flow only ever produces PRESENT; other statuses are
		// administrative marks.
		Status: attendance.StatusPresent,
	}

	// The pre-check above races with concurrent punches; the store's unique
	// (employee_id, date) constraint is the authority and Create reports a
	// violation as ErrAlreadyPunchedIn.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	nowUTC := time.Now().UTC()
	date := today(nowUTC)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.PunchIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotPunchedIn
	}
	if record.PunchOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
	}

	locationOut := location.Resolve(req.Latitude, req.Longitude)
	workMinutes := int(nowUTC.Sub(*record.PunchIn).Minutes())

	// The conditional close is the authority: a concurrent punch-out that
	// slipped past the check above loses here as ErrAlreadyPunchedOut.
	if err := a.AttendanceRepository.Close(ctx, record.ID, nowUTC, locationOut, workMinutes); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.PunchOut = &nowUTC
	record.LocationOut = &locationOut
	record.WorkMinutes = &workMinutes

	return mapAttendanceToResponse(*record), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := mapAttendanceToResponse(*record)
	return &resp, nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 30
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, caller.EmployeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return attendance.ListAttendanceResponse{}, user.ErrManagementRequired
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return attendance.AttendanceResponse{}, user.ErrManagementRequired
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(att), nil
}

// Update implements attendance.AttendanceService. Administrative correction
// path: the only place LATE, HALF_DAY, EARLY_LEAVE and ABSENT are assigned.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !user.CanManageWorkforce(caller.Role) {
		return attendance.AttendanceResponse{}, user.ErrManagementRequired
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.PunchIn != nil {
		punchIn, err := parsePunchTime(*req.PunchIn, att.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.PunchIn = &punchIn
	}
	if req.PunchOut != nil {
		punchOut, err := parsePunchTime(*req.PunchOut, att.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.PunchOut = &punchOut
	}
	if req.LocationIn != nil {
		att.LocationIn = req.LocationIn
	}
	if req.LocationOut != nil {
		att.LocationOut = req.LocationOut
	}
	if req.Status != nil {
		status, err := attendance.ParseStatus(*req.Status)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.Status = status
	}

	// Keep derived hours consistent with corrected punch times.
	if att.PunchIn != nil && att.PunchOut != nil {
		workMinutes := int(att.PunchOut.Sub(*att.PunchIn).Minutes())
		att.WorkMinutes = &workMinutes
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}
	return mapAttendanceToResponse(updated), nil
}

// parsePunchTime accepts a full datetime or a time-of-day combined with the
// record's date.
func parsePunchTime(value string, date time.Time) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid punch time %q: %w", value, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse.
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   employeeName,
		DepartmentName: att.DepartmentName,
		Date:           att.Date.Format("2006-01-02"),
		PunchInTime:    timePtrToString(att.PunchIn),
		PunchOutTime:   timePtrToString(att.PunchOut),
		LocationIn:     att.LocationIn,
		LocationOut:    att.LocationOut,
		WorkHours:      att.WorkHours(),
		Status:         att.Status,
	}
}
