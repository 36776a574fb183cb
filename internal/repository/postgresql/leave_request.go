package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hq/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse-hq/workpulse-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestSelect = `
	SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
	       l.reason, l.status, l.approver_id, l.decided_at,
	       l.created_at, l.updated_at,
	       e.full_name AS employee_name,
	       ap.full_name AS approver_name
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id
	LEFT JOIN employees ap ON ap.user_id = l.approver_id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.ApproverID, &l.DecidedAt,
		&l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName,
		&l.ApproverName,
	)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	return req, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	empID := employeeID
	filter.EmployeeID = &empID
	return r.List(ctx, filter)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := leaveRequestSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, total, nil
}

// Decide implements leave.LeaveRequestRepository. The status filter in the
// WHERE clause makes the decision atomic: of two concurrent approvers only
// one update matches the PENDING row, the other sees zero rows affected.
func (r *leaveRequestRepository) Decide(ctx context.Context, id string, status leave.Status, approverID string, decidedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approver_id = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, status, approverID, decidedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return tag.RowsAffected(), nil
}
