// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the clinic domain records as returned by the API.
// The server is authoritative for all of them; the client only holds a
// transient copy per list view, replaced on every refetch.
package model

// =============================================================================
// USERS
// =============================================================================

// Role is the role attached to an authenticated user profile.
type Role string

const (
	RoleDoctor    Role = "doctor"
	RoleSecretary Role = "secretary"
)

// User is the authenticated user's profile.
type User struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// IsDoctor reports whether the profile carries the elevated role that
// unlocks the AI chat view and the churn panel.
func (u User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// AssignableUser is the lightweight user reference bundled with the task
// board response for the "assigned to" picker.
type AssignableUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// =============================================================================
// PATIENTS AND SERVICES
// =============================================================================

// Patient is a clinic patient record.
type Patient struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number,omitempty"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	CreatedAt   string `json:"created_at"`
}

// Service is a billable clinic service.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
}

// =============================================================================
// APPOINTMENTS
// =============================================================================

// Appointment statuses as stored server-side.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment links a patient to a service at a point in time. PatientName
// and ServiceName are denormalized display fields supplied by the server.
type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	PatientName     string `json:"patient_name,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
}

// =============================================================================
// INVOICES
// =============================================================================

// Invoice statuses as stored server-side.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Invoice is a billing record. Like Appointment it carries denormalized
// display names for the related patient and service.
type Invoice struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patient_id"`
	ServiceID   string  `json:"service_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	IssuedDate  string  `json:"issued_date"`
	PaidDate    string  `json:"paid_date,omitempty"`
	PatientName string  `json:"patient_name,omitempty"`
	ServiceName string  `json:"service_name,omitempty"`
}

// =============================================================================
// TASKS
// =============================================================================

// Task statuses. These double as the fixed board columns.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// TaskStatuses is the fixed column order of the task board. Labels and
// order are client-side constants, not server-driven.
var TaskStatuses = []string{TaskTodo, TaskInProgress, TaskDone}

// Task is a board item.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
	Position    int    `json:"position"`
	CreatedAt   string `json:"created_at"`
}

// =============================================================================
// DASHBOARD
// =============================================================================

// ChurnPatient is one entry of the churn-risk panel. The score comes from a
// server-side model and is consumed as an opaque 0..1 value.
type ChurnPatient struct {
	PatientName string  `json:"patient_name"`
	Score       float64 `json:"score"`
}

// DashboardKPIs is the aggregate snapshot behind the dashboard cards.
type DashboardKPIs struct {
	TotalPatients       int            `json:"total_patients"`
	MonthlyAppointments int            `json:"monthly_appointments"`
	MonthlyRevenue      float64        `json:"monthly_revenue"`
	PendingCount        int            `json:"pending_count"`
	PendingTotal        float64        `json:"pending_total"`
	ChurnPatients       []ChurnPatient `json:"churn_patients"`
}
