// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
	"github.com/jeranaias/clinic-tui/internal/ui/listview"
	"github.com/jeranaias/clinic-tui/internal/util"
)

// genderOptions for the patient form.
var genderOptions = []listview.Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other", Label: "Other"},
}

// patientDescriptor drives the patients collection.
func patientDescriptor() listview.Descriptor[model.Patient] {
	return listview.Descriptor[model.Patient]{
		Title:    "Patients",
		Singular: "Patient",
		Path:     "/api/patients/",
		Columns: []components.Column{
			{Title: "Name", Width: 24},
			{Title: "Phone", Width: 14},
			{Title: "Email", Width: 26},
			{Title: "Born", Width: 12},
		},
		Row: func(p model.Patient) []string {
			return []string{p.FullName, p.Phone, p.Email, p.DateOfBirth}
		},
		ID: func(p model.Patient) string { return p.ID },
		Fields: func(p *model.Patient, _ listview.Refs) []listview.Field {
			var init model.Patient
			if p != nil {
				init = *p
			}
			gender := init.Gender
			if gender == "" {
				gender = "male"
			}
			return []listview.Field{
				{Name: "first_name", Label: "First name", Required: true, Initial: init.FirstName},
				{Name: "last_name", Label: "Last name", Required: true, Initial: init.LastName},
				{Name: "phone", Label: "Phone", Initial: init.Phone},
				{Name: "email", Label: "Email", Initial: init.Email},
				{Name: "date_of_birth", Label: "Date of birth", Kind: listview.FieldDate,
					Initial: init.DateOfBirth, Placeholder: "YYYY-MM-DD"},
				{Name: "gender", Label: "Gender", Kind: listview.FieldSelect,
					Options: genderOptions, Initial: gender},
				{Name: "address", Label: "Address", Initial: init.Address},
			}
		},
		DeletePrompt: func(p model.Patient) string {
			return fmt.Sprintf("Delete patient %q?", p.FullName)
		},
	}
}

// serviceDescriptor drives the services collection.
func serviceDescriptor() listview.Descriptor[model.Service] {
	return listview.Descriptor[model.Service]{
		Title:    "Services",
		Singular: "Service",
		Path:     "/api/services/",
		Columns: []components.Column{
			{Title: "Name", Width: 26},
			{Title: "Price", Width: 12},
			{Title: "Duration", Width: 10},
			{Title: "Active", Width: 8},
		},
		Row: func(s model.Service) []string {
			active := "yes"
			if !s.IsActive {
				active = "no"
			}
			return []string{
				s.Name,
				util.FormatILS(s.Price),
				fmt.Sprintf("%d min", s.DurationMinutes),
				active,
			}
		},
		ID: func(s model.Service) string { return s.ID },
		Fields: func(s *model.Service, _ listview.Refs) []listview.Field {
			var init model.Service
			if s != nil {
				init = *s
			}
			price, duration := "", ""
			if s != nil {
				price = fmt.Sprintf("%g", init.Price)
				duration = fmt.Sprintf("%d", init.DurationMinutes)
			}
			return []listview.Field{
				{Name: "name", Label: "Name", Required: true, Initial: init.Name},
				{Name: "description", Label: "Description", Initial: init.Description},
				{Name: "price", Label: "Price", Kind: listview.FieldNumber, Required: true, Initial: price},
				{Name: "duration_minutes", Label: "Duration (minutes)", Kind: listview.FieldNumber,
					Required: true, Initial: duration},
			}
		},
		DeletePrompt: func(s model.Service) string {
			return fmt.Sprintf("Delete service %q?", s.Name)
		},
	}
}

// appointmentStatuses is the cyclable status filter order.
var appointmentStatuses = []string{
	model.AppointmentScheduled,
	model.AppointmentCompleted,
	model.AppointmentCancelled,
	model.AppointmentNoShow,
}

// appointmentDescriptor drives the appointments collection. The patient
// and service pickers are fed from the reference collections bundled with
// the list response.
func appointmentDescriptor() listview.Descriptor[model.Appointment] {
	return listview.Descriptor[model.Appointment]{
		Title:    "Appointments",
		Singular: "Appointment",
		Path:     "/api/appointments/",
		Columns: []components.Column{
			{Title: "Patient", Width: 22},
			{Title: "Service", Width: 20},
			{Title: "When", Width: 17},
			{Title: "Status", Width: 12},
		},
		Row: func(a model.Appointment) []string {
			return []string{a.PatientName, a.ServiceName, a.AppointmentDate, a.Status}
		},
		ID: func(a model.Appointment) string { return a.ID },
		Fields: func(a *model.Appointment, refs listview.Refs) []listview.Field {
			var init model.Appointment
			if a != nil {
				init = *a
			}
			status := init.Status
			if status == "" {
				status = model.AppointmentScheduled
			}
			return []listview.Field{
				{Name: "patient_id", Label: "Patient", Kind: listview.FieldSelect, Required: true,
					Options: listview.PatientOptions(refs.Patients), Initial: init.PatientID},
				{Name: "service_id", Label: "Service", Kind: listview.FieldSelect, Required: true,
					Options: listview.ServiceOptions(refs.Services), Initial: init.ServiceID},
				{Name: "appointment_date", Label: "Date", Kind: listview.FieldDateTime, Required: true,
					Initial: init.AppointmentDate, Placeholder: "YYYY-MM-DD HH:MM"},
				{Name: "status", Label: "Status", Kind: listview.FieldSelect,
					Options: listview.StatusOptions(appointmentStatuses), Initial: status},
				{Name: "notes", Label: "Notes", Initial: init.Notes},
			}
		},
		StatusFilters: appointmentStatuses,
		DeletePrompt: func(a model.Appointment) string {
			return fmt.Sprintf("Delete the appointment for %s on %s?", a.PatientName, a.AppointmentDate)
		},
	}
}

// invoiceStatuses is the cyclable status filter order.
var invoiceStatuses = []string{
	model.InvoicePending,
	model.InvoicePaid,
	model.InvoiceOverdue,
}

// invoiceDescriptor drives the invoices collection, including the
// mark-paid row action.
func invoiceDescriptor() listview.Descriptor[model.Invoice] {
	return listview.Descriptor[model.Invoice]{
		Title:    "Invoices",
		Singular: "Invoice",
		Path:     "/api/invoices/",
		Columns: []components.Column{
			{Title: "Patient", Width: 22},
			{Title: "Service", Width: 20},
			{Title: "Amount", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Issued", Width: 12},
		},
		Row: func(inv model.Invoice) []string {
			return []string{
				inv.PatientName,
				inv.ServiceName,
				util.FormatILS(inv.Amount),
				inv.Status,
				inv.IssuedDate,
			}
		},
		ID: func(inv model.Invoice) string { return inv.ID },
		Fields: func(inv *model.Invoice, refs listview.Refs) []listview.Field {
			var init model.Invoice
			if inv != nil {
				init = *inv
			}
			status := init.Status
			if status == "" {
				status = model.InvoicePending
			}
			amount := ""
			if inv != nil {
				amount = fmt.Sprintf("%g", init.Amount)
			}
			return []listview.Field{
				{Name: "patient_id", Label: "Patient", Kind: listview.FieldSelect, Required: true,
					Options: listview.PatientOptions(refs.Patients), Initial: init.PatientID},
				{Name: "service_id", Label: "Service", Kind: listview.FieldSelect, Required: true,
					Options: listview.ServiceOptions(refs.Services), Initial: init.ServiceID},
				{Name: "amount", Label: "Amount", Kind: listview.FieldNumber, Required: true, Initial: amount},
				{Name: "status", Label: "Status", Kind: listview.FieldSelect,
					Options: listview.StatusOptions(invoiceStatuses), Initial: status},
				{Name: "issued_date", Label: "Issued", Kind: listview.FieldDate,
					Initial: init.IssuedDate, Placeholder: "YYYY-MM-DD"},
			}
		},
		StatusFilters: invoiceStatuses,
		Actions: []listview.Action{
			{
				Key:   "p",
				Label: "mark paid",
				Do: func(ctx context.Context, c *api.Client, id string) error {
					return c.PayInvoice(ctx, id)
				},
				Success: "Invoice marked paid",
			},
		},
		DeletePrompt: func(inv model.Invoice) string {
			return fmt.Sprintf("Delete the %s invoice for %s?", util.FormatILS(inv.Amount), inv.PatientName)
		},
	}
}
