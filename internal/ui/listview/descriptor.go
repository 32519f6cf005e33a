// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listview provides the generic paginated resource list view.
//
// One Model[T] drives every CRUD collection in the application. A
// Descriptor tells it how to render rows, which form fields a record has
// and which extra row actions exist; the searching, paging, modal and
// persistence behavior is identical across resources.
package listview

import (
	"context"

	"github.com/jeranaias/clinic-tui/internal/api"
	"github.com/jeranaias/clinic-tui/internal/model"
	"github.com/jeranaias/clinic-tui/internal/ui/components"
)

// =============================================================================
// DESCRIPTOR
// =============================================================================

// Refs holds the reference collections bundled with a list response.
// Appointment and invoice forms build their relation pickers from these.
type Refs struct {
	Patients []model.Patient
	Services []model.Service
}

// Descriptor defines one resource collection for the generic list view.
type Descriptor[T any] struct {
	// Title is shown above the table, e.g. "Patients".
	Title string

	// Singular names one record in toasts and form titles, e.g. "Patient".
	Singular string

	// Path is the collection endpoint, e.g. "/api/patients/".
	Path string

	// Columns defines the table layout.
	Columns []components.Column

	// Row renders one record as table cells, in column order.
	Row func(item T) []string

	// ID returns the record's identifier.
	ID func(item T) string

	// Fields builds the form fields for creating (item nil) or editing a
	// record. Reference pickers draw their options from refs.
	Fields func(item *T, refs Refs) []Field

	// StatusFilters lists the cyclable status filter values. Empty means
	// the resource has no status filter; "All" is always the first stop.
	StatusFilters []string

	// Actions lists extra row operations beyond edit and delete.
	Actions []Action

	// DeletePrompt renders the confirmation question for a record.
	DeletePrompt func(item T) string
}

// Action is an extra operation on the selected record, such as marking an
// invoice paid.
type Action struct {
	Key     string
	Label   string
	Do      func(ctx context.Context, c *api.Client, id string) error
	Success string
}

// =============================================================================
// FORM FIELDS
// =============================================================================

// FieldKind selects the input behavior of a form field.
type FieldKind int

const (
	// FieldText is a free-text input.
	FieldText FieldKind = iota
	// FieldNumber is a numeric input, submitted as a float.
	FieldNumber
	// FieldDate is a date input in YYYY-MM-DD form.
	FieldDate
	// FieldDateTime is a date-time input in "YYYY-MM-DD HH:MM" form.
	FieldDateTime
	// FieldSelect cycles through a fixed option list.
	FieldSelect
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one form input.
type Field struct {
	// Name is the JSON field name sent to the server.
	Name string
	// Label is shown next to the input.
	Label string
	Kind  FieldKind
	// Options holds the choices for FieldSelect fields.
	Options []Option
	// Required fields block submission when empty.
	Required bool
	// Initial is the value pre-filled when the form opens.
	Initial string
	// Placeholder is shown while the field is empty.
	Placeholder string
}

// OptionLabel returns the label for a stored option value, falling back
// to the raw value for anything no longer in the list.
func OptionLabel(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// PatientOptions builds select options from a bundled patient collection.
func PatientOptions(patients []model.Patient) []Option {
	options := make([]Option, 0, len(patients))
	for _, p := range patients {
		options = append(options, Option{Value: p.ID, Label: p.FullName})
	}
	return options
}

// ServiceOptions builds select options from a bundled service collection.
func ServiceOptions(services []model.Service) []Option {
	options := make([]Option, 0, len(services))
	for _, s := range services {
		options = append(options, Option{Value: s.ID, Label: s.Name})
	}
	return options
}

// StatusOptions builds select options from plain status strings.
func StatusOptions(statuses []string) []Option {
	options := make([]Option, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, Option{Value: s, Label: s})
	}
	return options
}
