package view

import (
	"strings"

	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

// RoleSelect selects contact role from fetched enumeration or falls back to free text
// when model.RoleOthers is chosen.
type RoleSelect struct {
	Roles    []string
	Selected string
	Input    string
}

// Options returns fetched roles followed by the sentinel
func (r *RoleSelect) Options() []string {
	opts := make([]string, 0, len(r.Roles)+1)
	for _, role := range r.Roles {
		if role == model.RoleOthers {
			continue
		}
		opts = append(opts, role)
	}
	return append(opts, model.RoleOthers)
}

// Select picks role. Free text survives only while sentinel stays selected.
func (r *RoleSelect) Select(role string) {
	if role != model.RoleOthers || r.Selected != model.RoleOthers {
		r.Input = ""
	}
	r.Selected = role
}

// SetInput sets free text role, ignored unless sentinel is selected
func (r *RoleSelect) SetInput(input string) {
	if !r.OthersActive() {
		return
	}
	r.Input = input
}

// keepUnlisted turns selected role which is not offered into free text of the sentinel
func (r *RoleSelect) keepUnlisted() {
	if r.Selected == "" || r.OthersActive() {
		return
	}

	for _, opt := range r.Options() {
		if opt == r.Selected {
			return
		}
	}
	r.Selected, r.Input = model.RoleOthers, r.Selected
}

// OthersActive reports whether free text role is required
func (r *RoleSelect) OthersActive() bool {
	return r.Selected == model.RoleOthers
}

// Resolved returns role value which must be submitted
func (r *RoleSelect) Resolved() (string, error) {
	if r.Selected == "" {
		return "", apperrors.NewBusinessErr("role", "Role is a required field")
	}

	if !r.OthersActive() {
		return r.Selected, nil
	}

	input := strings.TrimSpace(r.Input)
	if input == "" {
		return "", apperrors.NewBusinessErr("roleInput", "Type your role")
	}
	return input, nil
}
