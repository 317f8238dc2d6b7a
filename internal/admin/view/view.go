// Package view wires admin UI events into the job store and session gate.
// It owns which screen is visible and whether the edit form is creating a
// new listing or editing an existing one; all rendering goes through the
// Renderer so the data flow is testable without a real front end.
package view

import (
	"log/slog"
	"strings"

	"github.com/craftline/website-be/internal/admin/domain"
	"github.com/craftline/website-be/internal/admin/session"
	"github.com/craftline/website-be/internal/admin/store"
)

// Screen constants
const (
	ScreenLoggedOut = "LOGGED_OUT"
	ScreenLoggedIn  = "LOGGED_IN"
)

// Edit mode constants, meaningful only while logged in
const (
	ModeCreating = "CREATING"
	ModeEditing  = "EDITING"
)

// Renderer receives everything the admin panel shows. The terminal front
// end implements it for real; tests implement it with a recorder.
type Renderer interface {
	// ShowLogin presents the login screen
	ShowLogin()

	// ShowPanel presents the job listing panel with the given records
	ShowPanel(jobs []domain.JobRecord)

	// FillForm pre-populates the edit form from a record
	FillForm(rec domain.JobRecord)

	// ResetForm clears the edit form
	ResetForm()

	// Notify shows a transient, non-blocking message
	Notify(message string, isError bool)
}

// JobForm carries the raw form fields of an add/edit submission
type JobForm struct {
	Title       string
	Company     string
	Location    string
	Description string
	PostedDate  string
}

// AdminView is the admin panel controller
type AdminView struct {
	store    *store.JobStore
	session  *session.Session
	renderer Renderer
	logger   *slog.Logger

	screen    string
	editingID string // empty while creating
}

// New creates an AdminView; the initial screen follows the persisted
// session flag.
func New(jobStore *store.JobStore, sess *session.Session, renderer Renderer, logger *slog.Logger) *AdminView {
	screen := ScreenLoggedOut
	if sess.IsAuthenticated() {
		screen = ScreenLoggedIn
	}

	return &AdminView{
		store:    jobStore,
		session:  sess,
		renderer: renderer,
		logger:   logger,
		screen:   screen,
	}
}

// Screen returns the currently visible screen
func (v *AdminView) Screen() string {
	return v.screen
}

// Mode returns the edit-form mode while logged in
func (v *AdminView) Mode() string {
	if v.editingID != "" {
		return ModeEditing
	}
	return ModeCreating
}

// Open renders the initial screen
func (v *AdminView) Open() {
	if v.screen == ScreenLoggedIn {
		v.renderer.ShowPanel(v.store.List())
		return
	}
	v.renderer.ShowLogin()
}

// SubmitLogin handles a login form submission
func (v *AdminView) SubmitLogin(password string) {
	if v.screen == ScreenLoggedIn {
		return
	}

	if !v.session.Authenticate(password) {
		v.renderer.Notify("Incorrect password", true)
		return
	}

	v.screen = ScreenLoggedIn
	v.renderer.ShowPanel(v.store.List())
}

// Logout clears the session and any in-progress edit, then shows the
// login screen.
func (v *AdminView) Logout() {
	if !v.loggedIn("logout") {
		return
	}

	v.session.Logout()
	v.editingID = ""
	v.renderer.ResetForm()

	v.screen = ScreenLoggedOut
	v.renderer.ShowLogin()
}

// BeginEdit loads the record with the given id into the edit form
func (v *AdminView) BeginEdit(id string) {
	if !v.loggedIn("edit") {
		return
	}

	for _, rec := range v.store.List() {
		if rec.ID == id {
			v.editingID = id
			v.renderer.FillForm(rec)
			return
		}
	}

	v.renderer.Notify("Job listing not found", true)
}

// ClearForm abandons the in-progress edit and returns the form to
// creating mode.
func (v *AdminView) ClearForm() {
	if !v.loggedIn("clear form") {
		return
	}

	v.editingID = ""
	v.renderer.ResetForm()
}

// SubmitJob handles an add/edit form submission. In creating mode it
// upserts with a freshly generated id; in editing mode it upserts with the
// loaded id and aborts, user-visibly, when that id has gone stale.
func (v *AdminView) SubmitJob(form JobForm) {
	if !v.loggedIn("save") {
		return
	}

	rec := domain.JobRecord{
		Title:       strings.TrimSpace(form.Title),
		Company:     strings.TrimSpace(form.Company),
		Location:    strings.TrimSpace(form.Location),
		Description: strings.TrimSpace(form.Description),
		PostedDate:  strings.TrimSpace(form.PostedDate),
	}

	if rec.Title == "" {
		v.renderer.Notify("Title is required", true)
		return
	}
	if rec.PostedDate == "" {
		rec.PostedDate = domain.Today()
	}

	if v.editingID != "" {
		// Stale-edit check: the record may have been deleted by another
		// panel instance since the form was loaded
		if !v.store.Contains(v.editingID) {
			v.logger.Warn("Stale edit rejected",
				slog.String("id", v.editingID),
			)
			v.renderer.Notify("This job listing no longer exists; it may have been deleted elsewhere", true)
			return
		}
		rec.ID = v.editingID
	} else {
		rec.ID = v.store.GenerateID()
	}

	if err := v.store.Upsert(rec); err != nil {
		v.logger.Error("Failed to save job record",
			slog.String("id", rec.ID),
			slog.Any("error", err),
		)
		v.renderer.Notify("Saving failed, please try again", true)
		// The write failed, so show what the store actually holds
		v.renderer.ShowPanel(v.store.List())
		return
	}

	v.editingID = ""
	v.renderer.ResetForm()
	v.renderer.ShowPanel(v.store.List())
	v.renderer.Notify("Job listing saved", false)
}

// DeleteJob removes the record with the given id
func (v *AdminView) DeleteJob(id string) {
	if !v.loggedIn("delete") {
		return
	}

	removed, err := v.store.Delete(id)
	if err != nil {
		v.logger.Error("Failed to delete job record",
			slog.String("id", id),
			slog.Any("error", err),
		)
		v.renderer.Notify("Deleting failed, please try again", true)
		v.renderer.ShowPanel(v.store.List())
		return
	}

	if !removed {
		v.renderer.Notify("Job listing not found", true)
		return
	}

	v.renderer.ShowPanel(v.store.List())
	v.renderer.Notify("Job listing deleted", false)
}

// loggedIn reports whether the panel is visible; store operations are not
// reachable from the login screen.
func (v *AdminView) loggedIn(action string) bool {
	if v.screen == ScreenLoggedIn {
		return true
	}

	v.logger.Debug("Ignoring action while logged out",
		slog.String("action", action),
	)
	return false
}
