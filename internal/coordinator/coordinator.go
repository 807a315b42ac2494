package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/user-directory-console/internal/directory"
	"github.com/user-directory-console/internal/models"
	"github.com/user-directory-console/internal/validation"
)

// Coordinator owns all client-visible state for one console session: the
// draft record being composed, the editing mode, the cached listing, the last
// lookup result, the detail selection, the status line and the field errors
// from the last validation pass. Every user intent enters through one of the
// methods below; create and update intents pass the validation gate before a
// remote call is issued, and every successful mutation refreshes the cached
// listing only while it is visible.
//
// The coordinator is single-owner state: one intent runs to completion before
// the next is accepted, so a remote call never completes against state that
// was changed underneath it.
type Coordinator struct {
	api directory.API
	log zerolog.Logger

	draft           models.User
	mode            Mode
	listCache       []models.User
	listVisible     bool
	lookupResult    *models.User
	detailSelection *models.User
	statusMessage   string
	fieldErrors     map[string]string
}

// New creates a coordinator with an empty draft in creating mode.
func New(api directory.API, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		api: api,
		log: log.With().Str("component", "coordinator").Logger(),
	}
}

// Draft returns the record currently being composed or edited.
func (c *Coordinator) Draft() models.User {
	return c.draft
}

// Mode returns the current intent context.
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// ListCache returns the records from the most recent successful listing fetch.
func (c *Coordinator) ListCache() []models.User {
	return c.listCache
}

// ListVisible reports whether the listing is currently shown.
func (c *Coordinator) ListVisible() bool {
	return c.listVisible
}

// LookupResult returns the record last fetched by explicit id lookup, or nil.
func (c *Coordinator) LookupResult() *models.User {
	return c.lookupResult
}

// DetailSelection returns the record chosen for expanded display, or nil.
func (c *Coordinator) DetailSelection() *models.User {
	return c.detailSelection
}

// StatusMessage returns the outcome of the last operation.
func (c *Coordinator) StatusMessage() string {
	return c.statusMessage
}

// FieldErrors returns the field errors from the last validation pass.
func (c *Coordinator) FieldErrors() map[string]string {
	return c.fieldErrors
}

// EditField updates a single draft field. No validation happens here; the
// draft is only checked at submit time.
func (c *Coordinator) EditField(name, value string) {
	switch name {
	case models.FieldUsername:
		c.draft.Username = value
	case models.FieldFirstName:
		c.draft.FirstName = value
	case models.FieldLastName:
		c.draft.LastName = value
	case models.FieldEmail:
		c.draft.Email = value
	case models.FieldPhoneNumber:
		c.draft.PhoneNumber = value
	default:
		c.log.Debug().Str("field", name).Msg("Ignoring edit for unknown field")
	}
}

// SubmitCreate validates the draft and, if it passes, asks the directory
// service to create it. On success the draft is reset and the visible listing
// is refreshed; on remote failure the draft is kept so the user can retry.
func (c *Coordinator) SubmitCreate(ctx context.Context) {
	if !c.validateDraft() {
		return
	}

	created, err := c.api.Create(ctx, &c.draft)
	if err != nil {
		c.log.Error().Err(err).Msg("Create call failed")
		c.statusMessage = "Failed to create user."
		return
	}

	// The service response is authoritative for the persisted record.
	c.statusMessage = fmt.Sprintf("User %s created successfully!", created.Username)
	c.fieldErrors = nil
	c.draft = models.User{}
	c.refreshListIfVisible(ctx)
}

// BeginEdit switches to editing mode for the given record and loads its
// editable fields into the draft. Re-entrant: selecting another record while
// already editing discards the unsaved draft.
func (c *Coordinator) BeginEdit(user models.User) {
	c.mode = Editing(user.ID)
	c.draft = models.User{
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}

// SubmitUpdate validates the draft and, if it passes, sends it as an update
// of the record captured when editing began. Success resets the form to
// creating mode; failure leaves everything in place for a retry.
func (c *Coordinator) SubmitUpdate(ctx context.Context) {
	targetID, ok := c.mode.TargetID()
	if !ok {
		c.log.Warn().Msg("SubmitUpdate called outside editing mode")
		return
	}

	if !c.validateDraft() {
		return
	}

	updated, err := c.api.Update(ctx, targetID, &c.draft)
	if err != nil {
		c.log.Error().Err(err).Str("user_id", targetID).Msg("Update call failed")
		c.statusMessage = "Failed to update user."
		return
	}

	c.statusMessage = fmt.Sprintf("User %s updated successfully!", updated.Username)
	c.fieldErrors = nil
	c.mode = Creating()
	c.draft = models.User{}
	c.refreshListIfVisible(ctx)
}

// CancelEdit abandons the current edit: back to creating mode with an empty
// draft, no field errors and no status line. Never calls the service.
func (c *Coordinator) CancelEdit() {
	c.mode = Creating()
	c.draft = models.User{}
	c.fieldErrors = nil
	c.statusMessage = ""
}

// ToggleList shows or hides the listing. Showing always re-fetches from the
// directory service; hiding keeps the cache but marks nothing else. A failed
// fetch aborts the toggle and leaves the cache untouched.
func (c *Coordinator) ToggleList(ctx context.Context) {
	if c.listVisible {
		c.listVisible = false
		return
	}

	users, err := c.api.List(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("List call failed")
		c.statusMessage = "Failed to retrieve users."
		return
	}

	c.listCache = users
	c.statusMessage = ""
	c.listVisible = true
}

// DeleteRecord deletes the record by id and refreshes the visible listing.
// The cache is never locally edited to predict the server's state.
func (c *Coordinator) DeleteRecord(ctx context.Context, id string) {
	if err := c.api.Delete(ctx, id); err != nil {
		c.log.Error().Err(err).Str("user_id", id).Msg("Delete call failed")
		c.statusMessage = "Failed to delete user."
		return
	}

	c.statusMessage = fmt.Sprintf("User %s deleted successfully!", id)
	c.refreshListIfVisible(ctx)
}

// ShowDetail fetches one record for expanded read-only display.
func (c *Coordinator) ShowDetail(ctx context.Context, id string) {
	user, err := c.api.Get(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("user_id", id).Msg("Get call failed")
		c.statusMessage = "Failed to retrieve user info."
		return
	}
	c.detailSelection = user
}

// LookupByID fetches one record by an id the user typed in. A blank id never
// reaches the service.
func (c *Coordinator) LookupByID(ctx context.Context, id string) {
	if strings.TrimSpace(id) == "" {
		c.statusMessage = "Please enter a valid user ID"
		return
	}

	user, err := c.api.Get(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("user_id", id).Msg("Lookup call failed")
		c.statusMessage = "Failed to retrieve user."
		return
	}

	c.lookupResult = user
	c.statusMessage = ""
}

// validateDraft runs the validation gate. Every pass replaces the field
// errors wholesale, so a clean pass clears stale errors. On failure a generic
// status line is set and no remote call happens.
func (c *Coordinator) validateDraft() bool {
	result := validation.ValidateUser(&c.draft)
	c.fieldErrors = result.Errors
	if result.Valid() {
		return true
	}
	c.statusMessage = "Please correct the errors in the form."
	return false
}

// refreshListIfVisible re-fetches the listing after a successful mutation,
// but only while the user has the list open. The success status line from the
// mutation is kept; only a failed refresh overwrites it.
func (c *Coordinator) refreshListIfVisible(ctx context.Context) {
	if !c.listVisible {
		return
	}

	users, err := c.api.List(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("List refresh failed")
		c.statusMessage = "Failed to retrieve users."
		return
	}
	c.listCache = users
}
