// Package session orchestrates a catalog editing session: search with a
// debounced term, pagination, the product editor and delete confirmation,
// all over a single product repository.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/catalog-manager/internal/debounce"
	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/notify"
	"github.com/rogerio-castellano/catalog-manager/internal/query"
	"github.com/rogerio-castellano/catalog-manager/internal/repo"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

// Notification messages.
const (
	MsgProductAdded   = "Product added successfully!"
	MsgProductUpdated = "Product updated successfully!"
	MsgProductDeleted = "Product deleted successfully!"
	MsgProductGone    = "Product no longer exists"
	MsgSaveFailed     = "Could not save product"
)

var (
	ErrEditorClosed     = errors.New("editor is not open")
	ErrNoPendingDelete  = errors.New("no delete is pending")
	ErrInvalidPage      = errors.New("page must be 1 or greater")
	ErrInvalidViewMode  = errors.New("view mode must be grid or list")
	ErrUnknownField     = errors.New("unknown editor field")
	ErrControllerClosed = errors.New("session is closed")
)

// ViewMode selects how the presentation layer lays out products.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

type pendingDelete struct {
	productID   int
	productName string
}

// Controller is the only writer of its repository. Every method is safe to
// call from several goroutines; calls are applied one at a time.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	store    repo.ProductRepository
	notifier notify.Notifier
	log      logrus.FieldLogger

	search *debounce.Debouncer[string]

	searchTerm      string
	debouncedSearch string
	currentPage     int
	viewMode        ViewMode
	editor          editor
	pendingDelete   *pendingDelete
	notifications   []models.Notification
	closed          bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sends every notification to n in addition to queueing it.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController starts a session over store.
func NewController(cfg Config, store repo.ProductRepository, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	c := &Controller{
		cfg:         cfg,
		store:       store,
		log:         logrus.StandardLogger(),
		currentPage: 1,
		viewMode:    ViewList,
		editor:      closedEditor(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.search = debounce.New(cfg.DebounceDelay, c.searchSettled)
	return c, nil
}

// Close cancels any pending search. Every later event fails with
// ErrControllerClosed.
func (c *Controller) Close() {
	c.search.Close()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Search records the live search text. The filter follows once the text has
// been stable for the debounce delay.
func (c *Controller) Search(text string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	c.searchTerm = text
	c.mu.Unlock()

	c.search.Observe(text)
	return nil
}

// FlushSearch applies the pending search text immediately.
func (c *Controller) FlushSearch() bool {
	return c.search.Flush()
}

func (c *Controller) searchSettled(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || term == c.debouncedSearch {
		return
	}
	c.debouncedSearch = term
	c.currentPage = 1
	c.log.WithField("search", term).Debug("search settled")
	c.reconcilePageLocked()
}

// ChangePage moves to page n, clamped to the last available page.
func (c *Controller) ChangePage(n int) error {
	if n < 1 {
		return ErrInvalidPage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	c.currentPage = n
	c.reconcilePageLocked()
	return nil
}

// ChangeViewMode switches between grid and list layout.
func (c *Controller) ChangeViewMode(mode ViewMode) error {
	if mode != ViewGrid && mode != ViewList {
		return ErrInvalidViewMode
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	c.viewMode = mode
	return nil
}

// reconcilePageLocked keeps currentPage within [1, totalPages] for the
// current filtered result.
func (c *Controller) reconcilePageLocked() {
	filtered := query.FilterByName(c.store.GetAll(), c.debouncedSearch)
	total := query.TotalPages(len(filtered), c.cfg.PageSize)
	if page := query.ClampPage(c.currentPage, total); page != c.currentPage {
		c.log.WithFields(logrus.Fields{"from": c.currentPage, "to": page}).Debug("page clamped")
		c.currentPage = page
	}
}

// queueLocked records n for the presentation layer and returns it so the
// caller can deliver it to the sink after releasing the lock.
func (c *Controller) queueLocked(kind models.NotificationKind, message string) models.Notification {
	n := notify.New(kind, message)
	c.notifications = append(c.notifications, n)
	return n
}

func (c *Controller) deliver(ctx context.Context, n models.Notification) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Notify(ctx, n); err != nil {
		c.log.WithError(err).WithField("notification_id", n.ID).Warn("could not deliver notification")
	}
}

// DrainNotifications returns and clears the queued notifications.
func (c *Controller) DrainNotifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.notifications
	c.notifications = nil
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

// Product returns a stored product by id.
func (c *Controller) Product(id int) (models.Product, error) {
	return c.store.GetByID(id)
}

// OpenAdd opens an empty editor for a new product. Any unsaved edit is
// discarded.
func (c *Controller) OpenAdd() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}

	c.editor = newEditor(EditorNew, 0, models.ProductInput{})
	c.log.Debug("editor opened for new product")
	return nil
}

// OpenEdit opens the editor pre-filled with the product's current values.
func (c *Controller) OpenEdit(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}

	p, err := c.store.GetByID(id)
	if err != nil {
		return err
	}
	c.editor = newEditor(EditorEditing, p.ID, validation.FormatInput(p))
	c.log.WithField("product_id", id).Debug("editor opened for existing product")
	return nil
}

// UpdateField changes one editor field, marks it touched and re-validates it.
func (c *Controller) UpdateField(field, value string) error {
	if !models.IsField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	if !c.editor.open() {
		return ErrEditorClosed
	}
	c.editor.setField(field, value)
	return nil
}

// CloseForm closes the editor and discards unsaved values and errors.
func (c *Controller) CloseForm() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}

	if c.editor.open() {
		c.log.Debug("editor closed")
	}
	c.editor = closedEditor()
	return nil
}

// SubmitResult reports the outcome of a submission.
type SubmitResult struct {
	Accepted bool               `json:"accepted"`
	Product  *models.Product    `json:"product,omitempty"`
	Errors   models.FieldErrors `json:"errors,omitempty"`
}

// Submit validates in and commits it: a new product is inserted, an edited
// one is replaced in place. A rejected submission leaves the editor open
// with every field error visible and the repository untouched.
func (c *Controller) Submit(ctx context.Context, in models.ProductInput) (SubmitResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return SubmitResult{}, ErrControllerClosed
	}
	if !c.editor.open() {
		c.mu.Unlock()
		return SubmitResult{}, ErrEditorClosed
	}

	c.editor.values = in
	c.editor.touchAll()

	patch, errs := validation.Parse(in)
	if len(errs) > 0 {
		c.editor.errors = errs
		c.mu.Unlock()
		c.log.WithField("fields", fieldNames(errs)).Info("product submission rejected")
		return SubmitResult{Errors: errs}, nil
	}

	var (
		saved models.Product
		n     models.Notification
	)
	switch c.editor.mode {
	case EditorEditing:
		id := c.editor.productID
		updated, found, err := c.store.Replace(id, patch)
		if err != nil {
			n = c.queueLocked(models.NotificationError, MsgSaveFailed)
			c.mu.Unlock()
			c.deliver(ctx, n)
			return SubmitResult{}, fmt.Errorf("replace product %d: %w", id, err)
		}
		c.editor = closedEditor()
		if !found {
			n = c.queueLocked(models.NotificationError, MsgProductGone)
			c.reconcilePageLocked()
			c.mu.Unlock()
			c.log.WithField("product_id", id).Info("edited product no longer exists")
			c.deliver(ctx, n)
			return SubmitResult{}, nil
		}
		saved = updated
		n = c.queueLocked(models.NotificationSuccess, MsgProductUpdated)
		c.log.WithField("product_id", id).Info("product updated")
	default:
		created, err := c.store.Insert(patch.Apply(models.Product{}))
		if err != nil {
			n = c.queueLocked(models.NotificationError, MsgSaveFailed)
			c.mu.Unlock()
			c.deliver(ctx, n)
			return SubmitResult{}, fmt.Errorf("insert product: %w", err)
		}
		c.editor = closedEditor()
		saved = created
		n = c.queueLocked(models.NotificationSuccess, MsgProductAdded)
		c.log.WithField("product_id", created.ID).Info("product added")
	}
	c.reconcilePageLocked()
	c.mu.Unlock()

	c.deliver(ctx, n)
	return SubmitResult{Accepted: true, Product: &saved}, nil
}

// RequestDelete asks for confirmation before deleting a product.
func (c *Controller) RequestDelete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}

	p, err := c.store.GetByID(id)
	if err != nil {
		return err
	}
	c.pendingDelete = &pendingDelete{productID: p.ID, productName: p.Name}
	return nil
}

// ConfirmDelete removes the product awaiting confirmation. A product that
// is already gone is ignored.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	pd := c.pendingDelete
	if pd == nil {
		c.mu.Unlock()
		return ErrNoPendingDelete
	}
	c.pendingDelete = nil

	if !c.store.Remove(pd.productID) {
		c.reconcilePageLocked()
		c.mu.Unlock()
		c.log.WithField("product_id", pd.productID).Debug("product already deleted")
		return nil
	}
	n := c.queueLocked(models.NotificationSuccess, MsgProductDeleted)
	c.reconcilePageLocked()
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"product_id": pd.productID, "name": pd.productName}).Info("product deleted")
	c.deliver(ctx, n)
	return nil
}

// CancelDelete dismisses the confirmation without deleting anything.
func (c *Controller) CancelDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	c.pendingDelete = nil
	return nil
}

func fieldNames(errs models.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for _, f := range models.Fields {
		if errs.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
