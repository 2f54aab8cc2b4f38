package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/notify"
	"github.com/rogerio-castellano/catalog-manager/internal/repo"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

var ctx = context.Background()

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newSession(t *testing.T, products ...models.Product) (*Controller, *repo.InMemoryProductRepository, *notify.Recorder) {
	t.Helper()

	store := repo.NewInMemoryProductRepository()
	require.NoError(t, store.Seed(products...))

	rec := &notify.Recorder{}
	cfg := DefaultConfig()
	cfg.DebounceDelay = time.Hour
	c, err := NewController(cfg, store, WithNotifier(rec), WithLogger(quietLogger()))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, store, rec
}

func numbered(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			ID:       i + 1,
			Name:     fmt.Sprintf("Item %02d", i+1),
			Price:    10,
			Category: "Home",
			Stock:    20,
		}
	}
	return products
}

func validInput() models.ProductInput {
	return models.ProductInput{Name: "Graphic Tablet", Price: "329", Category: "Electronics", Stock: "25"}
}

func TestNewController_RejectsInvalidConfig(t *testing.T) {
	_, err := NewController(Config{PageSize: 0}, repo.NewInMemoryProductRepository())
	assert.Error(t, err)
}

func TestSearch_CaseInsensitiveAfterSettle(t *testing.T) {
	c, _, _ := newSession(t,
		models.Product{ID: 1, Name: "iPhone 15 Pro", Price: 999, Category: "Electronics", Stock: 45},
		models.Product{ID: 2, Name: "Desk Lamp", Price: 69, Category: "Home", Stock: 55},
	)

	require.NoError(t, c.Search("iphone"))
	v := c.View()
	assert.Equal(t, "iphone", v.SearchTerm)
	assert.Equal(t, "", v.DebouncedSearch)
	assert.True(t, v.SearchPending)
	assert.Len(t, v.Products, 2, "filter must wait for the settled term")

	require.True(t, c.FlushSearch())
	v = c.View()
	require.Len(t, v.Products, 1)
	assert.Equal(t, 1, v.Products[0].ID)
	assert.False(t, v.SearchPending)
}

func TestSearch_DebouncedWithRealTimer(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	require.NoError(t, store.Seed(numbered(3)...))
	cfg := DefaultConfig()
	cfg.DebounceDelay = 20 * time.Millisecond
	c, err := NewController(cfg, store, WithLogger(quietLogger()))
	require.NoError(t, err)
	defer c.Close()

	for _, text := range []string{"I", "It", "Item 0", "Item 02"} {
		require.NoError(t, c.Search(text))
	}

	require.Eventually(t, func() bool { return c.View().DebouncedSearch == "Item 02" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, c.View().FilteredCount)
}

func TestSearch_ResetsPage(t *testing.T) {
	c, _, _ := newSession(t, numbered(20)...)

	require.NoError(t, c.ChangePage(3))
	assert.Equal(t, 3, c.View().CurrentPage)

	require.NoError(t, c.Search("Item"))
	c.FlushSearch()

	v := c.View()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 3, v.TotalPages)
}

func TestSearch_SameSettledTermKeepsPage(t *testing.T) {
	c, _, _ := newSession(t, numbered(20)...)

	require.NoError(t, c.ChangePage(2))
	require.NoError(t, c.Search("x"))
	require.NoError(t, c.Search(""))
	c.FlushSearch()

	assert.Equal(t, 2, c.View().CurrentPage)
}

func TestChangePage_ClampsToTotalPages(t *testing.T) {
	c, _, _ := newSession(t, numbered(9)...)

	require.NoError(t, c.ChangePage(5))
	assert.Equal(t, 2, c.View().CurrentPage)

	assert.ErrorIs(t, c.ChangePage(0), ErrInvalidPage)
}

func TestChangeViewMode(t *testing.T) {
	c, _, _ := newSession(t)

	assert.Equal(t, ViewList, c.View().ViewMode)
	require.NoError(t, c.ChangeViewMode(ViewGrid))
	assert.Equal(t, ViewGrid, c.View().ViewMode)
	assert.ErrorIs(t, c.ChangeViewMode("table"), ErrInvalidViewMode)
}

func TestSubmit_MissingPrice(t *testing.T) {
	c, store, rec := newSession(t, numbered(2)...)
	require.NoError(t, c.OpenAdd())

	in := validInput()
	in.Price = ""
	res, err := c.Submit(ctx, in)
	require.NoError(t, err)

	assert.False(t, res.Accepted)
	assert.Equal(t, models.FieldErrors{models.FieldPrice: validation.MsgRequired}, res.Errors)
	assert.Equal(t, 2, store.Len())
	assert.Empty(t, rec.Messages())

	v := c.View()
	assert.True(t, v.Editor.Open)
	assert.Equal(t, validation.MsgRequired, v.Editor.Errors[models.FieldPrice])
}

func TestSubmit_NegativePrice(t *testing.T) {
	c, store, _ := newSession(t, numbered(2)...)
	require.NoError(t, c.OpenAdd())

	in := validInput()
	in.Price = "-5"
	res, err := c.Submit(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, validation.MsgPositivePrice, res.Errors[models.FieldPrice])
	assert.Equal(t, 2, store.Len())
}

func TestSubmit_ShowsAllErrorsAtOnce(t *testing.T) {
	c, _, _ := newSession(t)
	require.NoError(t, c.OpenAdd())

	require.NoError(t, c.UpdateField(models.FieldName, ""))
	assert.Equal(t, models.FieldErrors{models.FieldName: validation.MsgRequired}, c.View().Editor.Errors)

	_, err := c.Submit(ctx, models.ProductInput{})
	require.NoError(t, err)

	errs := c.View().Editor.Errors
	assert.Equal(t, models.FieldErrors{
		models.FieldName:     validation.MsgRequired,
		models.FieldCategory: validation.MsgRequired,
		models.FieldPrice:    validation.MsgRequired,
	}, errs)
}

func TestUpdateField_OnlyTouchedFieldsShowErrors(t *testing.T) {
	c, _, _ := newSession(t)
	require.NoError(t, c.OpenAdd())

	require.NoError(t, c.UpdateField(models.FieldPrice, "abc"))
	v := c.View()
	assert.Equal(t, models.FieldErrors{models.FieldPrice: validation.MsgPositivePrice}, v.Editor.Errors)
	assert.Equal(t, []string{models.FieldPrice}, v.Editor.Touched)

	require.NoError(t, c.UpdateField(models.FieldPrice, "12"))
	assert.Empty(t, c.View().Editor.Errors)

	assert.ErrorIs(t, c.UpdateField("sku", "1"), ErrUnknownField)
}

func TestUpdateField_EditorClosed(t *testing.T) {
	c, _, _ := newSession(t)
	assert.ErrorIs(t, c.UpdateField(models.FieldName, "x"), ErrEditorClosed)
}

func TestSubmit_AddDefaultsStockAndPrepends(t *testing.T) {
	c, store, rec := newSession(t, numbered(2)...)
	require.NoError(t, c.OpenAdd())

	in := validInput()
	in.Stock = ""
	res, err := c.Submit(ctx, in)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	assert.Equal(t, 0, res.Product.Stock)
	assert.Equal(t, 3, res.Product.ID)
	assert.Equal(t, res.Product.ID, store.GetAll()[0].ID)
	assert.Equal(t, []string{MsgProductAdded}, rec.Messages())

	v := c.View()
	assert.False(t, v.Editor.Open)
	assert.Empty(t, v.Editor.Errors)
	assert.Empty(t, v.Editor.Touched)
}

func TestSubmit_EditChangesOnlyPrice(t *testing.T) {
	original := models.Product{ID: 1, Name: "iPhone 15 Pro", Price: 999, Category: "Electronics", Stock: 45, Description: "Titanium"}
	c, store, rec := newSession(t, append([]models.Product{original}, numbered(3)[1:]...)...)

	require.NoError(t, c.OpenEdit(1))
	v := c.View()
	require.Equal(t, EditorEditing, v.Editor.Mode)
	require.Equal(t, "999", v.Editor.Values.Price)
	require.Equal(t, "45", v.Editor.Values.Stock)

	in := v.Editor.Values
	in.Price = "899"
	res, err := c.Submit(ctx, in)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	want := original
	want.Price = 899
	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, store.GetAll()[0].ID, "edit must keep position")
	assert.Equal(t, []string{MsgProductUpdated}, rec.Messages())
}

func TestSubmit_EditedProductDeletedMeanwhile(t *testing.T) {
	c, store, rec := newSession(t, numbered(2)...)

	require.NoError(t, c.OpenEdit(2))
	store.Remove(2)

	res, err := c.Submit(ctx, validInput())
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 1, store.Len())
	assert.False(t, c.View().Editor.Open)
	assert.Equal(t, []string{MsgProductGone}, rec.Messages())
}

func TestSubmit_EditorClosed(t *testing.T) {
	c, _, _ := newSession(t)
	_, err := c.Submit(ctx, validInput())
	assert.ErrorIs(t, err, ErrEditorClosed)
}

func TestOpenEdit_UnknownProduct(t *testing.T) {
	c, _, _ := newSession(t)
	assert.ErrorIs(t, c.OpenEdit(42), repo.ErrProductNotFound)
	assert.False(t, c.View().Editor.Open)
}

func TestCloseForm_DiscardsEdits(t *testing.T) {
	c, store, _ := newSession(t, numbered(1)...)

	require.NoError(t, c.OpenEdit(1))
	require.NoError(t, c.UpdateField(models.FieldName, ""))
	require.NoError(t, c.CloseForm())

	v := c.View()
	assert.False(t, v.Editor.Open)
	assert.Empty(t, v.Editor.Errors)

	got, _ := store.GetByID(1)
	assert.Equal(t, "Item 01", got.Name)

	require.NoError(t, c.OpenAdd())
	assert.Equal(t, models.ProductInput{}, c.View().Editor.Values)
}

func TestDelete_LastItemOnLastPageClampsPage(t *testing.T) {
	c, store, rec := newSession(t, numbered(9)...)

	require.NoError(t, c.ChangePage(2))
	v := c.View()
	require.Equal(t, 2, v.TotalPages)
	require.Len(t, v.Products, 1)

	last := v.Products[0]
	require.NoError(t, c.RequestDelete(last.ID))
	v = c.View()
	assert.True(t, v.Delete.Open)
	assert.Equal(t, last.Name, v.Delete.ProductName)

	require.NoError(t, c.ConfirmDelete(ctx))

	v = c.View()
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Len(t, v.Products, 8)
	assert.False(t, v.Delete.Open)
	assert.Equal(t, 8, store.Len())
	assert.Equal(t, []string{MsgProductDeleted}, rec.Messages())
}

func TestDelete_Cancel(t *testing.T) {
	c, store, rec := newSession(t, numbered(3)...)

	require.NoError(t, c.RequestDelete(2))
	require.NoError(t, c.CancelDelete())

	assert.False(t, c.View().Delete.Open)
	assert.Equal(t, 3, store.Len())
	assert.Empty(t, rec.Messages())
	assert.ErrorIs(t, c.ConfirmDelete(ctx), ErrNoPendingDelete)
}

func TestDelete_AlreadyRemovedIsNoOp(t *testing.T) {
	c, store, rec := newSession(t, numbered(3)...)

	require.NoError(t, c.RequestDelete(2))
	store.Remove(2)

	require.NoError(t, c.ConfirmDelete(ctx))
	assert.Equal(t, 2, store.Len())
	assert.Empty(t, rec.Messages())
}

func TestDelete_UnknownProduct(t *testing.T) {
	c, _, _ := newSession(t)
	assert.ErrorIs(t, c.RequestDelete(7), repo.ErrProductNotFound)
}

func TestStatsIgnoreSearch(t *testing.T) {
	c, _, _ := newSession(t,
		models.Product{ID: 1, Name: "Compact Drone", Price: 899, Category: "Electronics", Stock: 10},
		models.Product{ID: 2, Name: "Leather Wallet", Price: 79, Category: "Fashion", Stock: 5},
	)

	require.NoError(t, c.Search("drone"))
	c.FlushSearch()

	v := c.View()
	assert.Equal(t, 1, v.FilteredCount)
	assert.Equal(t, 2, v.Stats.Count)
	assert.Equal(t, 1, v.Stats.LowStockCount)
	assert.Equal(t, 15, v.Stats.TotalUnits)
	assert.Equal(t, "9385", v.Stats.TotalValue.String())
	assert.False(t, v.Products[0].LowStock)
	assert.Equal(t, "$899.00", v.Products[0].PriceDisplay)
}

func TestDrainNotifications(t *testing.T) {
	c, _, _ := newSession(t)
	require.NoError(t, c.OpenAdd())
	_, err := c.Submit(ctx, validInput())
	require.NoError(t, err)

	peeked := c.View().Notifications
	require.Len(t, peeked, 1)
	assert.Len(t, c.View().Notifications, 1)

	got := c.DrainNotifications()
	require.Len(t, got, 1)
	assert.Equal(t, peeked[0].ID, got[0].ID)
	assert.Equal(t, MsgProductAdded, got[0].Message)
	assert.Equal(t, models.NotificationSuccess, got[0].Kind)
	assert.Empty(t, c.DrainNotifications())
	assert.Empty(t, c.View().Notifications)
}

func TestClose_IgnoresLaterEvents(t *testing.T) {
	c, store, rec := newSession(t, numbered(3)...)

	require.NoError(t, c.Search("Item 01"))
	require.NoError(t, c.OpenAdd())
	require.NoError(t, c.RequestDelete(2))
	c.Close()

	assert.False(t, c.FlushSearch())
	assert.Equal(t, "", c.View().DebouncedSearch)
	assert.ErrorIs(t, c.Search("x"), ErrControllerClosed)
	assert.ErrorIs(t, c.ChangePage(2), ErrControllerClosed)
	assert.ErrorIs(t, c.UpdateField(models.FieldName, "x"), ErrControllerClosed)

	res, err := c.Submit(ctx, validInput())
	assert.ErrorIs(t, err, ErrControllerClosed)
	assert.False(t, res.Accepted)

	assert.ErrorIs(t, c.ConfirmDelete(ctx), ErrControllerClosed)
	assert.ErrorIs(t, c.CancelDelete(), ErrControllerClosed)
	assert.ErrorIs(t, c.CloseForm(), ErrControllerClosed)

	assert.Equal(t, 3, store.Len())
	assert.Empty(t, rec.Messages())
	assert.Empty(t, c.DrainNotifications())
}

func TestImport(t *testing.T) {
	c, store, rec := newSession(t, numbered(1)...)

	csv := "name,price,category,stock\nTravel Backpack,159,Fashion,70\nBad,,Fashion,1\n"
	res, err := c.Import(ctx, strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Travel Backpack", store.GetAll()[0].Name)
	assert.Equal(t, []string{"1 products imported successfully!"}, rec.Messages())
}
