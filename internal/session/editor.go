package session

import (
	"maps"
	"slices"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

// EditorMode is the state of the product editor.
type EditorMode string

const (
	EditorClosed  EditorMode = "closed"
	EditorNew     EditorMode = "new"
	EditorEditing EditorMode = "edit"
)

type editor struct {
	mode      EditorMode
	productID int
	values    models.ProductInput
	errors    models.FieldErrors
	touched   map[string]bool
}

func closedEditor() editor {
	return editor{mode: EditorClosed}
}

func newEditor(mode EditorMode, productID int, values models.ProductInput) editor {
	return editor{
		mode:      mode,
		productID: productID,
		values:    values,
		errors:    models.FieldErrors{},
		touched:   map[string]bool{},
	}
}

func (e *editor) open() bool {
	return e.mode != EditorClosed
}

// setField stores a value, marks the field touched and re-validates only
// that field.
func (e *editor) setField(field, value string) {
	e.values = e.values.Set(field, value)
	e.touched[field] = true
	if msg := validation.ValidateField(field, value); msg != "" {
		e.errors[field] = msg
	} else {
		delete(e.errors, field)
	}
}

// touchAll marks every field touched so all errors become visible at once.
func (e *editor) touchAll() {
	for _, f := range models.Fields {
		e.touched[f] = true
	}
}

// visibleErrors returns the errors of touched fields.
func (e *editor) visibleErrors() models.FieldErrors {
	out := models.FieldErrors{}
	for field, msg := range e.errors {
		if e.touched[field] {
			out[field] = msg
		}
	}
	return out
}

// EditorView is the observable state of the editor.
type EditorView struct {
	Open      bool                `json:"open"`
	Mode      EditorMode          `json:"mode"`
	ProductID int                 `json:"product_id,omitempty"`
	Values    models.ProductInput `json:"values"`
	Errors    models.FieldErrors  `json:"errors"`
	Touched   []string            `json:"touched"`
}

func (e *editor) view() EditorView {
	if !e.open() {
		return EditorView{Mode: EditorClosed, Errors: models.FieldErrors{}, Touched: []string{}}
	}
	touched := slices.Sorted(maps.Keys(e.touched))
	if touched == nil {
		touched = []string{}
	}
	return EditorView{
		Open:      true,
		Mode:      e.mode,
		ProductID: e.productID,
		Values:    e.values,
		Errors:    e.visibleErrors(),
		Touched:   touched,
	}
}
