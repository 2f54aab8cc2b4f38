package handlers

import (
	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

type SearchRequest struct {
	Text string `json:"text"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type ViewModeRequest struct {
	Mode session.ViewMode `json:"mode"`
}

type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ProductRequest is the raw editor payload; every field is text.
type ProductRequest = models.ProductInput

type SubmitResponse struct {
	Accepted bool                `json:"accepted"`
	Product  *models.Product     `json:"product,omitempty"`
	Errors   models.FieldErrors  `json:"errors,omitempty"`
	View     session.Observation `json:"view"`
}

type NotificationsResult struct {
	Data []models.Notification `json:"data"`
}
