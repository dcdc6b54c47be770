// Package model defines the persisted records of the print quote service.
package model

import (
	"time"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reference prefixes.
const (
	QuoteRefPrefix = "Q-"
	OrderRefPrefix = "D-"
)

// Quote statuses. Any other status string set by the shop is stored as is.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusConverted = "converted"
)

// Order statuses, in the wording used on the shop floor.
const (
	ProductionPending   = "En attente"
	ProductionCompleted = "Terminé"
	AccountingUnpaid    = "Non payé"
)

// StatusKind selects which of the two order statuses an update targets.
type StatusKind string

const (
	StatusProduction StatusKind = "prod"
	StatusAccounting StatusKind = "compta"
)

// ParseStatusKind maps a status kind name, defaulting to production.
func ParseStatusKind(s string) (StatusKind, bool) {
	switch s {
	case "", "prod", "production":
		return StatusProduction, true
	case "compta", "accounting":
		return StatusAccounting, true
	}
	return "", false
}

// QuoteRecord is a saved quote. Price is the quoted total excluding tax,
// with two decimals.
//
// @Description Saved customer quote
type QuoteRecord struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Ref          string              `bson:"ref" json:"ref" example:"Q-482913"`
	Client       string              `bson:"client" json:"client" example:"Imprimerie Centrale"`
	Product      pricing.ProductType `bson:"product" json:"product" example:"flyer"`
	Quantity     int                 `bson:"quantity" json:"quantity" example:"500"`
	Price        string              `bson:"price" json:"price" example:"48.00"`
	Description  string              `bson:"description" json:"description"`
	Salesperson  string              `bson:"salesperson,omitempty" json:"salesperson,omitempty"`
	Status       string              `bson:"status" json:"status" example:"pending"`
	ConvertedTo  string              `bson:"converted_to,omitempty" json:"converted_to,omitempty"`
	Quote        *pricing.Quote      `bson:"quote,omitempty" json:"quote,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	SavedAt      time.Time           `bson:"saved_at" json:"saved_at"`
	LastModified *time.Time          `bson:"last_modified,omitempty" json:"last_modified,omitempty"`
} // @name QuoteRecord

// OrderRecord is a confirmed order tracked through production and accounting.
//
// @Description Customer order
type OrderRecord struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Ref              string              `bson:"ref" json:"ref" example:"D-482977"`
	Client           string              `bson:"client" json:"client"`
	Product          pricing.ProductType `bson:"product" json:"product"`
	Quantity         int                 `bson:"quantity" json:"quantity"`
	Price            string              `bson:"price" json:"price" example:"48.00"`
	Description      string              `bson:"description" json:"description"`
	Salesperson      string              `bson:"salesperson,omitempty" json:"salesperson,omitempty"`
	ProductionStatus string              `bson:"production_status" json:"production_status" example:"En attente"`
	AccountingStatus string              `bson:"accounting_status" json:"accounting_status" example:"Non payé"`
	ConvertedFrom    string              `bson:"converted_from,omitempty" json:"converted_from,omitempty"`
	Quote            *pricing.Quote      `bson:"quote,omitempty" json:"quote,omitempty"`
	Date             time.Time           `bson:"date" json:"date"`
	SavedAt          time.Time           `bson:"saved_at" json:"saved_at"`
	LastModified     *time.Time          `bson:"last_modified,omitempty" json:"last_modified,omitempty"`
} // @name OrderRecord

// Status returns the status of the given kind.
func (o OrderRecord) Status(kind StatusKind) string {
	if kind == StatusAccounting {
		return o.AccountingStatus
	}
	return o.ProductionStatus
}

// RevenueStats sums order prices over three periods.
type RevenueStats struct {
	All   string `json:"all" example:"1520.00"`
	Today string `json:"today" example:"96.00"`
	Month string `json:"month" example:"840.00"`
}

// OrderStats is the dashboard summary of the order book.
//
// @Description Order book statistics
type OrderStats struct {
	Revenue         RevenueStats  `json:"revenue"`
	ProductionQueue []OrderRecord `json:"production_queue"`
	CompletedToday  []OrderRecord `json:"completed_today"`
} // @name OrderStats
