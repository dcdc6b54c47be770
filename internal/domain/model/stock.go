package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaperStock is the stock of one paper, counted in sheets. Price is the
// unit price of a sheet with two decimals.
//
// @Description Paper in stock
type PaperStock struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Code      string             `bson:"code" json:"code" example:"couche-135-mat"`
	Name      string             `bson:"name" json:"name" example:"Couché mat 135g"`
	Qty       int                `bson:"qty" json:"qty" example:"1200"`
	Threshold int                `bson:"threshold" json:"threshold" example:"500"`
	Price     string             `bson:"price" json:"price" example:"0.12"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
} // @name PaperStock

// LowOnStock reports whether the quantity has fallen to the alert
// threshold. A paper without a threshold never alerts.
func (p PaperStock) LowOnStock() bool {
	return p.Threshold > 0 && p.Qty <= p.Threshold
}

// StockMovement records a change to a paper's quantity. Delta is positive
// for a delivery and negative for sheets taken out.
//
// @Description Paper stock movement
type StockMovement struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Code     string             `bson:"code" json:"code" example:"couche-135-mat"`
	Delta    int                `bson:"delta" json:"delta" example:"-250"`
	QtyAfter int                `bson:"qty_after" json:"qty_after" example:"950"`
	Reason   string             `bson:"reason,omitempty" json:"reason,omitempty" example:"D-482977"`
	Actor    string             `bson:"actor,omitempty" json:"actor,omitempty"`
	At       time.Time          `bson:"at" json:"at"`
} // @name StockMovement

// StockStats summarizes the paper stock.
//
// @Description Paper stock summary
type StockStats struct {
	TotalTypes int    `json:"total_types" example:"12"`
	TotalQty   int    `json:"total_qty" example:"18400"`
	TotalValue string `json:"total_value" example:"2208.00"`
	Alerts     int    `json:"alerts" example:"2"`
} // @name StockStats
