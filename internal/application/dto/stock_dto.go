package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInRequest body para POST /api/products/:id/stock/in (entrada de lote).
// ExpirationDate viene como "2006-01-02"; vacío = el lote no vence.
// Code es opcional: si falta se genera LOTE-{empresa}-{consecutivo}.
type StockInRequest struct {
	Quantity       int64           `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	ExpirationDate string          `json:"expiration_date,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
	Code           string          `json:"code,omitempty"`
	Note           string          `json:"note,omitempty"`
}

// StockOutRequest body para POST /api/products/:id/stock/out (salida FEFO).
type StockOutRequest struct {
	Quantity int64  `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// AdjustStockRequest body para POST /api/batches/:id/adjust.
// NewQuantity es la cantidad disponible resultante, no un delta.
type AdjustStockRequest struct {
	NewQuantity int64  `json:"new_quantity"`
	Note        string `json:"note,omitempty"`
}

// BatchResponse lote serializado.
type BatchResponse struct {
	ID                int64           `json:"id"`
	ProductID         int64           `json:"product_id"`
	Code              string          `json:"code,omitempty"`
	QuantityReceived  int64           `json:"quantity_received"`
	QuantityAvailable int64           `json:"quantity_available"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	ExpirationDate    *string         `json:"expiration_date,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	ReceivedAt        time.Time       `json:"received_at"`
}

// MovementResponse movimiento serializado.
type MovementResponse struct {
	ID        int64     `json:"id"`
	BatchID   int64     `json:"batch_id"`
	Type      string    `json:"movement_type"`
	Quantity  int64     `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockTotalResponse total disponible de un producto sumando sus lotes.
type StockTotalResponse struct {
	ProductID int64 `json:"product_id"`
	Total     int64 `json:"total"`
}
