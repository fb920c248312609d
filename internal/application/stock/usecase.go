package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/lote"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

// Notas por defecto cuando el caller no envía una.
const (
	NoteEntry   = "Ingreso de producto"
	NoteAdjust  = "Ajuste manual"
	NoteExpired = "Producto vencido"
)

// maxCodeRetries reintentos de la transacción de entrada cuando el código
// generado choca con el constraint único (otra entrada concurrente calculó
// el mismo consecutivo).
const maxCodeRetries = 3

// UseCase es el motor contable de stock. Cada operación corre como una
// transacción única (TxRunner): mutación de lotes y registro de movimientos
// son inseparables. Las salidas consumen lotes en orden FEFO (primero el que
// vence antes) bloqueando las filas con SELECT FOR UPDATE.
//
// El tenant llega siempre como companyID explícito, resuelto por la capa
// HTTP desde el token; un producto o lote de otra empresa responde
// ErrNotFound, indistinguible de uno inexistente.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
}

// NewUseCase construye el motor de stock.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, batchRepo repository.BatchRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, batchRepo: batchRepo}
}

// EntryInput entrada para RegisterEntry.
type EntryInput struct {
	CompanyID      int64
	ProductID      int64
	Quantity       int64
	PurchasePrice  decimal.Decimal
	ExpirationDate *time.Time // nil = no vence
	Supplier       string
	Code           string // vacío = generar LOTE-{empresa}-{consecutivo}
	Note           string
}

// RegisterEntry registra una entrada de mercancía: crea el lote con
// QuantityAvailable = QuantityReceived = Quantity y su movimiento IN, en una
// sola transacción. Si no viene código, se genera a partir del último lote
// de la empresa; un choque con el constraint único (product_id, code)
// reintenta la transacción completa con el consecutivo recalculado.
func (uc *UseCase) RegisterEntry(ctx context.Context, in EntryInput) (*entity.Batch, error) {
	if in.Quantity <= 0 || in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByIDAndCompany(in.ProductID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	generated := in.Code == ""
	attempts := 1
	if generated {
		attempts = maxCodeRetries
	}

	var batch *entity.Batch
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, movRepo repository.MovementRepository) error {
			code := in.Code
			if generated {
				last, err := batchRepo.LastByCompany(in.CompanyID)
				if err != nil {
					return err
				}
				lastCode := ""
				if last != nil {
					lastCode = last.Code
				}
				code = lote.FormatCode(in.CompanyID, lote.NextNumber(lastCode))
			}

			now := time.Now()
			b := &entity.Batch{
				ProductID:         product.ID,
				Code:              code,
				QuantityReceived:  in.Quantity,
				QuantityAvailable: in.Quantity,
				PurchasePrice:     in.PurchasePrice,
				ExpirationDate:    in.ExpirationDate,
				Supplier:          in.Supplier,
				ReceivedAt:        now,
			}
			if err := batchRepo.Create(b); err != nil {
				return err
			}

			note := in.Note
			if note == "" {
				note = NoteEntry
			}
			mov := &entity.Movement{
				BatchID:   b.ID,
				Type:      entity.MovementTypeIn,
				Quantity:  in.Quantity,
				Note:      note,
				Reference: uuid.New().String(),
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			batch = b
			return nil
		})
		if err == nil {
			return batch, nil
		}
		lastErr = err
		if !generated || !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		// Consecutivo repetido por entrada concurrente: recalcular y reintentar.
	}
	return nil, lastErr
}

// RegisterExit registra una salida FEFO: bloquea los lotes disponibles del
// producto en orden de vencimiento, verifica que la suma alcanza (si no,
// ErrInsufficientStock sin mutar nada) y consume lote a lote, registrando un
// movimiento OUT por cada lote tocado. Todos los OUT de la misma salida
// comparten Reference.
func (uc *UseCase) RegisterExit(ctx context.Context, companyID, productID, quantity int64, note string) ([]*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByIDAndCompany(productID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var movements []*entity.Movement
	err = uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, movRepo repository.MovementRepository) error {
		// El FOR UPDATE serializa salidas concurrentes sobre el mismo
		// producto: la verificación de suma y el consumo ven el mismo estado.
		batches, err := batchRepo.ListAvailableForUpdate(product.ID)
		if err != nil {
			return err
		}

		var total int64
		for _, b := range batches {
			total += b.QuantityAvailable
		}
		if total < quantity {
			return domain.ErrInsufficientStock
		}

		remaining := quantity
		reference := uuid.New().String()
		now := time.Now()
		for _, b := range batches {
			if remaining == 0 {
				break
			}
			used := b.QuantityAvailable
			if used > remaining {
				used = remaining
			}
			b.QuantityAvailable -= used
			if err := batchRepo.Save(b); err != nil {
				return err
			}
			mov := &entity.Movement{
				BatchID:   b.ID,
				Type:      entity.MovementTypeOut,
				Quantity:  used,
				Note:      note,
				Reference: reference,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			movements = append(movements, mov)
			remaining -= used
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// AdjustStock fija la cantidad disponible de un lote en newQuantity
// (recuento físico) y registra un ADJUST con la magnitud del delta. Es la
// única operación que puede subir la disponibilidad, incluso por encima de
// QuantityReceived: un recuento real puede corregir errores previos.
// Un ajuste sin cambio registra un ADJUST de cantidad 0 para que el libro
// refleje también los recuentos que no encontraron diferencia.
func (uc *UseCase) AdjustStock(ctx context.Context, companyID, batchID, newQuantity int64, note string) error {
	if newQuantity < 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, movRepo repository.MovementRepository) error {
		b, err := batchRepo.GetForUpdate(batchID, companyID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}

		delta := newQuantity - b.QuantityAvailable
		if delta < 0 {
			delta = -delta
		}
		b.QuantityAvailable = newQuantity
		if err := batchRepo.Save(b); err != nil {
			return err
		}

		if note == "" {
			note = NoteAdjust
		}
		mov := &entity.Movement{
			BatchID:   b.ID,
			Type:      entity.MovementTypeAdjust,
			Quantity:  delta,
			Note:      note,
			Reference: uuid.New().String(),
			CreatedAt: time.Now(),
		}
		return movRepo.Create(mov)
	})
}

// MarkExpired pone en cero la disponibilidad de un lote vencido y registra
// un EXPIRED con la cantidad que había. Idempotente: sobre un lote ya
// agotado no hace nada ni registra movimiento.
func (uc *UseCase) MarkExpired(ctx context.Context, companyID, batchID int64) error {
	return uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, movRepo repository.MovementRepository) error {
		b, err := batchRepo.GetForUpdate(batchID, companyID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.QuantityAvailable <= 0 {
			return nil
		}

		expired := b.QuantityAvailable
		b.QuantityAvailable = 0
		if err := batchRepo.Save(b); err != nil {
			return err
		}
		mov := &entity.Movement{
			BatchID:   b.ID,
			Type:      entity.MovementTypeExpired,
			Quantity:  expired,
			Note:      NoteExpired,
			Reference: uuid.New().String(),
			CreatedAt: time.Now(),
		}
		return movRepo.Create(mov)
	})
}

// StockTotal devuelve la suma de disponibilidad de todos los lotes del
// producto.
func (uc *UseCase) StockTotal(ctx context.Context, companyID, productID int64) (int64, error) {
	product, err := uc.productRepo.GetByIDAndCompany(productID, companyID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return uc.batchRepo.SumAvailableByProduct(product.ID)
}
