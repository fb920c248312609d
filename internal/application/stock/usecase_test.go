package stock_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes/internal/application/stock"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: store compartido + repos + TxRunner con rollback real
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. El fakeTxRunner toma un snapshot
// antes de ejecutar el callback y lo restaura si falla, para poder verificar
// la atomicidad lote+movimiento igual que con una transacción real.
type memStore struct {
	products  map[int64]*entity.Product
	batches   map[int64]*entity.Batch
	movements []*entity.Movement

	nextBatchID    int64
	nextMovementID int64

	failMovementCreate bool // simula un fallo de persistencia a mitad de operación
	conflictOnCreate   int  // próximos N Create de lote devuelven ErrConflict (código ganado por otra entrada)
	batchCreateCalls   int  // cuenta los intentos de Create para verificar reintentos
}

func newMemStore() *memStore {
	return &memStore{
		products:       make(map[int64]*entity.Product),
		batches:        make(map[int64]*entity.Batch),
		nextBatchID:    1,
		nextMovementID: 1,
	}
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		products:           s.products, // los productos no mutan en estas operaciones
		batches:            make(map[int64]*entity.Batch, len(s.batches)),
		movements:          make([]*entity.Movement, len(s.movements)),
		nextBatchID:        s.nextBatchID,
		nextMovementID:     s.nextMovementID,
		failMovementCreate: s.failMovementCreate,
	}
	for id, b := range s.batches {
		clone := *b
		cp.batches[id] = &clone
	}
	copy(cp.movements, s.movements)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.batches = snap.batches
	s.movements = snap.movements
	s.nextBatchID = snap.nextBatchID
	s.nextMovementID = snap.nextMovementID
}

func (s *memStore) addProduct(id, companyID int64) *entity.Product {
	p := &entity.Product{ID: id, CompanyID: companyID, Name: "producto", Slug: "producto"}
	s.products[id] = p
	return p
}

func (s *memStore) addBatch(productID int64, code string, available int64, expiration *time.Time) *entity.Batch {
	b := &entity.Batch{
		ID:                s.nextBatchID,
		ProductID:         productID,
		Code:              code,
		QuantityReceived:  available,
		QuantityAvailable: available,
		PurchasePrice:     decimal.NewFromInt(10),
		ExpirationDate:    expiration,
		ReceivedAt:        time.Now(),
	}
	s.nextBatchID++
	s.batches[b.ID] = b
	return b
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByIDAndCompany(id, companyID int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetByCompanyAndSlug(companyID int64, slug string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (r *fakeProductRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id, companyID int64) error { return nil }

type fakeBatchRepo struct{ store *memStore }

func (r *fakeBatchRepo) Create(b *entity.Batch) error {
	r.store.batchCreateCalls++
	if r.store.conflictOnCreate > 0 {
		r.store.conflictOnCreate--
		return domain.ErrConflict
	}
	if b.Code != "" {
		for _, other := range r.store.batches {
			if other.ProductID == b.ProductID && other.Code == b.Code {
				return domain.ErrConflict
			}
		}
	}
	b.ID = r.store.nextBatchID
	r.store.nextBatchID++
	clone := *b
	r.store.batches[b.ID] = &clone
	return nil
}

func (r *fakeBatchRepo) companyOf(b *entity.Batch) int64 {
	if p, ok := r.store.products[b.ProductID]; ok {
		return p.CompanyID
	}
	return 0
}

func (r *fakeBatchRepo) GetByIDAndCompany(id, companyID int64) (*entity.Batch, error) {
	b, ok := r.store.batches[id]
	if !ok || r.companyOf(b) != companyID {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBatchRepo) GetForUpdate(id, companyID int64) (*entity.Batch, error) {
	return r.GetByIDAndCompany(id, companyID)
}

func (r *fakeBatchRepo) ListAvailableForUpdate(productID int64) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for _, b := range r.store.batches {
		if b.ProductID == productID && b.QuantityAvailable > 0 {
			clone := *b
			list = append(list, &clone)
		}
	}
	// Orden FEFO: vencimiento ascendente, sin fecha al final, id como desempate.
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.ExpirationDate == nil && b.ExpirationDate == nil:
			return a.ID < b.ID
		case a.ExpirationDate == nil:
			return false
		case b.ExpirationDate == nil:
			return true
		case a.ExpirationDate.Equal(*b.ExpirationDate):
			return a.ID < b.ID
		default:
			return a.ExpirationDate.Before(*b.ExpirationDate)
		}
	})
	return list, nil
}

func (r *fakeBatchRepo) Save(b *entity.Batch) error {
	stored, ok := r.store.batches[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.QuantityAvailable = b.QuantityAvailable
	return nil
}

func (r *fakeBatchRepo) LastByCompany(companyID int64) (*entity.Batch, error) {
	var last *entity.Batch
	for _, b := range r.store.batches {
		if r.companyOf(b) != companyID {
			continue
		}
		if last == nil || b.ID > last.ID {
			last = b
		}
	}
	if last == nil {
		return nil, nil
	}
	clone := *last
	return &clone, nil
}

func (r *fakeBatchRepo) SumAvailableByProduct(productID int64) (int64, error) {
	var total int64
	for _, b := range r.store.batches {
		if b.ProductID == productID {
			total += b.QuantityAvailable
		}
	}
	return total, nil
}

func (r *fakeBatchRepo) ListByCompany(companyID, productID int64, limit, offset int) ([]*entity.Batch, error) {
	return nil, nil
}
func (r *fakeBatchRepo) Delete(id, companyID int64) error { return nil }

type fakeMovementRepo struct{ store *memStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.store.failMovementCreate {
		return errors.New("fallo simulado de persistencia")
	}
	m.ID = r.store.nextMovementID
	r.store.nextMovementID++
	clone := *m
	r.store.movements = append(r.store.movements, &clone)
	return nil
}
func (r *fakeMovementRepo) GetByIDAndCompany(id, companyID int64) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByCompany(companyID int64, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) Delete(id, companyID int64) error { return nil }

// fakeTxRunner ejecuta el callback sobre el store y deshace los cambios si
// falla, imitando el commit/rollback del runner real.
type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	batchRepo repository.BatchRepository,
	movRepo repository.MovementRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(&fakeBatchRepo{store: r.store}, &fakeMovementRepo{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

func newTestUseCase(store *memStore) *stock.UseCase {
	return stock.NewUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakeBatchRepo{store: store},
	)
}

func dateP(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

const (
	companyID = int64(7)
	productID = int64(1)
)

// ──────────────────────────────────────────────────────────────────────────────
// RegisterEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_CreaLoteYMovimientoIN(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	batch, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID:     companyID,
		ProductID:     productID,
		Quantity:      50,
		PurchasePrice: decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)
	require.NotNil(t, batch)

	assert.Equal(t, "LOTE-7-0001", batch.Code, "sin lotes previos el código generado arranca en 0001")
	assert.Equal(t, int64(50), batch.QuantityReceived)
	assert.Equal(t, int64(50), batch.QuantityAvailable, "el lote nace con toda su cantidad disponible")

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, int64(50), mov.Quantity)
	assert.Equal(t, batch.ID, mov.BatchID)
	assert.Equal(t, stock.NoteEntry, mov.Note, "sin nota explícita se usa la nota por defecto")
}

func TestRegisterEntry_ConsecutivoIncrementa(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	first, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	second, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "LOTE-7-0001", first.Code)
	assert.Equal(t, "LOTE-7-0002", second.Code, "el consecutivo sigue al último lote de la empresa")
}

func TestRegisterEntry_CodigoManualSeRespeta(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	batch, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10,
		PurchasePrice: decimal.NewFromInt(5), Code: "PROVEEDOR-XYZ",
	})
	require.NoError(t, err)
	assert.Equal(t, "PROVEEDOR-XYZ", batch.Code)
}

func TestRegisterEntry_CodigoManualRepetido_Conflict(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	store.addBatch(productID, "PROVEEDOR-XYZ", 10, nil)
	uc := newTestUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10,
		PurchasePrice: decimal.NewFromInt(5), Code: "PROVEEDOR-XYZ",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "un código manual repetido no se reintenta")
}

func TestRegisterEntry_CodigoGeneradoEnConflicto_Reintenta(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	// Otra entrada concurrente ganó el consecutivo: el primer insert choca.
	store.conflictOnCreate = 1
	uc := newTestUseCase(store)

	batch, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	require.NoError(t, err, "un conflicto de código generado se reintenta y la entrada termina bien")
	require.NotNil(t, batch)

	assert.Equal(t, "LOTE-7-0001", batch.Code, "el reintento recalcula el consecutivo desde el último lote vigente")
	assert.Equal(t, 2, store.batchCreateCalls, "el segundo intento recalcula el consecutivo e inserta")
	assert.Len(t, store.batches, 1)
	require.Len(t, store.movements, 1, "el intento fallido no deja movimientos a medias")
	assert.Equal(t, entity.MovementTypeIn, store.movements[0].Type)
}

func TestRegisterEntry_CodigoGeneradoEnConflictoPersistente_AgotaReintentos(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	store.conflictOnCreate = 3
	uc := newTestUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "tras agotar los reintentos aflora el conflicto")
	assert.Empty(t, store.batches)
	assert.Empty(t, store.movements)
}

func TestRegisterEntry_CantidadInvalida(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 0, PurchasePrice: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio de compra negativo se rechaza")
}

func TestRegisterEntry_ProductoDeOtraEmpresa_NotFound(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: 99, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto ajeno es indistinguible de uno inexistente")
}

func TestRegisterEntry_Atomicidad_FalloDeMovimientoDeshaceElLote(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	store.failMovementCreate = true
	uc := newTestUseCase(store)

	_, err := uc.RegisterEntry(context.Background(), stock.EntryInput{
		CompanyID: companyID, ProductID: productID, Quantity: 10, PurchasePrice: decimal.NewFromInt(5),
	})
	require.Error(t, err)

	assert.Empty(t, store.batches, "si el movimiento no se persiste, el lote tampoco")
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterExit (FEFO)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_ConsumeEnOrdenFEFO(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	// El lote que vence después se registra primero: el orden de alta no importa.
	later := store.addBatch(productID, "LOTE-7-0001", 10, dateP(t, "2026-12-31"))
	sooner := store.addBatch(productID, "LOTE-7-0002", 5, dateP(t, "2026-09-15"))
	uc := newTestUseCase(store)

	movements, err := uc.RegisterExit(context.Background(), companyID, productID, 8, "venta mostrador")
	require.NoError(t, err)

	// El que vence antes se agota primero; el resto sale del siguiente.
	assert.Equal(t, int64(0), store.batches[sooner.ID].QuantityAvailable)
	assert.Equal(t, int64(7), store.batches[later.ID].QuantityAvailable)

	require.Len(t, movements, 2, "un movimiento OUT por lote tocado")
	assert.Equal(t, sooner.ID, movements[0].BatchID)
	assert.Equal(t, int64(5), movements[0].Quantity)
	assert.Equal(t, later.ID, movements[1].BatchID)
	assert.Equal(t, int64(3), movements[1].Quantity)

	assert.Equal(t, movements[0].Reference, movements[1].Reference,
		"todos los OUT de la misma salida comparten referencia")
	assert.NotEmpty(t, movements[0].Reference)
	for _, m := range movements {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.Equal(t, "venta mostrador", m.Note)
	}
}

func TestRegisterExit_LoteSinVencimientoVaAlFinal(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	noExpiry := store.addBatch(productID, "LOTE-7-0001", 10, nil)
	expiring := store.addBatch(productID, "LOTE-7-0002", 4, dateP(t, "2026-10-01"))
	uc := newTestUseCase(store)

	_, err := uc.RegisterExit(context.Background(), companyID, productID, 6, "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), store.batches[expiring.ID].QuantityAvailable,
		"el lote con fecha sale antes que el que no vence")
	assert.Equal(t, int64(8), store.batches[noExpiry.ID].QuantityAvailable)
}

func TestRegisterExit_ConservacionDeStock(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	store.addBatch(productID, "LOTE-7-0001", 5, dateP(t, "2026-09-01"))
	store.addBatch(productID, "LOTE-7-0002", 10, dateP(t, "2026-10-01"))
	uc := newTestUseCase(store)

	movements, err := uc.RegisterExit(context.Background(), companyID, productID, 12, "")
	require.NoError(t, err)

	var outTotal int64
	for _, m := range movements {
		outTotal += m.Quantity
	}
	assert.Equal(t, int64(12), outTotal, "la suma de los OUT iguala la cantidad pedida")

	remaining, err := uc.StockTotal(context.Background(), companyID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining, "15 disponibles menos 12 vendidos")
}

func TestRegisterExit_StockInsuficiente_NoMutaNada(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	a := store.addBatch(productID, "LOTE-7-0001", 5, dateP(t, "2026-09-01"))
	b := store.addBatch(productID, "LOTE-7-0002", 10, dateP(t, "2026-10-01"))
	uc := newTestUseCase(store)

	_, err := uc.RegisterExit(context.Background(), companyID, productID, 16, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), store.batches[a.ID].QuantityAvailable, "nada se consume si la suma no alcanza")
	assert.Equal(t, int64(10), store.batches[b.ID].QuantityAvailable)
	assert.Empty(t, store.movements, "una salida rechazada no deja rastro en el libro")
}

func TestRegisterExit_CantidadInvalida(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	uc := newTestUseCase(store)

	_, err := uc.RegisterExit(context.Background(), companyID, productID, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_RegistraDeltaAbsoluto(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 10, nil)
	uc := newTestUseCase(store)

	// Recuento a la baja: 10 -> 3, delta 7.
	require.NoError(t, uc.AdjustStock(context.Background(), companyID, batch.ID, 3, "recuento físico"))
	assert.Equal(t, int64(3), store.batches[batch.ID].QuantityAvailable)

	// Recuento al alza: 3 -> 12, delta 9. Puede superar lo recibido.
	require.NoError(t, uc.AdjustStock(context.Background(), companyID, batch.ID, 12, ""))
	assert.Equal(t, int64(12), store.batches[batch.ID].QuantityAvailable,
		"el ajuste puede subir la disponibilidad por encima de lo recibido")

	require.Len(t, store.movements, 2)
	assert.Equal(t, entity.MovementTypeAdjust, store.movements[0].Type)
	assert.Equal(t, int64(7), store.movements[0].Quantity, "el movimiento guarda la magnitud del delta")
	assert.Equal(t, "recuento físico", store.movements[0].Note)
	assert.Equal(t, int64(9), store.movements[1].Quantity)
	assert.Equal(t, stock.NoteAdjust, store.movements[1].Note)
}

func TestAdjustStock_SinCambioRegistraDeltaCero(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 10, nil)
	uc := newTestUseCase(store)

	require.NoError(t, uc.AdjustStock(context.Background(), companyID, batch.ID, 10, ""))

	require.Len(t, store.movements, 1, "un recuento sin diferencia también queda en el libro")
	assert.Equal(t, int64(0), store.movements[0].Quantity)
}

func TestAdjustStock_CantidadNegativa(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 10, nil)
	uc := newTestUseCase(store)

	err := uc.AdjustStock(context.Background(), companyID, batch.ID, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_LoteDeOtraEmpresa_NotFound(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 10, nil)
	uc := newTestUseCase(store)

	err := uc.AdjustStock(context.Background(), 99, batch.ID, 5, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkExpired
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkExpired_DescartaYRegistra(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 4, dateP(t, "2025-01-01"))
	uc := newTestUseCase(store)

	require.NoError(t, uc.MarkExpired(context.Background(), companyID, batch.ID))

	assert.Equal(t, int64(0), store.batches[batch.ID].QuantityAvailable)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeExpired, store.movements[0].Type)
	assert.Equal(t, int64(4), store.movements[0].Quantity, "el EXPIRED registra lo que había")
	assert.Equal(t, stock.NoteExpired, store.movements[0].Note)
}

func TestMarkExpired_Idempotente(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 4, dateP(t, "2025-01-01"))
	uc := newTestUseCase(store)

	require.NoError(t, uc.MarkExpired(context.Background(), companyID, batch.ID))
	require.NoError(t, uc.MarkExpired(context.Background(), companyID, batch.ID))

	assert.Len(t, store.movements, 1,
		"marcar vencido un lote ya agotado no genera movimientos nuevos")
}

func TestMarkExpired_LoteDeOtraEmpresa_NotFound(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	batch := store.addBatch(productID, "LOTE-7-0001", 4, dateP(t, "2025-01-01"))
	uc := newTestUseCase(store)

	err := uc.MarkExpired(context.Background(), 99, batch.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un lote ajeno es indistinguible de uno inexistente")
	assert.Equal(t, int64(4), store.batches[batch.ID].QuantityAvailable)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestStockTotal_SumaLotes(t *testing.T) {
	store := newMemStore()
	store.addProduct(productID, companyID)
	store.addBatch(productID, "LOTE-7-0001", 5, nil)
	store.addBatch(productID, "LOTE-7-0002", 10, dateP(t, "2026-10-01"))
	agotado := store.addBatch(productID, "LOTE-7-0003", 3, nil)
	agotado.QuantityAvailable = 0
	uc := newTestUseCase(store)

	total, err := uc.StockTotal(context.Background(), companyID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}

func TestStockTotal_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	_, err := uc.StockTotal(context.Background(), companyID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
