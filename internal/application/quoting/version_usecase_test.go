package quoting_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

func newVersionFixture(t *testing.T) (*quoting.VersionUseCase, *quoteFixture) {
	t.Helper()
	f := newQuoteFixture(t)
	return quoting.NewVersionUseCase(f.quoteRepo, f.versionRepo), f
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración
// ──────────────────────────────────────────────────────────────────────────────

func TestVersionCreate_NumeracionConsecutiva(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 120_000)

	v1, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{Note: "inicial"})
	require.NoError(t, err)
	v2, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, v1.Version)
	assert.Equal(t, 2, v2.Version)
	assert.Equal(t, "inicial", v1.Note)
}

func TestVersionCreate_PropuestaInexistente(t *testing.T) {
	uc, _ := newVersionFixture(t)

	_, err := uc.Create(context.Background(), "no-existe", "", dto.CreateVersionRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestVersionCreate_ReintentaAnteColision: si el INSERT pierde la carrera de
// numeración (unique violation), el caso de uso reintenta con snapshot fresco.
func TestVersionCreate_ReintentaAnteColision(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 50_000)
	f.versionRepo.failCreates = 2 // dos colisiones, el tercer intento entra

	v, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, v.Version)
}

func TestVersionCreate_SeRindeTrasAgotarReintentos(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 50_000)
	f.versionRepo.failCreates = 10

	_, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestVersionCreate_ConcurrenciaSinHuecosNiDuplicados: N goroutines versionando
// la misma propuesta terminan con números 1..N exactos.
func TestVersionCreate_ConcurrenciaSinHuecosNiDuplicados(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 50_000)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	versions, err := uc.List(context.Background(), quote.ID)
	require.NoError(t, err)
	require.Len(t, versions, n)
	seen := make(map[int]bool, n)
	for _, v := range versions {
		assert.False(t, seen[v.Version], "número de versión duplicado: %d", v.Version)
		seen[v.Version] = true
		assert.GreaterOrEqual(t, v.Version, 1)
		assert.LessOrEqual(t, v.Version, n)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot e inmutabilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestVersionCreate_SnapshotCongelaItemsYTotales(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 0)
	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)
	_, err = f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "percent", Percent: "10",
	})
	require.NoError(t, err)

	v, err := uc.Create(context.Background(), quote.ID, "admin-1", dto.CreateVersionRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.SnapshotSchemaVersion, v.Snapshot.SchemaVersion)
	assert.Equal(t, int64(100_000), v.Snapshot.SubtotalCents)
	assert.Equal(t, int64(10_000), v.Snapshot.DiscountCents)
	assert.Equal(t, int64(90_000), v.Snapshot.AmountCents)
	assert.Equal(t, "10", v.Snapshot.DiscountPercent)
	assert.Equal(t, "admin-1", v.CreatedBy)
	require.Len(t, v.Snapshot.Items, 1)
	assert.Equal(t, int64(50_000), v.Snapshot.Items[0].UnitPriceCents)
}

// TestVersionDiff_CeroReciénCreada: el diff contra el estado que originó el
// snapshot es cero; cambiar un precio después mueve el total vigente pero no
// el snapshot.
func TestVersionDiff_CeroRecienCreadaYEstableAnteCambios(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 0)
	resp, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)

	v, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.DiffCents)

	// Bajar el precio del ítem: el total vigente baja, el snapshot no.
	_, err = f.uc.UpdateItem(context.Background(), quote.ID, resp.Items[0].ID, dto.UpdateQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 30_000,
	})
	require.NoError(t, err)

	versions, err := uc.List(context.Background(), quote.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, int64(100_000), versions[0].Snapshot.AmountCents,
		"el snapshot es inmutable")
	assert.Equal(t, int64(40_000), versions[0].DiffCents,
		"la versión estaba R$ 400,00 más cara que el estado actual")
}

func TestVersionDiff_SnapshotSinItemsUsaMontoRegistrado(t *testing.T) {
	snap := entity.QuoteSnapshot{
		SchemaVersion: entity.SnapshotSchemaVersion,
		Quote:         entity.SnapshotQuote{AmountCents: 120_000},
	}
	v := &entity.QuoteVersion{Snapshot: snap}

	assert.Equal(t, pricing.Money(20_000), quoting.Diff(v, 100_000))
	assert.Equal(t, pricing.Money(-30_000), quoting.Diff(v, 150_000))
}

func TestVersionList_OrdenDescendente(t *testing.T) {
	uc, f := newVersionFixture(t)
	quote := f.createQuote(t, 10_000)
	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), quote.ID, "", dto.CreateVersionRequest{})
		require.NoError(t, err)
	}

	versions, err := uc.List(context.Background(), quote.ID)
	require.NoError(t, err)

	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].Version, "la más nueva primero")
	assert.Equal(t, 2, versions[1].Version)
	assert.Equal(t, 1, versions[2].Version)
}
