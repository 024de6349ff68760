package quoting_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

const testLinkDays = 14

type quoteFixture struct {
	uc             *quoting.QuoteUseCase
	quoteRepo      *fakeQuoteRepo
	clientRepo     *fakeClientRepo
	serviceRepo    *fakeServiceRepo
	versionRepo    *fakeVersionRepo
	acceptanceRepo *fakeAcceptanceRepo
	clientID       string
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	t.Helper()
	f := &quoteFixture{
		quoteRepo:      newFakeQuoteRepo(),
		clientRepo:     newFakeClientRepo(),
		serviceRepo:    newFakeServiceRepo(),
		versionRepo:    newFakeVersionRepo(),
		acceptanceRepo: newFakeAcceptanceRepo(),
		clientID:       uuid.New().String(),
	}
	require.NoError(t, f.clientRepo.Create(&entity.Client{
		ID:     f.clientID,
		Name:   "Acme",
		Email:  "contato@acme.com",
		Status: entity.ClientStatusActive,
	}))
	tx := &fakeTxRunner{
		quoteRepo:      f.quoteRepo,
		versionRepo:    f.versionRepo,
		acceptanceRepo: f.acceptanceRepo,
	}
	f.uc = quoting.NewQuoteUseCase(
		f.quoteRepo, f.clientRepo, f.serviceRepo, tx,
		testLinkDays, "http://localhost:5173/proposta")
	return f
}

func (f *quoteFixture) createQuote(t *testing.T, amountCents int64) *dto.QuoteResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientID:    f.clientID,
		Title:       "Site institucional",
		AmountCents: amountCents,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteCreate_ArrancaEnDraft(t *testing.T) {
	f := newQuoteFixture(t)

	resp := f.createQuote(t, 120_000)

	assert.Equal(t, entity.QuoteStatusDraft, resp.Status)
	assert.Equal(t, "BRL", resp.Currency)
	assert.Equal(t, int64(120_000), resp.TotalCents)
	assert.Equal(t, "R$ 1.200,00", resp.TotalFormatted)
	assert.Empty(t, resp.PublicURL, "una propuesta draft no tiene link público")
}

func TestQuoteCreate_ClienteInexistente(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreateQuoteRequest{
		ClientID: uuid.New().String(),
		Title:    "Sin cliente",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems y recálculo
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteAddItem_RecalculaElTotal(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	resp, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), resp.SubtotalCents)
	assert.Equal(t, int64(100_000), resp.TotalCents)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(100_000), resp.Items[0].LineTotalCents)

	// El total recalculado queda persistido en la propuesta.
	stored, err := f.quoteRepo.GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, pricing.Money(100_000), stored.AmountCents)
}

func TestQuoteAddItem_HeredaPrecioDelServicio(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	serviceID := uuid.New().String()
	require.NoError(t, f.serviceRepo.Create(&entity.Service{
		ID: serviceID, Name: "Hospedagem", BasePriceCents: 12_000, Active: true,
	}))

	resp, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		ServiceID: serviceID, Title: "Hospedagem", Quantity: 1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(12_000), resp.Items[0].UnitPriceCents)
}

func TestQuoteAddItem_CantidadInvalida(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "X", Quantity: 0, UnitPriceCents: 100,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteDeleteItem_UltimoItemDejaMontoCerrado(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	resp, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 1, UnitPriceCents: 80_000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	resp, err = f.uc.DeleteItem(context.Background(), quote.ID, resp.Items[0].ID)
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(80_000), resp.TotalCents,
		"al quedar sin ítems, el último total calculado queda como monto cerrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Descuentos
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteUpdateDiscount_Porcentaje(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)
	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)

	resp, err := f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "percent", Percent: "10",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), resp.SubtotalCents)
	assert.Equal(t, int64(10_000), resp.DiscountCents)
	assert.Equal(t, int64(90_000), resp.TotalCents)
	assert.Equal(t, "R$ 900,00", resp.TotalFormatted)
}

// TestQuoteUpdateDiscount_CambiarTipoNoDejaEstado: cambiar de porcentaje a
// monto fijo y volver produce lo mismo que haber arrancado con porcentaje.
func TestQuoteUpdateDiscount_CambiarTipoNoDejaEstado(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)
	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "fixed_amount", AmountCents: 30_000,
	})
	require.NoError(t, err)

	resp, err := f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "percent", Percent: "10",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10_000), resp.DiscountCents)
	assert.Equal(t, int64(90_000), resp.TotalCents)
}

func TestQuoteUpdateDiscount_PorcentajeIlegible(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	_, err := f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "percent", Percent: "diez",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteUpdateDiscount_TipoVacioLoElimina(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)
	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 1, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)
	_, err = f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{
		Type: "percent", Percent: "50",
	})
	require.NoError(t, err)

	resp, err := f.uc.UpdateDiscount(context.Background(), quote.ID, dto.UpdateQuoteDiscount{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.DiscountCents)
	assert.Equal(t, int64(50_000), resp.TotalCents)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados y link público
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteUpdateStatus_EnviarEmiteLinkPublico(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 120_000)

	before := time.Now()
	resp, err := f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusSent,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.QuoteStatusSent, resp.Status)
	assert.NotEmpty(t, resp.PublicURL)
	require.NotEmpty(t, resp.PublicExpiresAt)

	expires, err := time.Parse(time.RFC3339, resp.PublicExpiresAt)
	require.NoError(t, err)
	wantMin := before.AddDate(0, 0, testLinkDays).Add(-time.Minute)
	wantMax := time.Now().AddDate(0, 0, testLinkDays).Add(time.Minute)
	assert.True(t, expires.After(wantMin) && expires.Before(wantMax),
		"el vencimiento debe ser envío + %d días", testLinkDays)
}

func TestQuoteUpdateStatus_TransicionesInvalidas(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)

	// draft → approved no existe: hay que pasar por sent.
	_, err := f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusApproved,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusLost,
	})
	require.NoError(t, err, "draft → lost sí está permitido (abandono sin enviar)")

	// lost es terminal.
	_, err = f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusSent,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestQuoteUpdate_SoloEnDraft(t *testing.T) {
	f := newQuoteFixture(t)
	quote := f.createQuote(t, 0)
	_, err := f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusSent,
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), quote.ID, dto.UpdateQuoteRequest{
		Title: "Otro título",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "X", Quantity: 1, UnitPriceCents: 100,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
