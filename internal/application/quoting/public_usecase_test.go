package quoting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
)

func newPublicFixture(t *testing.T) (*quoting.PublicUseCase, *quoteFixture) {
	t.Helper()
	f := newQuoteFixture(t)
	settingsRepo := &fakeSettingsRepo{settings: &entity.Settings{CompanyName: "bidFlow Estúdio"}}
	tx := &fakeTxRunner{
		quoteRepo:      f.quoteRepo,
		versionRepo:    f.versionRepo,
		acceptanceRepo: f.acceptanceRepo,
	}
	uc := quoting.NewPublicUseCase(f.quoteRepo, f.clientRepo, settingsRepo, f.acceptanceRepo, tx)
	return uc, f
}

// sendQuote crea una propuesta, le agrega un ítem y la envía; devuelve el token.
func sendQuote(t *testing.T, f *quoteFixture) (quoteID, token string) {
	t.Helper()
	quote := f.createQuote(t, 0)
	_, err := f.uc.AddItem(context.Background(), quote.ID, dto.AddQuoteItemRequest{
		Title: "Design", Quantity: 2, UnitPriceCents: 50_000,
	})
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(context.Background(), quote.ID, dto.UpdateQuoteStatus{
		Status: entity.QuoteStatusSent,
	})
	require.NoError(t, err)

	stored, err := f.quoteRepo.GetByID(quote.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.PublicToken)
	return quote.ID, stored.PublicToken
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura pública
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicGetByToken_PropuestaVisible(t *testing.T) {
	uc, f := newPublicFixture(t)
	_, token := sendQuote(t, f)

	resp, err := uc.GetByToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "Acme", resp.ClientName)
	assert.Equal(t, "bidFlow Estúdio", resp.CompanyName)
	assert.Equal(t, int64(100_000), resp.TotalCents)
	assert.Equal(t, "R$ 1.000,00", resp.TotalFormatted)
	assert.False(t, resp.Responded)
	require.Len(t, resp.Items, 1)
}

func TestPublicGetByToken_TokenInexistente(t *testing.T) {
	uc, _ := newPublicFixture(t)

	_, err := uc.GetByToken(context.Background(), "token-falso")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestPublicGetByToken_TokenVencido: un link vencido es un estado propio
// (ErrExpired), no un 404 genérico.
func TestPublicGetByToken_TokenVencido(t *testing.T) {
	uc, f := newPublicFixture(t)
	quoteID, token := sendQuote(t, f)

	stored, err := f.quoteRepo.GetByID(quoteID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	stored.PublicExpiresAt = &past
	require.NoError(t, f.quoteRepo.Update(stored))

	_, err = uc.GetByToken(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrExpired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuesta del cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicRespond_AceptarApruebaLaPropuesta(t *testing.T) {
	uc, f := newPublicFixture(t)
	quoteID, token := sendQuote(t, f)

	resp, err := uc.Respond(context.Background(), token, "200.1.2.3", "test-agent",
		dto.RespondQuoteRequest{Decision: entity.AcceptanceAccepted, SignerName: "João da Silva"})
	require.NoError(t, err)

	assert.Equal(t, entity.QuoteStatusApproved, resp.Status)

	stored, err := f.quoteRepo.GetByID(quoteID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusApproved, stored.Status)

	// La respuesta queda visible en la página pública.
	page, err := uc.GetByToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, page.Responded)
	assert.Equal(t, entity.AcceptanceAccepted, page.Decision)

	// Y queda el evento de actividad.
	events, err := uc.ListEvents(context.Background(), quoteID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventResponded, events[0].Type)
}

func TestPublicRespond_RechazarPierdeLaPropuesta(t *testing.T) {
	uc, f := newPublicFixture(t)
	quoteID, token := sendQuote(t, f)

	resp, err := uc.Respond(context.Background(), token, "", "",
		dto.RespondQuoteRequest{Decision: entity.AcceptanceDeclined, SignerName: "Maria"})
	require.NoError(t, err)

	assert.Equal(t, entity.QuoteStatusLost, resp.Status)
	stored, _ := f.quoteRepo.GetByID(quoteID)
	assert.Equal(t, entity.QuoteStatusLost, stored.Status)
}

// TestPublicRespond_LaPrimeraRespuestaGana: una segunda respuesta choca con
// la unicidad por propuesta y vuelve como conflicto.
func TestPublicRespond_LaPrimeraRespuestaGana(t *testing.T) {
	uc, f := newPublicFixture(t)
	_, token := sendQuote(t, f)

	_, err := uc.Respond(context.Background(), token, "", "",
		dto.RespondQuoteRequest{Decision: entity.AcceptanceAccepted, SignerName: "João"})
	require.NoError(t, err)

	_, err = uc.Respond(context.Background(), token, "", "",
		dto.RespondQuoteRequest{Decision: entity.AcceptanceDeclined, SignerName: "Maria"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPublicRespond_TokenVencido(t *testing.T) {
	uc, f := newPublicFixture(t)
	quoteID, token := sendQuote(t, f)

	stored, err := f.quoteRepo.GetByID(quoteID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	stored.PublicExpiresAt = &past
	require.NoError(t, f.quoteRepo.Update(stored))

	_, err = uc.Respond(context.Background(), token, "", "",
		dto.RespondQuoteRequest{Decision: entity.AcceptanceAccepted, SignerName: "João"})

	assert.ErrorIs(t, err, domain.ErrExpired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicRecordEvent_RegistraActividad(t *testing.T) {
	uc, f := newPublicFixture(t)
	quoteID, token := sendQuote(t, f)

	require.NoError(t, uc.RecordEvent(context.Background(), token, "200.1.2.3", "agent",
		dto.PublicEventRequest{Type: entity.EventOpened}))
	require.NoError(t, uc.RecordEvent(context.Background(), token, "200.1.2.3", "agent",
		dto.PublicEventRequest{Type: entity.EventDownloaded}))

	events, err := uc.ListEvents(context.Background(), quoteID, 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPublicRecordEvent_TipoInvalido(t *testing.T) {
	uc, f := newPublicFixture(t)
	_, token := sendQuote(t, f)

	err := uc.RecordEvent(context.Background(), token, "", "",
		dto.PublicEventRequest{Type: "responded"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"responded solo se registra desde Respond, no desde el endpoint de eventos")
}
