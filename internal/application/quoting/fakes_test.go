package quoting_test

import (
	"context"
	"sort"
	"sync"

	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso. Respetan los contratos de los
// puertos: nil cuando no existe, domain.ErrDuplicate en violaciones de
// unicidad, numeración de versiones atómica.
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	mu     sync.Mutex
	quotes map[string]*entity.Quote
	items  map[string]*entity.QuoteItem
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		quotes: make(map[string]*entity.Quote),
		items:  make(map[string]*entity.QuoteItem),
	}
}

func (f *fakeQuoteRepo) Create(q *entity.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *q
	f.quotes[q.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuoteRepo) GetByPublicToken(token string) (*entity.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, q := range f.quotes {
		if q.PublicToken == token && token != "" {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) List(status, clientID string, limit, offset int) ([]*entity.Quote, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Quote
	for _, q := range f.quotes {
		if status != "" && q.Status != status {
			continue
		}
		if clientID != "" && q.ClientID != clientID {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeQuoteRepo) Update(q *entity.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.quotes[q.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *q
	f.quotes[q.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.quotes, id)
	for itemID, item := range f.items {
		if item.QuoteID == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeQuoteRepo) CreateItem(item *entity.QuoteItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) ListItems(quoteID string) ([]*entity.QuoteItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.QuoteItem
	for _, item := range f.items {
		if item.QuoteID == quoteID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeQuoteRepo) UpdateItem(item *entity.QuoteItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) DeleteItem(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

// ── Versiones ────────────────────────────────────────────────────────────────

type fakeVersionRepo struct {
	mu       sync.Mutex
	versions []*entity.QuoteVersion
	// failCreates fuerza domain.ErrDuplicate en las primeras N llamadas a
	// Create, para probar el reintento del caso de uso.
	failCreates int
}

func newFakeVersionRepo() *fakeVersionRepo { return &fakeVersionRepo{} }

func (f *fakeVersionRepo) Create(v *entity.QuoteVersion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreates > 0 {
		f.failCreates--
		return domain.ErrDuplicate
	}
	next := 1
	for _, existing := range f.versions {
		if existing.QuoteID == v.QuoteID && existing.Version >= next {
			next = existing.Version + 1
		}
	}
	v.Version = next
	cp := *v
	f.versions = append(f.versions, &cp)
	return nil
}

func (f *fakeVersionRepo) GetByID(id string) (*entity.QuoteVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.versions {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeVersionRepo) GetByNumber(quoteID string, number int) (*entity.QuoteVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.versions {
		if v.QuoteID == quoteID && v.Version == number {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeVersionRepo) ListByQuote(quoteID string) ([]*entity.QuoteVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.QuoteVersion
	for _, v := range f.versions {
		if v.QuoteID == quoteID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

// ── Clientes, servicios, settings, templates ─────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (f *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List(status, search string, limit, offset int) ([]*entity.Client, int, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) Delete(id string) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) CreateContact(*entity.Contact) error            { return nil }
func (f *fakeClientRepo) ListContacts(string) ([]*entity.Contact, error) { return nil, nil }
func (f *fakeClientRepo) DeleteContact(string) error                     { return nil }

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*entity.Service)}
}

func (f *fakeServiceRepo) Create(s *entity.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeServiceRepo) List(onlyActive bool) ([]*entity.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Update(s *entity.Service) error                  { return nil }
func (f *fakeServiceRepo) Delete(id string) error                          { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error) { return f.settings, nil }
func (f *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	cp := *s
	f.settings = &cp
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]*entity.ProposalTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]*entity.ProposalTemplate)}
}

func (f *fakeTemplateRepo) Create(t *entity.ProposalTemplate) error {
	cp := *t
	f.templates[t.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) GetByID(id string) (*entity.ProposalTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTemplateRepo) GetDefault() (*entity.ProposalTemplate, error) {
	for _, t := range f.templates {
		if t.IsDefault {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) List() ([]*entity.ProposalTemplate, error) { return nil, nil }
func (f *fakeTemplateRepo) Update(t *entity.ProposalTemplate) error {
	cp := *t
	f.templates[t.ID] = &cp
	return nil
}
func (f *fakeTemplateRepo) Delete(id string) error {
	delete(f.templates, id)
	return nil
}

// ── Aceptaciones y eventos ───────────────────────────────────────────────────

type fakeAcceptanceRepo struct {
	mu          sync.Mutex
	acceptances map[string]*entity.QuoteAcceptance // por quote ID
	events      []*entity.QuoteEvent
}

func newFakeAcceptanceRepo() *fakeAcceptanceRepo {
	return &fakeAcceptanceRepo{acceptances: make(map[string]*entity.QuoteAcceptance)}
}

func (f *fakeAcceptanceRepo) CreateAcceptance(a *entity.QuoteAcceptance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.acceptances[a.QuoteID]; ok {
		return domain.ErrDuplicate
	}
	cp := *a
	f.acceptances[a.QuoteID] = &cp
	return nil
}

func (f *fakeAcceptanceRepo) GetAcceptanceByQuote(quoteID string) (*entity.QuoteAcceptance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.acceptances[quoteID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAcceptanceRepo) CreateEvent(ev *entity.QuoteEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ev
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeAcceptanceRepo) ListEventsByQuote(quoteID string, limit int) ([]*entity.QuoteEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.QuoteEvent
	for _, ev := range f.events {
		if ev.QuoteID == quoteID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directo contra los mismos fakes; las
// transacciones reales se prueban contra Postgres, acá solo importa la lógica.
type fakeTxRunner struct {
	quoteRepo      *fakeQuoteRepo
	versionRepo    *fakeVersionRepo
	acceptanceRepo *fakeAcceptanceRepo
}

func (f *fakeTxRunner) RunQuote(_ context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	versionRepo repository.QuoteVersionRepository,
	acceptanceRepo repository.AcceptanceRepository,
) error) error {
	return fn(f.quoteRepo, f.versionRepo, f.acceptanceRepo)
}
