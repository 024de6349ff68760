package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/auth"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
	"github.com/lilnaht/bidFlow/internal/application/usecase"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC   *usecase.ClientUseCase
	RequestUC  *usecase.RequestUseCase
	ServiceUC  *usecase.ServiceUseCase
	SettingsUC *usecase.SettingsUseCase
	QuoteUC    *quoting.QuoteUseCase
	VersionUC  *quoting.VersionUseCase
	TemplateUC *quoting.TemplateUseCase
	PublicUC   *quoting.PublicUseCase
	PDFUC      *quoting.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Solicitudes: el alta es pública (formulario del sitio)
	requestHandler := NewRequestHandler(deps.RequestUC)
	api.Post("/requests", requestHandler.CreatePublic)

	// Link público de propuestas: el token es la credencial
	publicHandler := NewPublicHandler(deps.PublicUC)
	public := api.Group("/public/quotes")
	public.Get("/:token", publicHandler.GetByToken)
	public.Post("/:token/respond", publicHandler.Respond)
	public.Post("/:token/events", publicHandler.RecordEvent)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de usuarios (solo admin)
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Post("/:id/contacts", clientHandler.AddContact)
	clients.Get("/:id/contacts", clientHandler.ListContacts)
	clients.Delete("/:id/contacts/:contactId", clientHandler.DeleteContact)

	// Requests (gestión interna)
	requests := protected.Group("/requests")
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Patch("/:id/status", requestHandler.UpdateStatus)
	requests.Delete("/:id", requestHandler.Delete)

	// Services (catálogo)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Settings (solo admin escribe)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingsHandler.Update)

	// Templates
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Post("/preview", templateHandler.Preview)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Quotes y subrecursos
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.VersionUC, deps.TemplateUC, deps.PublicUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Put("/:id/discount", quoteHandler.UpdateDiscount)
	quotes.Patch("/:id/status", quoteHandler.UpdateStatus)
	quotes.Post("/:id/items", quoteHandler.AddItem)
	quotes.Put("/:id/items/:itemId", quoteHandler.UpdateItem)
	quotes.Delete("/:id/items/:itemId", quoteHandler.DeleteItem)
	quotes.Post("/:id/apply-template", quoteHandler.ApplyTemplate)
	quotes.Post("/:id/versions", quoteHandler.CreateVersion)
	quotes.Get("/:id/versions", quoteHandler.ListVersions)
	quotes.Get("/:id/versions/:number", quoteHandler.GetVersion)
	quotes.Get("/:id/events", quoteHandler.ListEvents)
	quotes.Get("/:id/pdf", quoteHandler.DownloadPDF)
}
