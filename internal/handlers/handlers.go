package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"clonestore/internal/middleware"
	"clonestore/internal/service"
)

// Version is reported by the server info endpoint.
const Version = "0.1.0"

type Handler struct {
	Router chi.Router
}

// NewHandler builds the route surface.
func NewHandler(
	plasmids *service.PlasmidService,
	organisms *service.OrganismService,
	generics *service.GenericService,
	storage *service.StorageService,
	search *service.SearchService,
	printing *service.PrintService,
	auth *service.AuthService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithCORS)

	// Handlers
	plasmidHandler := NewPlasmidHandler(plasmids, logger)
	organismHandler := NewOrganismHandler(organisms, logger)
	genericHandler := NewGenericHandler(generics, logger)
	storageHandler := NewStorageHandler(storage, logger)
	searchHandler := NewSearchHandler(search, logger)
	printHandler := NewPrintHandler(printing, plasmids, organisms, generics, logger)
	authHandler := NewAuthHandler(auth, logger)

	// Public routes
	r.Get("/", ServerInfo)
	r.Post("/auth", authHandler.Authenticate)

	// Everything else requires a live session
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(auth))

		r.Delete("/auth", authHandler.Logout)

		r.Get("/plasmid/{id}", plasmidHandler.Get)
		r.Post("/plasmid", plasmidHandler.Create)
		r.Delete("/plasmid/{id}", plasmidHandler.Archive)

		r.Get("/organism/{id}", organismHandler.Get)
		r.Post("/organism", organismHandler.Create)
		r.Delete("/organism/{id}", organismHandler.Archive)
		r.Put("/organism/{id}/storageLocation", organismHandler.Relocate)

		r.Get("/generic/{id}", genericHandler.Get)
		r.Post("/generic", genericHandler.Create)
		r.Delete("/generic/{id}", genericHandler.Archive)
		r.Put("/generic/{id}/storageLocation", genericHandler.Relocate)

		r.Put("/storage/{loc}", storageHandler.Occupy)
		r.Delete("/storage/{loc}", storageHandler.Vacate)
		r.Get("/storage/id/{id}", storageHandler.LocationsFor)
		r.Get("/storage/loc/{loc}", storageHandler.Lookup)

		r.Get("/search/{mode}", searchHandler.Query)

		r.Get("/print", printHandler.Status)
		r.Put("/print", printHandler.Setup)
		r.Post("/print/{tag}/{id}", printHandler.PrintLabel)
	})

	return &Handler{Router: r}
}

type serverInfoMsg struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// ServerInfo identifies the server and its version.
func ServerInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, serverInfoMsg{Type: "clonestore-server", Version: Version})
}
