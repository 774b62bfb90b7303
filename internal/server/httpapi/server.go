// Package httpapi exposes the backend over REST. Routes mirror the paths the
// CLI client calls; auth is a Bearer JWT issued by POST /api/auth/login.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Asad-NCS/lostandfound/internal/logging"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/config"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/storage"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

// Server wires the domain services to HTTP handlers.
type Server struct {
	config        *config.Config
	log           logging.Logger
	users         *users.Service
	items         *items.Service
	claims        *claims.Service
	verifications *verifications.Service
	files         storage.Store
}

func NewServer(cfg *config.Config, log logging.Logger,
	usersSvc *users.Service, itemsSvc *items.Service, claimsSvc *claims.Service,
	verificationsSvc *verifications.Service, files storage.Store) *Server {
	return &Server{
		config:        cfg,
		log:           log,
		users:         usersSvc,
		items:         itemsSvc,
		claims:        claimsSvc,
		verifications: verificationsSvc,
		files:         files,
	}
}

// Router builds the route table. Auth endpoints are registered before the
// protected /api subrouter so they match without a token.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requireAuth)

	api.HandleFunc("/items", s.handleListItems).Methods("GET")
	api.HandleFunc("/items", s.handleCreateItem).Methods("POST")
	api.HandleFunc("/items/{id:[0-9]+}", s.handleGetItem).Methods("GET")

	api.HandleFunc("/claims", s.handleCreateClaim).Methods("POST")
	api.HandleFunc("/claims/admin-review", s.handleAdminReview).Methods("GET")
	api.HandleFunc("/claims/item/{itemId:[0-9]+}", s.handleClaimsByItem).Methods("GET")
	api.HandleFunc("/claims/user/{userId:[0-9]+}", s.handleClaimsByUser).Methods("GET")
	api.HandleFunc("/claims/{claimId:[0-9]+}/forward-to-admin", s.handleForwardClaim).Methods("PUT")
	api.HandleFunc("/claims/{claimId:[0-9]+}/approve", s.handleApproveClaim).Methods("PUT")
	api.HandleFunc("/claims/{claimId:[0-9]+}/reject", s.handleRejectClaim).Methods("PUT")

	api.HandleFunc("/verification/request", s.handleVerificationRequest).Methods("POST")
	api.HandleFunc("/verification/verify", s.handleVerificationVerify).Methods("POST")
	api.HandleFunc("/verification/claim/{claimId:[0-9]+}", s.handleVerificationByClaim).Methods("GET")

	// Uploaded images are only web-servable with the disk backend; S3 refs
	// are presigned or proxied by a CDN in front of the bucket.
	if disk, ok := s.files.(*storage.DiskStore); ok {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Dir()))))
	}

	return r
}
