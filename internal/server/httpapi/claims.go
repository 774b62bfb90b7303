package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

// handleCreateClaim accepts a multipart form with a JSON "claimData" part and
// an optional "proofImage" file. The claimant is taken from the token.
func (s *Server) handleCreateClaim(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid multipart request.")
		return
	}

	var in domain.NewClaim
	if err := json.Unmarshal([]byte(r.FormValue("claimData")), &in); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid claim data.")
		return
	}
	in.UserID = authClaims(r.Context()).UserID

	proofRef := ""
	if file, header, err := r.FormFile("proofImage"); err == nil {
		defer file.Close()
		proofRef, err = s.files.Save(r.Context(), header.Filename, file)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	claim, err := s.claims.Submit(r.Context(), in, proofRef)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "claim submitted",
		"claim_id", claim.ID, "item_id", claim.ItemID, "user_id", claim.UserID)
	s.writeMessage(w, http.StatusCreated, "Claim submitted successfully!")
}

func (s *Server) handleClaimsByItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid item id.")
		return
	}

	claims, err := s.claims.ByItem(r.Context(), itemID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, claims)
}

func (s *Server) handleClaimsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	auth := authClaims(r.Context())
	if auth.UserID != userID && !isAdmin(auth) {
		s.writeErrorMsg(w, http.StatusForbidden, "You can only view your own claims.")
		return
	}

	claims, err := s.claims.ByUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, claims)
}

func (s *Server) handleAdminReview(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(authClaims(r.Context())) {
		s.writeError(w, r, domain.ErrNotAdmin)
		return
	}

	claims, err := s.claims.ForAdminReview(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, claims)
}

func (s *Server) handleForwardClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := pathID(r, "claimId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid claim id.")
		return
	}

	claim, err := s.claims.Forward(r.Context(), claimID, authClaims(r.Context()).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "claim forwarded", "claim_id", claim.ID, "item_id", claim.ItemID)
	s.writeMessage(w, http.StatusOK, "Claim forwarded to admin for review.")
}

func (s *Server) handleApproveClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := pathID(r, "claimId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid claim id.")
		return
	}

	claim, err := s.claims.Approve(r.Context(), claimID, authClaims(r.Context()).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "claim approved",
		"claim_id", claim.ID, "item_id", claim.ItemID, "user_id", claim.UserID)
	s.writeMessage(w, http.StatusOK, "Claim approved.")
}

func (s *Server) handleRejectClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := pathID(r, "claimId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid claim id.")
		return
	}

	var body struct {
		RejectionReason string `json:"rejectionReason"`
	}
	if r.Body != nil {
		// Body is optional; a missing reason gets the default text.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	claim, err := s.claims.Reject(r.Context(), claimID, authClaims(r.Context()).UserID, body.RejectionReason)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "claim rejected",
		"claim_id", claim.ID, "item_id", claim.ItemID, "reason", claim.RejectionReason)
	s.writeMessage(w, http.StatusOK, "Claim rejected.")
}
