package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type verificationRequest struct {
	ClaimID int64  `json:"claimId"`
	Code    string `json:"code"`
}

// handleVerificationRequest issues a 6-digit ownership code for a claim.
// The code travels in the response message; delivery to the item reporter
// happens out of band.
func (s *Server) handleVerificationRequest(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	v, err := s.verifications.Request(r.Context(), req.ClaimID, authClaims(r.Context()).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "verification code issued",
		"claim_id", v.ClaimID, "user_id", v.UserID)
	s.writeMessage(w, http.StatusOK,
		fmt.Sprintf("Verification code for claim #%d: %s", v.ClaimID, v.Code))
}

// handleVerificationByClaim returns the latest verification issued for a
// claim, so the item reporter can look up the code to share.
func (s *Server) handleVerificationByClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := pathID(r, "claimId")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid claim id.")
		return
	}

	v, err := s.verifications.ByClaim(r.Context(), claimID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleVerificationVerify(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	v, err := s.verifications.Verify(r.Context(), strings.TrimSpace(req.Code), req.ClaimID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "ownership verified", "claim_id", v.ClaimID, "user_id", v.UserID)
	s.writeMessage(w, http.StatusOK, "Ownership verified successfully!")
}
