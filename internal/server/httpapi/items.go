package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

// maxUploadBytes bounds the in-memory part of a multipart upload; larger
// bodies spill to temp files.
const maxUploadBytes = 10 << 20

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid item id.")
		return
	}

	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

// handleCreateItem accepts a multipart form with a JSON "item" part and an
// optional "image" file. The reporter is taken from the token, not the body.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid multipart request.")
		return
	}

	var in domain.NewItem
	if err := json.Unmarshal([]byte(r.FormValue("item")), &in); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid item data.")
		return
	}
	in.UserID = authClaims(r.Context()).UserID

	imageURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err = s.files.Save(r.Context(), header.Filename, file)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	item, err := s.items.Create(r.Context(), in, imageURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "item reported",
		"item_id", item.ID, "user_id", in.UserID, "is_lost", item.IsLost)
	s.writeMessage(w, http.StatusCreated, "Item reported successfully!")
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
