package chi

import (
	"net/http"
	"strings"

	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
	gen "github.com/kailas-cloud/vecsense/internal/transport/generated"
)

// CreateDocument handles POST /documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateDocumentJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, "Title and content are required")
		return
	}

	doc, err := s.documents.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"document": documentToJSON(&doc),
	})
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]gen.DocumentResponse, len(docs))
	for i := range docs {
		items[i] = documentToJSON(&docs[i])
	}
	writeJSON(w, http.StatusOK, gen.DocumentListResponse{Documents: items})
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, id gen.DocumentId) {
	doc, err := s.documents.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToJSON(&doc))
}

func documentToJSON(d *domdoc.Document) gen.DocumentResponse {
	resp := gen.DocumentResponse{
		Id:        d.ID(),
		Title:     d.Title(),
		Content:   d.Content(),
		CreatedAt: d.CreatedAt(),
	}
	if m := string(d.Embedding().Model); m != "" {
		resp.Model = &m
	}
	return resp
}
