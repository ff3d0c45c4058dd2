package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/justine-135/invoice-dashboard/internal/auth"
	"github.com/justine-135/invoice-dashboard/internal/invoice"
	"github.com/justine-135/invoice-dashboard/internal/logging"
)

// handleListInvoices serves the invoice listing, memoized in the page
// cache until a mutation invalidates it.
func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	if body, ok := s.cache.Get(invoice.ListPath); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.Write(body)
		return
	}

	records, err := s.lister.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list invoices failed", "error", err)
		writeError(w, http.StatusInternalServerError, invoice.MsgSomethingWentWrong)
		return
	}
	if records == nil {
		records = []invoice.Record{}
	}

	body, err := json.Marshal(records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, invoice.MsgSomethingWentWrong)
		return
	}
	s.cache.Put(invoice.ListPath, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// handleCreateInvoice runs the create mutation against the submitted
// form and answers with either navigation or the failure Result.
func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	res := s.invoices.Create(r.Context(), invoice.FromForm(r.PostForm))
	s.respondMutation(w, res)
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice id")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	res := s.invoices.Update(r.Context(), id, invoice.FromForm(r.PostForm))
	s.respondMutation(w, res)
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice id")
		return
	}

	res := s.invoices.Delete(r.Context(), id)
	if res.Message == invoice.MsgSomethingWentWrong {
		writeJSON(w, http.StatusInternalServerError, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// respondMutation maps a create/update Result onto the wire: success
// navigates the client to the listing page, field errors come back as
// an unprocessable-entity payload, and a contained store failure as an
// opaque server error.
func (s *Server) respondMutation(w http.ResponseWriter, res invoice.Result) {
	switch {
	case res.OK():
		w.Header().Set("HX-Redirect", invoice.ListPath)
		w.WriteHeader(http.StatusNoContent)
	case res.Errors != nil:
		writeJSON(w, http.StatusUnprocessableEntity, res)
	default:
		writeJSON(w, http.StatusInternalServerError, res)
	}
}

// handleLogin runs one credential sign-in attempt. Expected rejections
// come back as a message; unexpected verifier errors surface as a
// server error after logging.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	creds := auth.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	sess, msg, err := auth.Authenticate(r.Context(), s.verifier, creds)
	if err != nil {
		logging.FromContext(r.Context()).Error("sign-in failed unexpectedly", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": msg})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusNoContent)
}

// handleLogout closes the current session, if any, and clears the cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.session.CookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
