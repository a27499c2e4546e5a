// Package bankdemo is a self-contained stand-in for the banking demo site the
// framework is written against. It serves the registration flow over HTML for
// browser tests and a small JSON API for fixtures to verify and clean up
// accounts, so the e2e suite runs without any external target.
package bankdemo

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/apexqa/bankwright/bankdemo/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// registrationRules mirrors the demo bank's registration form contract.
var registrationRules = validation.Rules{
	"first_name": "required|max:40",
	"last_name":  "required|max:40",
	"street":     "required",
	"city":       "required",
	"state":      "required|min:2|max:20",
	"zip_code":   "required|digits:5",
	"phone":      "required|min:7",
	"ssn":        "required|digits:9",
	"email":      "required|email",
	"username":   "required|min:3|max:20",
	"password":   "required|min:8|confirmed",
}

// Server is the demo bank HTTP application.
type Server struct {
	store  *Store
	router chi.Router
}

// NewServer creates a demo bank with an empty customer store.
func NewServer() *Server {
	s := &Server{
		store:  NewStore(),
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// Store exposes the customer store, used by tests for seeding.
func (s *Server) Store() *Store { return s.store }

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RealIP)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/register", http.StatusFound)
	})
	s.router.Get("/register", s.showRegister)
	s.router.Post("/register", s.handleRegister)

	s.router.Route("/api", func(api chi.Router) {
		api.Post("/customers", s.createCustomer)
		api.Get("/customers/{username}", s.getCustomer)
		api.Delete("/customers/{username}", s.deleteCustomer)
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond(w).JSON(http.StatusOK, envelope{"status": "ok"})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ── HTML handlers ────────────────────────────────────────────────────────────

// registerPage is the template payload for register.html.
type registerPage struct {
	Values map[string]string
	Errors *validation.Errors
}

func (s *Server) showRegister(w http.ResponseWriter, r *http.Request) {
	s.renderRegister(w, http.StatusOK, registerPage{
		Values: map[string]string{},
		Errors: &validation.Errors{},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	form := formValues(r)

	v := validation.Make(form, registrationRules)
	if v.Fails() {
		s.renderRegister(w, http.StatusUnprocessableEntity, registerPage{Values: form, Errors: v.Errors()})
		return
	}

	customer := customerFromForm(form)
	if err := s.store.Create(customer); err != nil {
		errs := v.Errors()
		errs.Add("username", "This username already exists.")
		s.renderRegister(w, http.StatusConflict, registerPage{Values: form, Errors: errs})
		return
	}

	s.render(w, http.StatusOK, "welcome.html", customer)
}

func (s *Server) renderRegister(w http.ResponseWriter, status int, page registerPage) {
	s.render(w, status, "register.html", page)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
	}
}

// ── JSON API handlers ────────────────────────────────────────────────────────

// createCustomer registers an account API-first, for fixtures that need a
// pre-existing customer without driving the form. It takes the same field
// names as the form, as a flat JSON object.
func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var form map[string]string
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond(w).Error(http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	v := validation.Make(form, registrationRules)
	if v.Fails() {
		respond(w).ValidationError(v.Errors())
		return
	}

	customer := customerFromForm(form)
	if err := s.store.Create(customer); err != nil {
		respond(w).Error(http.StatusConflict, "This username already exists.")
		return
	}
	respond(w).Created(customer)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	customer, ok := s.store.Get(username)
	if !ok {
		respond(w).NotFound("No such customer: " + username)
		return
	}
	respond(w).Success(customer)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !s.store.Delete(username) {
		respond(w).NotFound("No such customer: " + username)
		return
	}
	respond(w).NoContent()
}

// ── Form helpers ─────────────────────────────────────────────────────────────

func customerFromForm(form map[string]string) Customer {
	return Customer{
		FirstName: form["first_name"],
		LastName:  form["last_name"],
		Street:    form["street"],
		City:      form["city"],
		State:     form["state"],
		ZipCode:   form["zip_code"],
		Phone:     form["phone"],
		SSN:       form["ssn"],
		Email:     form["email"],
		Username:  form["username"],
		Password:  form["password"],
	}
}

// formValues flattens the posted form into the map shape the validator
// consumes. Multi-valued fields keep their first value.
func formValues(r *http.Request) map[string]string {
	_ = r.ParseForm()
	out := make(map[string]string, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
