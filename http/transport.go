package http

import (
	"encoding/json"
	"io"
	"net/http"

	"go-money/domain"
	"go-money/exchange"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	router  http.ServeMux
}

func NewServer(s exchange.Service) *Server {
	server := &Server{
		Service: s,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/add", post(s.add()))
	s.router.Handle("/api/multiply", post(s.multiply()))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// add produces HTTP handler for adding two amounts, possibly in different currencies
func (s *Server) add() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Lhs domain.Money `json:"lhs"`
		Rhs domain.Money `json:"rhs"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if !decode(rw, r, &request) {
			return
		}
		if !request.Lhs.Currency.Valid() || !request.Rhs.Currency.Valid() {
			writeError(rw, http.StatusBadRequest, "unsupported currency")
			return
		}

		encode(rw, s.Service.Add(request.Lhs, request.Rhs))
	}
}

// multiply produces HTTP handler for scaling an amount
func (s *Server) multiply() http.HandlerFunc {

	type request struct {
		Money  domain.Money `json:"money"`
		Factor float64      `json:"factor"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if !decode(rw, r, &request) {
			return
		}
		if !request.Money.Currency.Valid() {
			writeError(rw, http.StatusBadRequest, "unsupported currency")
			return
		}

		encode(rw, s.Service.Multiply(request.Money, request.Factor))
	}
}

// post rejects every method but POST
func post(next http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		next(rw, r)
	}
}

// decode reads a JSON request body into v, answering the client itself on failure
func decode(rw http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()

	bytes, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(rw, http.StatusBadRequest, "invalid request")
		return false
	}

	if err := json.Unmarshal(bytes, v); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func encode(rw http.ResponseWriter, m domain.Money) {
	rw.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(rw)
	if err := enc.Encode(&m); err != nil {
		writeError(rw, http.StatusInternalServerError, "failed json encoding")
	}
}

func writeError(rw http.ResponseWriter, code int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
