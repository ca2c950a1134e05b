package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	lognorm "github.com/rsyslog/go-lognorm"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/normalize", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var body struct {
			Rulebase json.RawMessage `json:"rulebase"`
			Lines    []string        `json:"lines"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(body.Rulebase) == 0 {
			writeError(w, http.StatusBadRequest, "missing field: rulebase")
			return
		}
		if len(body.Lines) == 0 {
			writeError(w, http.StatusBadRequest, "missing field: lines")
			return
		}

		lc, err := lognorm.Load(bytes.NewReader(body.Rulebase))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid rulebase: %v", err))
			return
		}

		outcomes, err := lc.NormalizeBatch(r.Context(), body.Lines)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		raw := make([]json.RawMessage, len(outcomes))
		for i, o := range outcomes {
			b, err := lognorm.MarshalOutcomeJSON(o)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			raw[i] = b
		}
		writeJSON(w, http.StatusOK, raw)
	})

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("lognormd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
