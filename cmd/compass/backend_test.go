package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"
)

// newFakeBackend serves canned answers for the searches the scripts run. Airports
// are picked by latitude: Milan lies below 46°, Paris above.
func newFakeBackend() *httptest.Server {
	r := mux.NewRouter()

	r.HandleFunc("/search/nearby", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"offers": []any{
				rawHotel("H1", "Le Marais", "4", "210.00", "1 Rue de Rivoli"),
				rawHotel("H2", "Bastille", "", "99.50", "3 Place de la Bastille"),
				rawHotel("H3", "", "", "80.00", ""),
			},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/nearby-airports", func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Query().Get("lat"), "0") {
			writeJSON(w, http.StatusOK, map[string]string{"error": "No airports found"})
			return
		}
		if strings.HasPrefix(req.URL.Query().Get("lat"), "45") {
			writeJSON(w, http.StatusOK, []map[string]any{{"iata": "MXP", "name": "Malpensa", "lat": 45.63, "lng": 8.72}})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"iata": "CDG", "name": "Charles de Gaulle", "lat": 49.01, "lng": 2.55}})
	}).Methods(http.MethodGet)

	r.HandleFunc("/search/flights", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		writeJSON(w, http.StatusOK, []map[string]any{{
			"origin":      q.Get("origin"),
			"destination": q.Get("destination"),
			"departure":   q.Get("departureDate") + "T08:10:00",
			"arrival":     q.Get("departureDate") + "T09:45:00",
			"duration":    "PT1H35M",
			"price":       "120.50",
			"currency":    "EUR",
			"airline":     "AF",
		}})
	}).Methods(http.MethodGet)

	r.HandleFunc("/trip-info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Amadeus is unavailable"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/search/locations", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("keyword") != "paris" {
			writeJSON(w, http.StatusOK, []any{})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"name": "Paris", "iataCode": "PAR", "lat": 48.8566, "lng": 2.3522},
			{"name": "Paris Orly", "iataCode": "ORY", "lat": 48.7262, "lng": 2.3652},
		})
	}).Methods(http.MethodGet)

	return httptest.NewServer(r)
}

func rawHotel(id, name, rating, total, address string) map[string]any {
	hotel := map[string]any{"name": name, "address": address}
	if rating != "" {
		hotel["rating"] = rating
	}
	return map[string]any{
		"hotelId": id,
		"offers": []any{map[string]any{
			"hotel":  hotel,
			"offers": []any{map[string]any{"price": map[string]any{"total": total, "currency": "EUR"}}},
		}},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
