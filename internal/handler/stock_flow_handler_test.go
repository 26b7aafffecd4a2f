package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestStockFlowEndpoints_RecordAndHistory(t *testing.T) {
	router := newTestRouter()

	// Catalog entry so the first stock-in can resolve a display name.
	doRequest(t, router, http.MethodPost, "/v1/products/lenses",
		`{"id":"CID001","brand":"Acuvue","power":"-1.00","category":"Daily"}`)

	w, env := doRequest(t, router, http.MethodPost, "/v1/stock-transactions",
		`{"productId":"CID001","direction":"in","quantity":10,"reason":"New Stock","notes":"PO-1001"}`)
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("stock-in: status %d, body %s", w.Code, w.Body.String())
	}
	var result struct {
		Record struct {
			Quantity int    `json:"quantity"`
			Type     string `json:"type"`
		} `json:"record"`
		Transaction struct {
			ID     string `json:"id"`
			Reason string `json:"reason"`
		} `json:"transaction"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("result payload: %v", err)
	}
	if result.Record.Quantity != 10 || result.Record.Type != "Contact" {
		t.Errorf("record after stock-in: %+v", result.Record)
	}
	if result.Transaction.ID == "" || result.Transaction.Reason != "New Stock" {
		t.Errorf("accepted transaction: %+v", result.Transaction)
	}

	w, _ = doRequest(t, router, http.MethodPost, "/v1/stock-transactions",
		`{"productId":"CID001","direction":"out","quantity":5,"reason":"Sale"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("stock-out: status %d, body %s", w.Code, w.Body.String())
	}

	_, env = doRequest(t, router, http.MethodGet, "/v1/stock-transactions?limit=1", "")
	var history []map[string]any
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatalf("history payload: %v", err)
	}
	if len(history) != 1 || history[0]["direction"] != "out" {
		t.Errorf("history newest first: %v", history)
	}
}

func TestStockFlowEndpoints_ErrorMapping(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			"no product selected",
			`{"direction":"in","quantity":1,"reason":"New Stock"}`,
			http.StatusBadRequest, "INVALID_TRANSACTION",
		},
		{
			"zero quantity",
			`{"productId":"CID001","direction":"in","quantity":0,"reason":"New Stock"}`,
			http.StatusBadRequest, "INVALID_TRANSACTION",
		},
		{
			"reason not valid for direction",
			`{"productId":"CID001","direction":"in","quantity":1,"reason":"Sale"}`,
			http.StatusBadRequest, "INVALID_TRANSACTION",
		},
		{
			"insufficient stock",
			`{"productId":"CID001","direction":"out","quantity":99,"reason":"Sale"}`,
			http.StatusConflict, "INSUFFICIENT_STOCK",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doRequest(t, router, http.MethodPost, "/v1/stock-transactions", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if env.Error == nil || env.Error.Code != tc.wantErr {
				t.Errorf("error code: got %+v, want %s", env.Error, tc.wantErr)
			}
		})
	}
}

func TestStockFlowEndpoints_Reasons(t *testing.T) {
	router := newTestRouter()

	_, env := doRequest(t, router, http.MethodGet, "/v1/stock-transactions/reasons?direction=out", "")
	var payload struct {
		Direction string   `json:"direction"`
		Reasons   []string `json:"reasons"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("reasons payload: %v", err)
	}
	if payload.Direction != "out" || len(payload.Reasons) != 4 || payload.Reasons[0] != "Sale" {
		t.Errorf("out reasons: %+v", payload)
	}

	// Defaults to stock-in when no direction given.
	_, env = doRequest(t, router, http.MethodGet, "/v1/stock-transactions/reasons", "")
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("reasons payload: %v", err)
	}
	if payload.Direction != "in" || len(payload.Reasons) != 3 || payload.Reasons[0] != "New Stock" {
		t.Errorf("default reasons: %+v", payload)
	}

	w, env := doRequest(t, router, http.MethodGet, "/v1/stock-transactions/reasons?direction=sideways", "")
	if w.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "INVALID_TRANSACTION" {
		t.Errorf("unknown direction: status %d, body %s", w.Code, w.Body.String())
	}
}
