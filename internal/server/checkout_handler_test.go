package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/cart"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/catalog"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/checkout"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/storage"
)

// --- mocks ---

type methodsAPIStub struct {
	methods []domain.PaymentMethod
}

func (s methodsAPIStub) PaymentMethods(context.Context) ([]domain.PaymentMethod, error) {
	return s.methods, nil
}

type orchestratorMock struct {
	gotReq *checkout.SubmitRequest
	result *checkout.Result
	err    error
}

func (m *orchestratorMock) Submit(_ context.Context, req checkout.SubmitRequest) (*checkout.Result, error) {
	m.gotReq = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

var kioskMethods = []domain.PaymentMethod{
	{ID: "CASH", Name: "Cash", RequiresProof: false},
	{ID: "BANK_TRANSFER", Name: "Bank Transfer", RequiresProof: true},
}

func newCheckoutHandler(orch *orchestratorMock) (*CheckoutHandler, *cart.Store) {
	store := cart.NewStore(context.Background(), storage.NewMemoryStore())
	cat := catalog.New(methodsAPIStub{methods: kioskMethods}, time.Minute)
	handler := NewCheckoutHandler(store, cat, orch, nil, 5*time.Second, 1<<20)
	return handler, store
}

func checkoutRequest(t *testing.T, method string, proof []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("payment_method", method); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if proof != nil {
		part, err := mw.CreateFormFile("paymentProof", "receipt.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(proof); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	mw.Close()

	request := httptest.NewRequest("POST", "/api/v1/checkout", &buf)
	request.Header.Set("Content-Type", mw.FormDataContentType())
	return request
}

func fillCart(store *cart.Store) {
	store.SetCustomerName(context.Background(), "Alice")
	store.AddItem(context.Background(), testProduct("P1", 10000), 2)
}

// --- tests ---

func TestSubmit_CashSuccess_ClearsCart(t *testing.T) {
	orch := &orchestratorMock{result: &checkout.Result{OrderID: "ORD-1"}}
	handler, store := newCheckoutHandler(orch)
	fillCart(store)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "CASH", nil))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	var response CheckoutResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.OrderID != "ORD-1" {
		t.Errorf("expected order ORD-1, got %q", response.OrderID)
	}
	if response.Total != 20000 {
		t.Errorf("expected total 20000, got %f", response.Total)
	}

	if store.Len() != 0 {
		t.Errorf("cart must be cleared after a confirmed order")
	}
	if store.CustomerName() != "Alice" {
		t.Errorf("customer name must survive checkout")
	}

	if orch.gotReq == nil {
		t.Fatal("orchestrator was not called")
	}
	if orch.gotReq.Method.ID != "CASH" || orch.gotReq.Method.RequiresProof {
		t.Errorf("wrong method passed: %+v", orch.gotReq.Method)
	}
	if orch.gotReq.Proof != nil {
		t.Errorf("no proof expected for cash")
	}
}

func TestSubmit_ForwardsProofFile(t *testing.T) {
	orch := &orchestratorMock{result: &checkout.Result{OrderID: "ORD-2"}}
	handler, store := newCheckoutHandler(orch)
	fillCart(store)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "BANK_TRANSFER", []byte("jpeg-bytes")))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, recorder.Code)
	}
	if orch.gotReq.Proof == nil {
		t.Fatal("proof file was not forwarded")
	}
	if orch.gotReq.Proof.Filename != "receipt.jpg" {
		t.Errorf("unexpected proof filename %q", orch.gotReq.Proof.Filename)
	}
	if string(orch.gotReq.Proof.Content) != "jpeg-bytes" {
		t.Errorf("proof content mangled")
	}
}

func TestSubmit_UnknownPaymentMethod(t *testing.T) {
	orch := &orchestratorMock{}
	handler, store := newCheckoutHandler(orch)
	fillCart(store)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "CRYPTO", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if orch.gotReq != nil {
		t.Errorf("orchestrator must not run for an unknown method")
	}
}

func TestSubmit_ValidationErrorKeepsCart(t *testing.T) {
	orch := &orchestratorMock{err: &checkout.Error{
		Stage:   checkout.StageValidate,
		Reason:  checkout.ReasonMissingCustomerName,
		Message: "Customer name is required",
	}}
	handler, store := newCheckoutHandler(orch)
	store.AddItem(context.Background(), testProduct("P1", 10000), 2)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "CASH", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Code != "missing-customer-name" {
		t.Errorf("expected code missing-customer-name, got %q", response.Code)
	}
	if store.Len() != 1 {
		t.Errorf("cart must be preserved on failure")
	}
}

func TestSubmit_ProofUploadFailureKeepsCart(t *testing.T) {
	orch := &orchestratorMock{err: &checkout.Error{
		Stage:   checkout.StageProofUpload,
		Reason:  checkout.ReasonUploadFailed,
		Message: "Order created but failed to upload payment proof. Please contact support instead of submitting again.",
	}}
	handler, store := newCheckoutHandler(orch)
	fillCart(store)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "BANK_TRANSFER", []byte("jpeg-bytes")))

	if recorder.Code != http.StatusBadGateway {
		t.Errorf("expected %d, got %d", http.StatusBadGateway, recorder.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Code != "upload-failed" {
		t.Errorf("expected code upload-failed, got %q", response.Code)
	}
	if store.Len() != 1 {
		t.Errorf("cart must be preserved when the upload fails")
	}
}

func TestSubmit_InFlightConflict(t *testing.T) {
	orch := &orchestratorMock{err: checkout.ErrSubmissionInFlight}
	handler, store := newCheckoutHandler(orch)
	fillCart(store)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, checkoutRequest(t, "CASH", nil))

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, recorder.Code)
	}
}

func TestPaymentMethods(t *testing.T) {
	handler, _ := newCheckoutHandler(&orchestratorMock{})

	recorder := httptest.NewRecorder()
	handler.PaymentMethods(recorder, httptest.NewRequest("GET", "/api/v1/payment-methods", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var response map[string][]domain.PaymentMethod
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response["methods"]) != 2 {
		t.Errorf("expected 2 methods, got %d", len(response["methods"]))
	}
}
