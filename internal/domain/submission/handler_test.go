package submission

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/openhie/xds-repository/internal/platform/xds"
)

func postSubmission(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/xds/provide-and-register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ProvideAndRegister(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestProvideAndRegisterEndpoint(t *testing.T) {
	t.Run("WellFormedSubmission", func(t *testing.T) {
		f := newFixture()
		h := NewHandler(f.svc)

		req := ProvideAndRegisterRequest{
			Documents: []Document{{ID: "Document01", Content: []byte("<ClinicalDocument/>")}},
			Metadata: xds.SubmitObjectsRequest{
				ExtrinsicObjects: []xds.ExtrinsicObject{
					wellFormedMetadata("Document01", "uid-1"),
				},
			},
		}
		body, err := json.Marshal(req)
		if err != nil {
			t.Fatal(err)
		}

		rec := postSubmission(t, h, string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp xds.RegistryResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.Succeeded() {
			t.Fatalf("expected success verdict, got %+v", resp)
		}
	})

	t.Run("ResolutionFailureStillHTTP200", func(t *testing.T) {
		f := newFixture()
		h := NewHandler(f.svc)

		// Metadata without a patient identifier.
		eo := wellFormedMetadata("Document01", "uid-1")
		eo.ExternalIdentifiers = eo.ExternalIdentifiers[1:]
		req := ProvideAndRegisterRequest{
			Documents: []Document{{ID: "Document01", Content: []byte("x")}},
			Metadata:  xds.SubmitObjectsRequest{ExtrinsicObjects: []xds.ExtrinsicObject{eo}},
		}
		body, err := json.Marshal(req)
		if err != nil {
			t.Fatal(err)
		}

		rec := postSubmission(t, h, string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with failure body, got %d", rec.Code)
		}

		var resp xds.RegistryResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Succeeded() {
			t.Fatal("expected failure verdict")
		}
		if resp.ErrorList == nil || resp.ErrorList.Errors[0].ErrorCode != xds.ErrorCodeRepositoryError {
			t.Errorf("expected XDSRepositoryError, got %+v", resp.ErrorList)
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		f := newFixture()
		h := NewHandler(f.svc)

		rec := postSubmission(t, h, "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
