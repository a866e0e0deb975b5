package udns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreatePrimaryZone(t *testing.T) {
	var gotBody map[string]any
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/accounts":
			fmt.Fprint(w, `{"accounts":[{"accountName":"teamrocket"},{"accountName":"secondary"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/zones":
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &gotBody); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
	client := newTestClient(t, srv)

	if err := client.CreatePrimaryZone(context.Background(), "example.com."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{
		"properties": map[string]any{
			"name":        "example.com.",
			"accountName": "teamrocket",
			"type":        "PRIMARY",
		},
		"primaryCreateInfo": map[string]any{
			"forceImport": true,
			"createType":  "NEW",
		},
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Errorf("zone payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCreatePrimaryZone_NoAccounts(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"accounts":[]}`)
	})
	client := newTestClient(t, srv)

	if err := client.CreatePrimaryZone(context.Background(), "example.com."); err == nil {
		t.Error("expected error for user without accounts, got nil")
	}
}

func TestZoneMetadata(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/zones/example.com." {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"properties":{"name":"example.com.","accountName":"teamrocket","type":"PRIMARY","resourceRecordCount":7,"status":"ACTIVE"}}`)
	})
	client := newTestClient(t, srv)

	zone, err := client.ZoneMetadata(context.Background(), "example.com.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone.Properties.Name != "example.com." {
		t.Errorf("expected zone name 'example.com.', got %q", zone.Properties.Name)
	}
	if zone.Properties.ResourceRecordCount != 7 {
		t.Errorf("expected 7 records, got %d", zone.Properties.ResourceRecordCount)
	}
}

func TestDeleteZone(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/zones/example.com." {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, srv)

	if err := client.DeleteZone(context.Background(), "example.com."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestZonesOfAccount(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/accounts/teamrocket/zones" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		query := r.URL.Query()
		if got := query.Get("sort"); got != SortName {
			t.Errorf("expected sort %q, got %q", SortName, got)
		}
		if got := query.Get("reverse"); got != "true" {
			t.Errorf("expected reverse 'true', got %q", got)
		}
		if got := query.Get("offset"); got != "5" {
			t.Errorf("expected offset '5', got %q", got)
		}
		fmt.Fprint(w, `{
			"zones": [{"properties":{"name":"example.com.","type":"PRIMARY"}}],
			"resultInfo": {"totalCount":6,"offset":5,"returnedCount":1}
		}`)
	})
	client := newTestClient(t, srv)

	list, err := client.ZonesOfAccount(context.Background(), "teamrocket",
		WithSort(SortName), WithReverse(), WithOffset(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &ZoneList{
		Zones:      []Zone{{Properties: ZoneProperties{Name: "example.com.", Type: "PRIMARY"}}},
		ResultInfo: ResultInfo{TotalCount: 6, Offset: 5, ReturnedCount: 1},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("zone list mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountDetails(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/accounts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"accounts":[{"accountName":"teamrocket","accountType":"ORGANIZATION"}]}`)
	})
	client := newTestClient(t, srv)

	accounts, err := client.AccountDetails(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts.Accounts) != 1 || accounts.Accounts[0].AccountName != "teamrocket" {
		t.Errorf("unexpected accounts: %+v", accounts)
	}
}
