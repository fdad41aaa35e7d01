package openapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/signer"
	"github.com/ysEthan/magic-sync/types"

	"github.com/tidwall/gjson"
)

func newTestClient(url string) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 2 * time.Second},
		Signer:      signer.New("key", "mathmagic", "mathmagic"),
		ItemListURL: url,
		PushSpecURL: url,
		MaxRetries:  2,
		Backoff:     time.Millisecond,
	}
}

func TestMarshal_Canonical(t *testing.T) {
	body, err := Marshal(&types.ItemListRequest{
		PageSize: 100, PageNo: 1, Status: 0,
		StartTime: "2026-10-18 00:00:00", EndTime: "2026-10-19 00:00:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"page_size":100,"page_no":1,"status":0,"start_time":"2026-10-18 00:00:00","end_time":"2026-10-19 00:00:00"}`
	if body != want {
		t.Fatalf("body = %s\nwant  %s", body, want)
	}

	body, _ = Marshal([]types.DeclareGoods{{GoodsNo: "G<1>", GoodsName: "项链&吊坠"}})
	if body != `[{"goodsNo":"G<1>","goodsName":"项链&吊坠","specList":null}]` {
		t.Fatalf("unexpected escaping: %s", body)
	}
}

func TestGetItemList_SignsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		q := r.URL.Query()
		want := signer.Digest("key", "mathmagic", "mathmagic", string(body), q.Get("timestamp"))
		if q.Get("sign") != want {
			t.Errorf("sign = %s, want %s", q.Get("sign"), want)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %s", r.Header.Get("Content-Type"))
		}
		_, _ = w.Write([]byte(`{"code":200,"message":"ok","data":{"total":2,"pageSize":100,"currentPage":1,
			"data":[{"goodsId":1,"goodsNo":"G1","specId":"11","specNo":"S1"},{"goodsId":2,"goodsNo":"G2","specId":22,"specNo":"S2"}]}}`))
	}))
	defer srv.Close()

	page, err := newTestClient(srv.URL).GetItemList(context.Background(), &types.ItemListRequest{PageSize: 100, PageNo: 1, SkuList: []string{"S1", "S2"}})
	if err != nil {
		t.Fatalf("get item list: %v", err)
	}
	if page.Total != 2 || len(page.Data) != 2 || gjson.GetBytes(page.Data[0], "specId").String() != "11" {
		t.Fatalf("page = %+v", page)
	}
}

func TestGetItemList_KeepsRecordsRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"message":"ok","data":{"total":2,"pageSize":100,"currentPage":1,
			"data":[{"goodsId":1,"specId":11,"weight":"1.2"},{"goodsId":2,"specId":22,"weight":"N/A"}]}}`))
	}))
	defer srv.Close()

	page, err := newTestClient(srv.URL).GetItemList(context.Background(), &types.ItemListRequest{PageNo: 1})
	if err != nil {
		t.Fatalf("a bad field in one record must not fail the page: %v", err)
	}
	if len(page.Data) != 2 || gjson.GetBytes(page.Data[1], "weight").String() != "N/A" {
		t.Fatalf("records = %s", page.Data)
	}
}

func TestGetItemList_BusinessError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"code":401,"message":"签名错误"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetItemList(context.Background(), &types.ItemListRequest{PageNo: 1})
	if !errors.Is(err, ErrBusiness) {
		t.Fatalf("expected business error, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("business errors must not be retried, calls=%d", atomic.LoadInt32(&calls))
	}
}

func TestPost_RetriesServerErrors(t *testing.T) {
	var (
		calls  int32
		mu     sync.Mutex
		stamps []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		mu.Lock()
		stamps = append(stamps, r.URL.Query().Get("sign"))
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"code":200,"message":"ok"}`))
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).PushSpec(context.Background(), []types.DeclareGoods{{GoodsNo: "G1"}}); err != nil {
		t.Fatalf("push spec: %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("calls = %d, want 3", atomic.LoadInt32(&calls))
	}
	mu.Lock()
	defer mu.Unlock()
	if len(stamps) != 3 || stamps[0] == "" {
		t.Errorf("every attempt should be signed: %v", stamps)
	}
}

func TestPost_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PushSpec(context.Background(), nil)
	if !errors.Is(err, ErrHTTPStatus) {
		t.Fatalf("expected http status error, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, want 1 + 2 retries", atomic.LoadInt32(&calls))
	}
}

func TestPost_ZeroRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.MaxRetries = 0
	err := c.PushSpec(context.Background(), nil)
	if !errors.Is(err, ErrHTTPStatus) || atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("err=%v calls=%d", err, atomic.LoadInt32(&calls))
	}
}

func TestNewClient_MaxRetriesFromConfig(t *testing.T) {
	zero := 0
	if c := NewClient(&config.OpenAPIConfig{MaxRetries: &zero}); c.MaxRetries != 0 {
		t.Errorf("explicit 0 = %d", c.MaxRetries)
	}
	five := 5
	if c := NewClient(&config.OpenAPIConfig{MaxRetries: &five}); c.MaxRetries != 5 {
		t.Errorf("max retries = %d", c.MaxRetries)
	}
}

func TestLinearBackOff(t *testing.T) {
	b := &linearBackOff{step: time.Second}
	for i, want := range []time.Duration{time.Second, 2 * time.Second, 3 * time.Second} {
		if got := b.NextBackOff(); got != want {
			t.Errorf("wait %d = %v, want %v", i+1, got, want)
		}
	}
	b.Reset()
	if got := b.NextBackOff(); got != time.Second {
		t.Errorf("after reset = %v", got)
	}
}

func TestPost_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PushSpec(context.Background(), nil)
	if !errors.Is(err, ErrHTTPStatus) || atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("err=%v calls=%d", err, atomic.LoadInt32(&calls))
	}
}

func TestGetItemList_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetItemList(context.Background(), &types.ItemListRequest{PageNo: 1})
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}
