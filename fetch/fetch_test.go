package fetch

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/cerealpipe/errors"
)

const mockCSV = "name,protein,calories\nBran,4,70\nHoney-comb,1,110\n"

func stubFetch(csv string) FetchFunc {
	return func(_ context.Context, _ string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(csv)), nil
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.URL != DefaultURL {
		t.Errorf("expected default URL, got %q", cfg.URL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.UserAgent == "" {
		t.Error("expected default user agent")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{URL: "not a url"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{URL: ":::"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadWithFetchFunc(t *testing.T) {
	loader, err := New(Config{}, WithFetchFunc(stubFetch(mockCSV)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", f.Len())
	}
	if !f.HasColumn("protein") {
		t.Error("expected protein column")
	}
}

func TestLoadFetchErrorIsFetchFailed(t *testing.T) {
	cause := stderrors.New("connection refused")
	loader, err := New(Config{}, WithFetchFunc(func(_ context.Context, _ string) (io.ReadCloser, error) {
		return nil, cause
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = loader.Load(context.Background())
	if !errors.IsFetch(err) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be surfaced unmodified in the chain")
	}
}

func TestLoadDecodeErrorIsFetchFailed(t *testing.T) {
	loader, err := New(Config{}, WithFetchFunc(stubFetch("")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = loader.Load(context.Background())
	if !errors.IsFetch(err) {
		t.Fatalf("expected fetch error for empty body, got %v", err)
	}
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "cerealpipe" {
			t.Errorf("expected default user agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, mockCSV)
	}))
	defer srv.Close()

	loader, err := New(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", f.Len())
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	loader, err := New(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := loader.Load(context.Background()); !errors.IsFetch(err) {
		t.Fatalf("expected fetch error for 404, got %v", err)
	}
}

func TestLoadDeadlineExceededIsTimeout(t *testing.T) {
	loader, err := New(Config{}, WithFetchFunc(func(ctx context.Context, _ string) (io.ReadCloser, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = loader.Load(ctx)
	if !errors.IsCode(err, errors.ErrCodeTimeout) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
}
