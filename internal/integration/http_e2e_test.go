//go:build integration || !unit

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "stay_directory/internal/adapters/http_server"
	redisad "stay_directory/internal/adapters/redis"
	"stay_directory/internal/app"
	"stay_directory/internal/domain"
	mysqlrepo "stay_directory/internal/storage/mysql"
)

// ---------- helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// ---------- the test ----------

func TestHTTP_EndToEnd_PropertyAndReviews(t *testing.T) {
	// Isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=stay",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "stay")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	// Full production wiring, cache included (miniredis stands in for redis).
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	repo := mysqlrepo.New(db)
	tracker := app.NewReviewTracker(cache)
	catalog := app.NewCatalogService(repo, cache, tracker, 10*time.Minute)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Catalog: catalog,
		Auth:    app.NewAuth("password123"),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	put := func(path string, body any) (*http.Response, []byte) {
		b, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPut, ts.URL+path, bytes.NewReader(b))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("PUT %s: %v", path, err)
		}
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return resp, out
	}
	post := func(path string, body any, hdr map[string]string) (*http.Response, []byte) {
		b, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(b))
		for k, v := range hdr {
			req.Header.Set(k, v)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return resp, out
	}
	get := func(path string, hdr map[string]string) (*http.Response, []byte) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)
		for k, v := range hdr {
			req.Header.Set(k, v)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return resp, out
	}

	// Create a property through the admin surface.
	in := domain.Property{
		Name:          "那覇シーサイドホテル",
		Type:          domain.TypeHotel,
		Address:       "沖縄県那覇市おもろまち1-2-3",
		Latitude:      26.2124,
		Longitude:     127.6809,
		Price:         18000,
		OwnerUsername: "naha-owner",
		OwnerPassword: "naha-pass",
		Tags:          []domain.Tag{domain.TagOceanView},
	}
	resp, body := put("/v1/properties/prop-naha", in)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert status %d: %s", resp.StatusCode, body)
	}

	// Catalog listing sees it.
	resp, body = get("/v1/properties", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	var listed []domain.Property
	if err := json.Unmarshal(body, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "prop-naha" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	// Selecting the property bumps its view count.
	resp, body = get("/v1/properties/prop-naha", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status %d", resp.StatusCode)
	}
	var p domain.Property
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode property: %v", err)
	}
	if p.ViewCount != 1 {
		t.Fatalf("view count = %d, want 1", p.ViewCount)
	}

	// A visitor posts a review; the rating is derived and the id tracked.
	hdr := map[string]string{"X-Client-ID": "visitor-1"}
	resp, body = post("/v1/properties/prop-naha/reviews",
		domain.Review{Author: "田中", Rating: 4, Comment: "眺めが最高"}, hdr)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add review status %d: %s", resp.StatusCode, body)
	}
	var created struct {
		UpdatedProperty domain.Property `json:"updatedProperty"`
		NewReview       domain.Review   `json:"newReview"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode review response: %v", err)
	}
	if !strings.HasPrefix(created.NewReview.ID, "rev-") {
		t.Fatalf("unexpected review id %q", created.NewReview.ID)
	}
	if created.UpdatedProperty.Rating != 4.0 {
		t.Fatalf("rating = %v, want 4.0", created.UpdatedProperty.Rating)
	}

	resp, body = get("/v1/my-reviews", hdr)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("my-reviews status %d", resp.StatusCode)
	}
	var mine []string
	if err := json.Unmarshal(body, &mine); err != nil {
		t.Fatalf("decode my-reviews: %v", err)
	}
	if len(mine) != 1 || mine[0] != created.NewReview.ID {
		t.Fatalf("unexpected tracked ids: %v", mine)
	}

	// Owner login round-trips against the stored document.
	resp, body = post("/v1/owner/login",
		map[string]string{"username": "naha-owner", "password": "naha-pass"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner login status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode owner login: %v", err)
	}
	if p.ID != "prop-naha" {
		t.Fatalf("owner login returned %s", p.ID)
	}
}
