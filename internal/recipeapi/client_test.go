package recipeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(baseURL, 5*time.Second, logger)
}

func TestGetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipe not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateSendsBodyAndRequestID(t *testing.T) {
	var received Recipe
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("нет заголовка X-Request-Id")
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode: %v", err)
		}
		received.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	created, err := c.Create(context.Background(), Recipe{Name: "Борщ", Image: []byte("img")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if received.Name != "Борщ" {
		t.Errorf("received name = %q", received.Name)
	}
	if created.ID != 7 {
		t.Errorf("created.ID = %d, want 7", created.ID)
	}
}

func TestUpdateSetsBodyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/recipes/5" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var recipe Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			t.Fatalf("decode: %v", err)
		}
		// сервис требует совпадения id в теле и в пути
		if recipe.ID != 5 {
			t.Errorf("body id = %d, want 5", recipe.ID)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	if err := c.Update(context.Background(), 5, Recipe{Name: "Паста", Image: []byte("img")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipe not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.Update(context.Background(), 999, Recipe{Name: "Паста", Image: []byte("img")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipe not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	if err := c.Delete(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Recipe{
			{ID: 1, Name: "Борщ", Image: []byte("a")},
			{ID: 2, Name: "Паста", Image: []byte("b")},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	recipes, err := c.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(recipes) != 2 || recipes[1].Name != "Паста" {
		t.Errorf("recipes = %+v", recipes)
	}
}
