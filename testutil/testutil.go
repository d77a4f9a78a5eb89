// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/danielhkuo/spots/cliparse"
	"github.com/danielhkuo/spots/db"
)

// TestDBURLEnv names the variable holding the test database connection string.
// Tests that need Postgres are skipped when it is unset.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB returns a connection to a freshly migrated, empty test database
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(TestDBURLEnv)
	if url == "" {
		t.Skipf("%s not set; skipping Postgres test", TestDBURLEnv)
	}

	conn, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS good CASCADE;
		DROP TABLE IF EXISTS been CASCADE;
		DROP TABLE IF EXISTS spots CASCADE;
		DROP TABLE IF EXISTS users CASCADE;
		DROP TABLE IF EXISTS goose_db_version CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3000,
		DatabaseURL: os.Getenv(TestDBURLEnv),
		TokenKey:    "test-token-key",
		CORSOrigins: []string{"*"},
	}
}

// CreateTestUser inserts a user row directly and returns its id.
// The password hash is a placeholder; use the signup endpoint when sign-in matters.
func CreateTestUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, 'x')
		RETURNING user_id
	`, username).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestSpot inserts a spot owned by userID and returns its id
func CreateTestSpot(t *testing.T, conn *sql.DB, userID int64, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO spots (name, user_id, address, note, date)
		VALUES ($1, $2, '1 Test St', 'a note', '2024-05-01')
		RETURNING spot_id
	`, name, userID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test spot: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status code and the {"error": ...} message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	if body.Error != message {
		t.Errorf("Expected error %q, got %q", message, body.Error)
	}
}
