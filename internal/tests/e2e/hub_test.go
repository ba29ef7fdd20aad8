//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/studenthub/apiserver/config"
	"github.com/studenthub/apiserver/internal/server"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	serverPort = 18080
	mongoURI   = "mongodb://localhost:27017"
	testDB     = "student_hub_e2e"
)

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	root, err := repoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to locate repo root: %v\n", err)
		os.Exit(1)
	}

	if err := dockerCompose(ctx, root, "up", "-d"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start docker compose: %v\n", err)
		os.Exit(1)
	}

	if err := waitForMongo(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mongo not ready: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	if err := dropTestDatabase(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset test database: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	srv, err := startServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	if err := waitForHealth(ctx, baseURL+"/health"); err != nil {
		fmt.Fprintf(os.Stderr, "server not healthy: %v\n", err)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		shutdownCancel()
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	code := m.Run()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = srv.Shutdown(shutdownCtx)
	shutdownCancel()
	_ = dockerCompose(context.Background(), root, "down")
	os.Exit(code)
}

func TestAccountLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	email := fmt.Sprintf("student_%d@college.edu", time.Now().UnixNano())
	password := "testpass123!"

	if err := registerUser(t, baseURL, email, password); err != nil {
		t.Fatalf("register user: %v", err)
	}

	// Registering the same email again must conflict.
	status, _, err := postJSON(baseURL+"/api/auth/register", map[string]any{
		"name": "Test Student", "email": email, "password": password,
	})
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", status)
	}

	auth, err := loginUser(t, baseURL, email, password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.TokenType != "bearer" {
		t.Fatalf("unexpected token type %q", auth.TokenType)
	}

	me, err := getMe(t, baseURL, auth.AccessToken)
	if err != nil {
		t.Fatalf("get me: %v", err)
	}
	if me.Email != email {
		t.Fatalf("unexpected email %q", me.Email)
	}
}

func TestFeedLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)

	status, body, err := postJSON(baseURL+"/api/blog/initialize", nil)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("initialize status %d: %s", status, body)
	}

	posts, err := listPosts(t, baseURL)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) == 0 {
		t.Fatalf("expected seeded posts")
	}

	// Job postings lead the interleaved feed whenever any exist.
	hasJob := false
	for _, p := range posts {
		if p.Kind == "job" {
			hasJob = true
			break
		}
	}
	if hasJob && posts[0].Kind != "job" {
		t.Fatalf("expected feed to open with a job post, got %q", posts[0].Kind)
	}

	target := posts[0]

	liked, err := toggleLike(t, baseURL, target.ID, "e2e-user", "E2E User")
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if !liked {
		t.Fatalf("expected first toggle to like")
	}

	liked, err = toggleLike(t, baseURL, target.ID, "e2e-user", "E2E User")
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if liked {
		t.Fatalf("expected second toggle to unlike")
	}

	status, body, err = postJSON(baseURL+"/api/blog/posts/"+target.ID+"/comments", map[string]any{
		"user_id": "e2e-user", "user_name": "E2E User", "text": "first!",
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("add comment status %d: %s", status, body)
	}
}

type postView struct {
	ID        string `json:"id"`
	Kind      string `json:"type"`
	Title     string `json:"title"`
	LikeCount int    `json:"like_count"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	User struct {
		Email string `json:"email"`
	} `json:"user"`
}

func registerUser(t *testing.T, baseURL, email, password string) error {
	t.Helper()

	status, body, err := postJSON(baseURL+"/api/auth/register", map[string]any{
		"name":     "Test Student",
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("register status %d: %s", status, body)
	}
	return nil
}

func loginUser(t *testing.T, baseURL, email, password string) (authResponse, error) {
	t.Helper()

	status, body, err := postJSON(baseURL+"/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return authResponse{}, err
	}
	if status != http.StatusOK {
		return authResponse{}, fmt.Errorf("login status %d: %s", status, body)
	}

	var parsed authResponse
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return authResponse{}, err
	}
	if parsed.AccessToken == "" {
		return authResponse{}, fmt.Errorf("missing token in login response")
	}
	return parsed, nil
}

func getMe(t *testing.T, baseURL, token string) (struct{ Email string }, error) {
	t.Helper()

	out := struct{ Email string }{}

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/auth/me", nil)
	if err != nil {
		return out, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return out, fmt.Errorf("me status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed userResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return out, err
	}
	out.Email = parsed.User.Email
	return out, nil
}

func listPosts(t *testing.T, baseURL string) ([]postView, error) {
	t.Helper()

	resp, err := http.Get(baseURL + "/api/blog/posts")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list posts status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed []postView
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func toggleLike(t *testing.T, baseURL, postID, userID, userName string) (bool, error) {
	t.Helper()

	status, body, err := postJSON(baseURL+"/api/blog/posts/"+postID+"/like", map[string]any{
		"user_id":   userID,
		"user_name": userName,
	})
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("like status %d: %s", status, body)
	}

	var parsed struct {
		Liked bool `json:"liked"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return false, err
	}
	return parsed.Liked, nil
}

func postJSON(url string, payload any) (int, string, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return 0, "", err
		}
	}

	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, strings.TrimSpace(string(body)), nil
}

func waitForMongo(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := client.Ping(pingCtx, nil)
		cancel()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("mongo ping timeout: %w", err)
		case <-ticker.C:
		}
	}
}

func dropTestDatabase(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	return client.Database(testDB).Drop(ctx)
}

func waitForHealth(ctx context.Context, url string) error {
	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			return fmt.Errorf("health check failed with status")
		case <-ticker.C:
		}
	}
}

func startServer() (*server.Server, error) {
	_ = os.Setenv("JWT_SECRET", "test-secret")
	_ = os.Setenv("SERVER_PORT", fmt.Sprintf("%d", serverPort))
	_ = os.Setenv("MONGO_URI", mongoURI)
	_ = os.Setenv("MONGO_DB", testDB)
	_ = os.Setenv("STORAGE_BACKEND", "")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.LoadConfig()
	srv, err := server.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	go func() {
		_ = srv.Start()
	}()

	return srv, nil
}

func dockerCompose(ctx context.Context, root string, args ...string) error {
	composeFile := filepath.Join(root, "development", "docker-compose.yml")
	baseArgs := append([]string{"compose", "-f", composeFile}, args...)
	cmd := exec.CommandContext(ctx, "docker", baseArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}
