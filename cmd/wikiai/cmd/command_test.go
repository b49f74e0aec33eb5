package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wikiai/wikiai/pkg/catalog"
	"github.com/wikiai/wikiai/pkg/logging"
	"github.com/wikiai/wikiai/pkg/store"
)

// fakeApp satisfies AppContext with an in-memory catalog.
type fakeApp struct {
	repo  *catalog.Repository
	queue *catalog.Queue
}

func newFakeApp() *fakeApp {
	s := store.NewMemoryStore()
	repo := catalog.NewRepository(s)
	return &fakeApp{
		repo:  repo,
		queue: catalog.NewQueue(s, repo),
	}
}

func (f *fakeApp) Repository() (*catalog.Repository, error) { return f.repo, nil }
func (f *fakeApp) Queue() (*catalog.Queue, error)           { return f.queue, nil }

func TestToolsListShowsSeedCatalog(t *testing.T) {
	app := newFakeApp()
	c := NewToolsCommand(app)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"list"})
	if err := c.Execute(); err != nil {
		t.Fatalf("tools list failed: %v", err)
	}

	if !strings.Contains(out.String(), "chatgpt") {
		t.Errorf("expected seeded tool in output, got:\n%s", out.String())
	}
}

func TestToolsAddAndRemove(t *testing.T) {
	app := newFakeApp()

	add := NewToolsCommand(app)
	var out bytes.Buffer
	add.SetOut(&out)
	add.SetArgs([]string{"add",
		"--name", "Example Tool",
		"--url", "https://example.com",
		"--pricing", "free",
	})
	if err := add.Execute(); err != nil {
		t.Fatalf("tools add failed: %v", err)
	}
	if !strings.Contains(out.String(), "example-tool") {
		t.Errorf("expected derived slug in output, got %q", out.String())
	}

	remove := NewToolsCommand(app)
	remove.SetOut(&bytes.Buffer{})
	remove.SetArgs([]string{"remove", "example-tool"})
	if err := remove.Execute(); err != nil {
		t.Fatalf("tools remove failed: %v", err)
	}

	if _, err := app.repo.ToolBySlug("example-tool"); err == nil {
		t.Error("tool still present after remove")
	}
}

func TestToolsEditAppliesOnlyChangedFlags(t *testing.T) {
	app := newFakeApp()

	edit := NewToolsCommand(app)
	edit.SetOut(&bytes.Buffer{})
	edit.SetArgs([]string{"edit", "chatgpt", "--trending", "42"})
	if err := edit.Execute(); err != nil {
		t.Fatalf("tools edit failed: %v", err)
	}

	tool, err := app.repo.ToolBySlug("chatgpt")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if tool.Trending != 42 {
		t.Errorf("Trending = %d, want 42", tool.Trending)
	}
	if tool.Name != "ChatGPT" {
		t.Errorf("Name changed to %q, expected untouched", tool.Name)
	}
}

func TestQueryCommandFilters(t *testing.T) {
	app := newFakeApp()

	c := NewQueryCommand(app)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--pricing", "free", "--sort", "name"})
	if err := c.Execute(); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	for _, line := range strings.Split(out.String(), "\n")[1:] {
		if line == "" {
			continue
		}
		if !strings.Contains(line, "free") {
			t.Errorf("non-free tool in filtered output: %q", line)
		}
	}
}

func TestQueryCommandRejectsUnknownSort(t *testing.T) {
	app := newFakeApp()

	c := NewQueryCommand(app)
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--sort", "bogus"})
	if err := c.Execute(); err == nil {
		t.Error("expected an error for unknown sort mode")
	}
}

func TestStatsCommand(t *testing.T) {
	app := newFakeApp()

	c := NewStatsCommand(app)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{})
	if err := c.Execute(); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out.String(), "Tools:") {
		t.Errorf("unexpected stats output:\n%s", out.String())
	}
}

func TestSubmissionLifecycleViaCommands(t *testing.T) {
	app := newFakeApp()

	submit := NewSubmissionsCommand(app)
	var out bytes.Buffer
	submit.SetOut(&out)
	submit.SetArgs([]string{"submit",
		"--name", "Pending Tool",
		"--url", "https://pending.example.com",
		"--pricing", "free",
	})
	if err := submit.Execute(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	subs := app.queue.List()
	if len(subs) != 1 {
		t.Fatalf("queue has %d submissions, want 1", len(subs))
	}

	approve := NewSubmissionsCommand(app)
	approve.SetOut(&bytes.Buffer{})
	approve.SetArgs([]string{"approve", subs[0].ID})
	if err := approve.Execute(); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if _, err := app.repo.ToolBySlug("pending-tool"); err != nil {
		t.Errorf("approved tool missing from catalog: %v", err)
	}
	if app.queue.Len() != 0 {
		t.Errorf("queue still has %d submissions after approval", app.queue.Len())
	}
}

func TestCategoryCommands(t *testing.T) {
	app := newFakeApp()

	add := NewCategoryCommand(app)
	add.SetOut(&bytes.Buffer{})
	add.SetArgs([]string{"add", "Voice Cloning"})
	if err := add.Execute(); err != nil {
		t.Fatalf("category add failed: %v", err)
	}

	list := NewCategoryCommand(app)
	var out bytes.Buffer
	list.SetOut(&out)
	list.SetArgs([]string{"list"})
	if err := list.Execute(); err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Voice Cloning") {
		t.Errorf("added category missing from list:\n%s", out.String())
	}
}

func TestImportLogsThroughContextLogger(t *testing.T) {
	app := newFakeApp()

	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf).Level(zerolog.DebugLevel)
	ctx := logging.WithLogger(context.Background(), &logger)

	payload := `[{"name":"Context Logged Tool","url":"https://example.com","pricing":"free"}]`

	c := NewImportCommand(app)
	c.SetOut(&bytes.Buffer{})
	c.SetIn(strings.NewReader(payload))
	c.SetArgs([]string{"-"})
	if err := c.ExecuteContext(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if !strings.Contains(logBuf.String(), "Import finished") {
		t.Errorf("import did not log through the context logger, log output:\n%s", logBuf.String())
	}
	if _, err := app.repo.ToolBySlug("context-logged-tool"); err != nil {
		t.Errorf("imported tool missing: %v", err)
	}
}

func TestBrandCommands(t *testing.T) {
	app := newFakeApp()

	set := NewBrandCommand(app)
	set.SetOut(&bytes.Buffer{})
	set.SetArgs([]string{"set", "--title", "New Brand"})
	if err := set.Execute(); err != nil {
		t.Fatalf("brand set failed: %v", err)
	}

	brand := app.repo.Brand()
	if brand.Title != "New Brand" {
		t.Errorf("Title = %q, want New Brand", brand.Title)
	}
	if brand.Tagline == "" {
		t.Error("tagline cleared by a title-only set")
	}
}
