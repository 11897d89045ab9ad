package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shapestone/shape-curl/pkg/curl"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestImport_OrderAndErrors(t *testing.T) {
	cmds := []Command{
		{Line: 1, Text: "curl https://api.example.com/v1/users"},
		{Line: 3, Text: "wget https://x.test"},
		{Line: 5, Text: "curl -X POST"},
		{Line: 7, Text: "curl -d x https://x.test/b"},
	}

	entries, err := NewImporter(Options{Workers: 2}).Import(context.Background(), cmds)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(entries) != len(cmds) {
		t.Fatalf("got %d entries, want %d", len(entries), len(cmds))
	}

	for i, e := range entries {
		if e.Line != cmds[i].Line {
			t.Errorf("entries[%d].Line = %d, want %d", i, e.Line, cmds[i].Line)
		}
		if e.ID == uuid.Nil {
			t.Errorf("entries[%d].ID is nil", i)
		}
	}

	if entries[0].Request == nil || entries[0].Request.SuggestedName != "Example — GET /v1/users" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if !errors.Is(entries[1].Err, curl.ErrNotACurlCommand) || entries[1].Error == "" {
		t.Errorf("entries[1].Err = %v, want NotACurlCommand", entries[1].Err)
	}
	if !errors.Is(entries[2].Err, curl.ErrNoURLFound) {
		t.Errorf("entries[2].Err = %v, want NoURLFound", entries[2].Err)
	}
	if entries[3].Request == nil || entries[3].Request.Method != "POST" {
		t.Errorf("entries[3] = %+v", entries[3])
	}

	parsed, failed := Summarize(entries)
	if parsed != 2 || failed != 2 {
		t.Errorf("Summarize() = %d, %d; want 2, 2", parsed, failed)
	}
}

func TestImport_ManyCommandsConcurrently(t *testing.T) {
	cmds := make([]Command, 200)
	for i := range cmds {
		cmds[i] = Command{Line: i + 1, Text: fmt.Sprintf("curl -H 'X-N: %d' https://x.test/%d", i, i)}
	}

	entries, err := NewImporter(Options{Workers: 8}).Import(context.Background(), cmds)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	seen := make(map[uuid.UUID]bool, len(entries))
	for i, e := range entries {
		if e.Request == nil {
			t.Fatalf("entries[%d] failed: %v", i, e.Err)
		}
		if want := fmt.Sprintf("https://x.test/%d", i); e.Request.URL != want {
			t.Errorf("entries[%d].URL = %q, want %q", i, e.Request.URL, want)
		}
		if e.Request.Headers["X-N"] != fmt.Sprint(i) {
			t.Errorf("entries[%d] header = %q", i, e.Request.Headers["X-N"])
		}
		if seen[e.ID] {
			t.Errorf("duplicate ID %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestImport_Strict(t *testing.T) {
	cmds := []Command{{Line: 1, Text: `curl 'https://x.test`}}

	entries, err := NewImporter(Options{Strict: true}).Import(context.Background(), cmds)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !errors.Is(entries[0].Err, curl.ErrUnterminatedQuote) {
		t.Errorf("Err = %v, want UnterminatedQuote", entries[0].Err)
	}

	entries, err = NewImporter(Options{}).Import(context.Background(), cmds)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if entries[0].Request == nil {
		t.Errorf("lenient import failed: %v", entries[0].Err)
	}
}

func TestImport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmds := []Command{{Line: 1, Text: "curl https://x.test"}}
	if _, err := NewImporter(Options{Workers: 1}).Import(ctx, cmds); !errors.Is(err, context.Canceled) {
		t.Errorf("Import() error = %v, want context.Canceled", err)
	}
}

func TestImport_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	im := NewImporter(Options{Workers: 1, Logger: zap.New(core)})

	_, err := im.Import(context.Background(), []Command{
		{Line: 1, Text: "curl --bogus https://x.test"},
		{Line: 2, Text: "nope"},
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if n := logs.FilterMessage("command parsed").Len(); n != 1 {
		t.Errorf("'command parsed' logged %d times, want 1", n)
	}
	rejected := logs.FilterMessage("command rejected").All()
	if len(rejected) != 1 || rejected[0].ContextMap()["line"] != int64(2) {
		t.Errorf("'command rejected' entries = %+v", rejected)
	}
	if logs.FilterMessage("import finished").Len() != 1 {
		t.Error("missing 'import finished' log")
	}
}

func TestImportReader(t *testing.T) {
	input := "curl https://a.test\n\ncurl \\\n  -d x \\\n  https://b.test\n"
	entries, err := NewImporter(Options{}).ImportReader(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportReader() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].Line != 3 || entries[1].Request == nil || entries[1].Request.URL != "https://b.test" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
