package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"fishguide/internal/advisor"
	"fishguide/internal/journal"
	"fishguide/internal/knowledge"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

type mockJournal struct {
	entries []journal.Entry
	catches []journal.Catch

	lastEntryID string
}

func (m *mockJournal) Entries(ctx context.Context) []journal.Entry { return m.entries }

func (m *mockJournal) Catches(ctx context.Context) []journal.Catch { return m.catches }

func (m *mockJournal) CatchesForEntry(ctx context.Context, entryID string) []journal.Catch {
	m.lastEntryID = entryID
	var out []journal.Catch
	for _, c := range m.catches {
		if c.JournalEntryID == entryID {
			out = append(out, c)
		}
	}
	return out
}

func newTestServer(j JournalReader) *Server {
	clock := advisor.WithClock(func() time.Time {
		return time.Date(2024, time.July, 15, 8, 0, 0, 0, time.UTC)
	})
	return NewServer(Deps{
		Advisor: advisor.New(knowledge.Default(), clock),
		Journal: j,
		Today:   func() string { return "2024-07-15" },
	}, "test")
}

func TestRecommend_RequiresQuestion(t *testing.T) {
	server := newTestServer(nil)

	_, _, err := server.handleRecommend(context.Background(), nil, RecommendInput{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRecommend(t *testing.T) {
	server := newTestServer(nil)

	_, output, err := server.handleRecommend(context.Background(), nil, RecommendInput{
		Question:   "What should I throw?",
		Location:   "Narragansett Bay",
		Species:    "Striped Bass",
		Experience: " Beginner ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %v", output.Confidence)
	}
	if output.Season != knowledge.Summer {
		t.Fatalf("expected summer, got %s", output.Season)
	}
	found := false
	for _, tip := range output.Recommendations.Tips {
		if tip == "Use reliable tackle" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected beginner tips, got %v", output.Recommendations.Tips)
	}
}

func TestGenerateReport(t *testing.T) {
	server := newTestServer(nil)

	_, output, err := server.handleGenerateReport(context.Background(), nil, ReportInput{Location: "Block Island"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output.Report, "Date: 2024-07-15") {
		t.Fatalf("expected default date in report")
	}
	if output.Filename != "fishing-report-block-island-2024-07-15.txt" {
		t.Fatalf("unexpected filename %q", output.Filename)
	}

	if _, _, err := server.handleGenerateReport(context.Background(), nil, ReportInput{}); err == nil {
		t.Fatalf("expected error for missing location")
	}
}

func TestListSpecies(t *testing.T) {
	server := newTestServer(nil)

	_, output, err := server.handleListSpecies(context.Background(), nil, ListCatalogInput{Type: "saltwater", Search: "bass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Species) != 2 {
		t.Fatalf("expected striped and black sea bass, got %d", len(output.Species))
	}

	if _, _, err := server.handleListSpecies(context.Background(), nil, ListCatalogInput{Type: "lava"}); err == nil {
		t.Fatalf("expected error for bad type")
	}
}

func TestListLocations(t *testing.T) {
	server := newTestServer(nil)

	_, output, err := server.handleListLocations(context.Background(), nil, ListCatalogInput{Type: "saltwater"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Locations) != 5 {
		t.Fatalf("expected 5 saltwater locations, got %d", len(output.Locations))
	}
}

func TestListGear(t *testing.T) {
	server := newTestServer(nil)

	_, output, err := server.handleListGear(context.Background(), nil, ListGearInput{Species: "Tautog", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Items) != 9 {
		t.Fatalf("expected 9 tautog items, got %d", len(output.Items))
	}
	if len(output.StarterKits) != 2 {
		t.Fatalf("expected 2 beginner kits, got %d", len(output.StarterKits))
	}

	_, all, err := server.handleListGear(context.Background(), nil, ListGearInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Items) != 20 {
		t.Fatalf("expected every gear item, got %d", len(all.Items))
	}

	if _, _, err := server.handleListGear(context.Background(), nil, ListGearInput{Level: "pro"}); err == nil {
		t.Fatalf("expected error for bad level")
	}
}

func TestListJournal(t *testing.T) {
	mock := &mockJournal{entries: []journal.Entry{{ID: "3"}, {ID: "2"}, {ID: "1"}}}
	server := newTestServer(mock)

	_, output, err := server.handleListJournal(context.Background(), nil, ListJournalInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 2 || output.Entries[0].ID != "3" {
		t.Fatalf("unexpected entries: %+v", output.Entries)
	}
}

func TestListCatches(t *testing.T) {
	mock := &mockJournal{catches: []journal.Catch{
		{ID: "a", JournalEntryID: "e1"},
		{ID: "b", JournalEntryID: "e2"},
	}}
	server := newTestServer(mock)

	_, output, err := server.handleListCatches(context.Background(), nil, ListCatchesInput{JournalEntryID: "e2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastEntryID != "e2" {
		t.Fatalf("expected entry id passed through, got %q", mock.lastEntryID)
	}
	if len(output.Catches) != 1 || output.Catches[0].ID != "b" {
		t.Fatalf("unexpected catches: %+v", output.Catches)
	}

	_, all, err := server.handleListCatches(context.Background(), nil, ListCatchesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Catches) != 2 {
		t.Fatalf("expected all catches, got %d", len(all.Catches))
	}
}

func TestJournalToolsWithoutJournal(t *testing.T) {
	server := newTestServer(nil)

	if _, _, err := server.handleListJournal(context.Background(), nil, ListJournalInput{}); err == nil {
		t.Fatalf("expected error")
	}
	if _, _, err := server.handleListCatches(context.Background(), nil, ListCatchesInput{}); err == nil {
		t.Fatalf("expected error")
	}
}
