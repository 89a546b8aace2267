package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"fishguide/internal/advisor"
	"fishguide/internal/catalog"
	"fishguide/internal/journal"
	"fishguide/internal/report"
)

// JournalReader is the read side of the journal the tools expose.
type JournalReader interface {
	Entries(ctx context.Context) []journal.Entry
	Catches(ctx context.Context) []journal.Catch
	CatchesForEntry(ctx context.Context, entryID string) []journal.Catch
}

type Deps struct {
	Advisor *advisor.Advisor
	Reports *report.Generator
	Catalog *catalog.Catalog
	Gear    *catalog.Gear
	// Journal is optional; the journal tools fail without it.
	Journal JournalReader
	Today   func() string
}

type Server struct {
	advisor *advisor.Advisor
	reports *report.Generator
	catalog *catalog.Catalog
	gear    *catalog.Gear
	journal JournalReader
	today   func() string
	mcp     *sdk.Server
}

func NewServer(deps Deps, version string) *Server {
	s := &Server{
		advisor: deps.Advisor,
		reports: deps.Reports,
		catalog: deps.Catalog,
		gear:    deps.Gear,
		journal: deps.Journal,
		today:   deps.Today,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "fishguide",
			Version: version,
		}, nil),
	}
	if s.advisor == nil {
		s.advisor = advisor.New(nil)
	}
	if s.reports == nil {
		s.reports = report.New(nil)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.gear == nil {
		s.gear = catalog.DefaultGear()
	}
	if s.today == nil {
		s.today = today
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
