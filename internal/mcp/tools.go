package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"fishguide/internal/advisor"
	"fishguide/internal/catalog"
	"fishguide/internal/journal"
	"fishguide/internal/report"
)

type RecommendInput struct {
	Question   string `json:"question" jsonschema:"the angler's question"`
	Location   string `json:"location,omitempty" jsonschema:"where the angler plans to fish"`
	Species    string `json:"fish_species,omitempty" jsonschema:"target species"`
	TimeOfDay  string `json:"time_of_day,omitempty" jsonschema:"planned time of day"`
	Weather    string `json:"weather,omitempty" jsonschema:"free-text weather description"`
	Experience string `json:"experience,omitempty" jsonschema:"beginner, intermediate, or advanced"`
}

type ReportInput struct {
	Location string `json:"location" jsonschema:"location to report on"`
	Date     string `json:"date,omitempty" jsonschema:"report date as YYYY-MM-DD, defaults to today"`
}

type ReportOutput struct {
	Report   string `json:"report"`
	Filename string `json:"filename"`
}

type ListCatalogInput struct {
	Type   string `json:"type,omitempty" jsonschema:"freshwater, saltwater, or all"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive name filter"`
}

type ListSpeciesOutput struct {
	Species []catalog.Species `json:"species"`
}

type ListLocationsOutput struct {
	Locations []catalog.Location `json:"locations"`
}

type ListGearInput struct {
	Species string `json:"species,omitempty" jsonschema:"only gear recommended for this species"`
	Level   string `json:"level,omitempty" jsonschema:"starter kit level: beginner, intermediate, or advanced"`
	Type    string `json:"type,omitempty" jsonschema:"starter kit water type: freshwater, saltwater, or all"`
}

type ListGearOutput struct {
	Items       []catalog.GearItem   `json:"items"`
	StarterKits []catalog.StarterKit `json:"starter_kits"`
}

type ListJournalInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum entries to return, newest first"`
}

type ListJournalOutput struct {
	Entries []journal.Entry `json:"entries"`
}

type ListCatchesInput struct {
	JournalEntryID string `json:"journal_entry_id,omitempty" jsonschema:"only catches tied to this journal entry"`
}

type ListCatchesOutput struct {
	Catches []journal.Catch `json:"catches"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "recommend_fishing",
		Description: "Build a rule-based fishing recommendation for a Rhode Island scenario",
	}, s.handleRecommend)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "generate_report",
		Description: "Generate the seasonal fishing report for a location and date",
	}, s.handleGenerateReport)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_species",
		Description: "List reference species with regulations",
	}, s.handleListSpecies)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_locations",
		Description: "List reference fishing locations",
	}, s.handleListLocations)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_gear",
		Description: "Recommend tackle and budget starter kits",
	}, s.handleListGear)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_journal",
		Description: "List fishing journal entries, newest first",
	}, s.handleListJournal)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_catches",
		Description: "List the caught-fish gallery",
	}, s.handleListCatches)
}

func (s *Server) handleRecommend(ctx context.Context, req *sdk.CallToolRequest, input RecommendInput) (*sdk.CallToolResult, advisor.Recommendation, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, advisor.Recommendation{}, fmt.Errorf("question is required")
	}
	rec := s.advisor.Recommend(advisor.Scenario{
		Question:   input.Question,
		Location:   input.Location,
		Species:    input.Species,
		TimeOfDay:  input.TimeOfDay,
		Weather:    input.Weather,
		Experience: advisor.Experience(strings.ToLower(strings.TrimSpace(input.Experience))),
	})
	return nil, rec, nil
}

func (s *Server) handleGenerateReport(ctx context.Context, req *sdk.CallToolRequest, input ReportInput) (*sdk.CallToolResult, ReportOutput, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, ReportOutput{}, fmt.Errorf("location is required")
	}
	date := input.Date
	if date == "" {
		date = s.today()
	}
	return nil, ReportOutput{
		Report:   s.reports.Generate(input.Location, date),
		Filename: report.Filename(input.Location, date),
	}, nil
}

func (s *Server) handleListSpecies(ctx context.Context, req *sdk.CallToolRequest, input ListCatalogInput) (*sdk.CallToolResult, ListSpeciesOutput, error) {
	wt, err := catalog.ParseWaterType(input.Type)
	if err != nil {
		return nil, ListSpeciesOutput{}, err
	}
	return nil, ListSpeciesOutput{Species: s.catalog.FindSpecies(catalog.Filter{Search: input.Search, Type: wt})}, nil
}

func (s *Server) handleListLocations(ctx context.Context, req *sdk.CallToolRequest, input ListCatalogInput) (*sdk.CallToolResult, ListLocationsOutput, error) {
	wt, err := catalog.ParseWaterType(input.Type)
	if err != nil {
		return nil, ListLocationsOutput{}, err
	}
	return nil, ListLocationsOutput{Locations: s.catalog.FindLocations(catalog.Filter{Search: input.Search, Type: wt})}, nil
}

func (s *Server) handleListGear(ctx context.Context, req *sdk.CallToolRequest, input ListGearInput) (*sdk.CallToolResult, ListGearOutput, error) {
	level, err := catalog.ParseLevel(input.Level)
	if err != nil {
		return nil, ListGearOutput{}, err
	}
	wt, err := catalog.ParseWaterType(input.Type)
	if err != nil {
		return nil, ListGearOutput{}, err
	}

	var items []catalog.GearItem
	if input.Species != "" {
		items = s.gear.ForSpecies(input.Species)
	} else {
		for _, c := range s.gear.Categories() {
			items = append(items, c.Items...)
		}
	}
	return nil, ListGearOutput{
		Items:       items,
		StarterKits: s.gear.StarterKits(catalog.KitFilter{Level: level, Type: wt}),
	}, nil
}

func (s *Server) handleListJournal(ctx context.Context, req *sdk.CallToolRequest, input ListJournalInput) (*sdk.CallToolResult, ListJournalOutput, error) {
	if s.journal == nil {
		return nil, ListJournalOutput{}, fmt.Errorf("journal is not configured")
	}
	entries := s.journal.Entries(ctx)
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}
	return nil, ListJournalOutput{Entries: entries}, nil
}

func (s *Server) handleListCatches(ctx context.Context, req *sdk.CallToolRequest, input ListCatchesInput) (*sdk.CallToolResult, ListCatchesOutput, error) {
	if s.journal == nil {
		return nil, ListCatchesOutput{}, fmt.Errorf("journal is not configured")
	}
	if input.JournalEntryID != "" {
		return nil, ListCatchesOutput{Catches: s.journal.CatchesForEntry(ctx, input.JournalEntryID)}, nil
	}
	return nil, ListCatchesOutput{Catches: s.journal.Catches(ctx)}, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
