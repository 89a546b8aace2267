package journal

// Entry is one fishing trip. JSON names match the persisted format so
// existing journals load unchanged.
type Entry struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Location   string   `json:"location"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	FishImages []string `json:"fishImages"`
	Weather    string   `json:"weather"`
	Conditions string   `json:"conditions"`
	FishCaught []string `json:"fishCaught"`
	Notes      string   `json:"notes"`
}

// Catch is a single fish in the gallery, optionally tied to an entry.
type Catch struct {
	ID             string `json:"id"`
	Image          string `json:"image"`
	Species        string `json:"species"`
	Size           string `json:"size,omitempty"`
	Weight         string `json:"weight,omitempty"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	JournalEntryID string `json:"journalEntryId"`
}

func (e Entry) normalized() Entry {
	if e.FishImages == nil {
		e.FishImages = []string{}
	}
	if e.FishCaught == nil {
		e.FishCaught = []string{}
	}
	return e
}
