package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/platebook/platebook/internal/models"
)

// parseCollection maps a command argument to a collection, accepting both the
// singular and plural spellings.
func parseCollection(arg string) (models.Collection, error) {
	switch strings.ToLower(arg) {
	case "place", "places":
		return models.CollectionPlaces, nil
	case "curation", "curations":
		return models.CollectionCurations, nil
	default:
		return "", fmt.Errorf("unknown collection %q (expected places or curations)", arg)
	}
}

// promptCredentials asks for username and password.
func (c *Cli) promptCredentials() (string, string, error) {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	return username, password, nil
}

// promptPlace fills place fields interactively. Existing values are shown as
// defaults and kept on empty input.
func (c *Cli) promptPlace(current *models.PlaceFields) (*models.PlaceFields, error) {
	if current == nil {
		current = &models.PlaceFields{}
	}

	name, err := c.promptString("Name", current.Name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	address, err := c.promptString("Address", current.Address)
	if err != nil {
		return nil, err
	}
	cuisine, err := c.promptString("Cuisine", current.Cuisine)
	if err != nil {
		return nil, err
	}
	notes, err := c.promptString("Notes", current.Notes)
	if err != nil {
		return nil, err
	}
	tags, err := c.promptTags(current.Tags)
	if err != nil {
		return nil, err
	}
	rating, err := c.promptRating(current.Rating)
	if err != nil {
		return nil, err
	}

	return &models.PlaceFields{
		Name:     name,
		Address:  address,
		Cuisine:  cuisine,
		Notes:    notes,
		Tags:     tags,
		Rating:   rating,
		Location: current.Location,
	}, nil
}

// promptCuration fills curation fields interactively.
func (c *Cli) promptCuration(current *models.CurationFields) (*models.CurationFields, error) {
	if current == nil {
		current = &models.CurationFields{}
	}

	title, err := c.promptString("Title", current.Title)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	description, err := c.promptString("Description", current.Description)
	if err != nil {
		return nil, err
	}

	placeIDs, err := c.promptList("Place IDs (comma separated)", current.PlaceIDs)
	if err != nil {
		return nil, err
	}

	return &models.CurationFields{
		Title:       title,
		Description: description,
		PlaceIDs:    placeIDs,
		Pinned:      current.Pinned,
	}, nil
}

func (c *Cli) promptString(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

func (c *Cli) promptTags(current []string) ([]string, error) {
	value, err := c.promptString("Tags (comma separated)", strings.Join(current, ","))
	if err != nil {
		return nil, err
	}
	return splitList(value), nil
}

func (c *Cli) promptList(label string, current []string) ([]string, error) {
	value, err := c.promptString(label, strings.Join(current, ","))
	if err != nil {
		return nil, err
	}
	return splitList(value), nil
}

func (c *Cli) promptRating(current *float64) (*float64, error) {
	currentStr := ""
	if current != nil {
		currentStr = strconv.FormatFloat(*current, 'f', -1, 64)
	}
	value, err := c.promptString("Rating (1-5)", currentStr)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	rating, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rating %q: %w", value, err)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	return &rating, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// recordSummary is the one-line list representation of a record.
func recordSummary(rec *models.StoredRecord) string {
	title := recordTitle(rec)
	return fmt.Sprintf("%-36s  %-10s  v%-3d  %s", rec.Record.ID, rec.Sync.Status, rec.Record.Version, title)
}

func recordTitle(rec *models.StoredRecord) string {
	if name, ok := rec.Record.Fields["name"].(string); ok && name != "" {
		return name
	}
	if title, ok := rec.Record.Fields["title"].(string); ok && title != "" {
		return title
	}
	return "(untitled)"
}

// printRecord dumps the record fields and sync state.
func (c *Cli) printRecord(rec *models.StoredRecord) {
	c.io.Printf("ID:         %s\n", rec.Record.ID)
	c.io.Printf("Collection: %s\n", rec.Record.Collection)
	c.io.Printf("Version:    %d\n", rec.Record.Version)
	c.io.Printf("Status:     %s\n", rec.Sync.Status)
	if !rec.Sync.LastSyncedAt.IsZero() {
		c.io.Printf("Synced at:  %s\n", rec.Sync.LastSyncedAt.Format("2006-01-02 15:04:05"))
	}
	if rec.Sync.LastError != "" {
		c.io.Printf("Last error: %s\n", rec.Sync.LastError)
	}
	c.io.Println("Fields:")
	c.io.Printf("%s\n", formatFields(rec.Record.Fields))
}

func formatFields(fields models.Fields) string {
	data, err := json.MarshalIndent(fields, "  ", "  ")
	if err != nil {
		return fmt.Sprintf("  %v", fields)
	}
	return "  " + string(data)
}

// formatValue renders a field value for conflict prompts.
func formatValue(v any) string {
	if v == nil {
		return "(absent)"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
