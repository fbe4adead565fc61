// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"vaccine-assistant/internal/common/validation"
)

var compiledSchema = validation.MustCompileSchema(catalogSchema)

// LoadCatalog reads and validates the catalog file at path.
func LoadCatalog(path string) (*ActionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*ActionCatalog, error) {
	result, err := compiledSchema.ValidateBytes(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("catalog schema: %s", strings.Join(result.GetErrorMessages(), "; "))
	}

	var cat ActionCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Save writes the catalog back to path, stamping LastUpdated.
func (c *ActionCatalog) Save(path string) error {
	c.LastUpdated = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if _, err := Parse(data); err != nil {
		return fmt.Errorf("refusing to save invalid catalog: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// SetStatus changes the implementation status of one action.
func (c *ActionCatalog) SetStatus(id, status string) error {
	switch status {
	case "planned", "in-progress", "completed", "verified":
	default:
		return fmt.Errorf("invalid implementation status %q", status)
	}
	for i := range c.Actions {
		if c.Actions[i].ID == id {
			c.Actions[i].ImplementationStatus = status
			return nil
		}
	}
	return fmt.Errorf("action with ID %s not found", id)
}

// Validate checks the rules the schema cannot express: unique ids, each
// intent routed once, forms that exist.
func (c *ActionCatalog) Validate() error {
	if len(c.Actions) == 0 {
		return fmt.Errorf("catalog contains no actions")
	}

	ids := make(map[string]bool, len(c.Actions))
	for _, a := range c.Actions {
		if a.ID == "" {
			return fmt.Errorf("action missing required field: ID")
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate action ID: %s", a.ID)
		}
		ids[a.ID] = true
	}

	intents := make(map[string]string)
	for _, a := range c.Actions {
		for _, intent := range a.Intents {
			if owner, taken := intents[intent]; taken {
				return fmt.Errorf("intent %s routed to both %s and %s", intent, owner, a.ID)
			}
			intents[intent] = a.ID
		}
		if a.Form != "" && !ids[a.Form] {
			return fmt.Errorf("action %s uses unknown form %s", a.ID, a.Form)
		}
	}
	return nil
}

// Find returns the action with the given id.
func (c *ActionCatalog) Find(id string) (Action, bool) {
	for _, a := range c.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// ActionForIntent returns the action an intent is routed to.
func (c *ActionCatalog) ActionForIntent(intent string) (Action, bool) {
	for _, a := range c.Actions {
		for _, i := range a.Intents {
			if i == intent {
				return a, true
			}
		}
	}
	return Action{}, false
}

// IDs lists action ids in catalog order.
func (c *ActionCatalog) IDs() []string {
	ids := make([]string, 0, len(c.Actions))
	for _, a := range c.Actions {
		ids = append(ids, a.ID)
	}
	return ids
}

// Missing returns catalog ids for which has reports false.
func (c *ActionCatalog) Missing(has func(id string) bool) []string {
	var missing []string
	for _, a := range c.Actions {
		if !has(a.ID) {
			missing = append(missing, a.ID)
		}
	}
	return missing
}
