// pkg/catalog/schema.go
package catalog

import _ "embed"

type ActionCatalog struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"lastUpdated"`
	Actions     []Action `json:"actions"`
}

type Action struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"displayName"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Intents              []string `json:"intents,omitempty"`
	RequiredSlots        []string `json:"requiredSlots,omitempty"`
	Form                 string   `json:"form,omitempty"`
	Responses            []string `json:"responses,omitempty"`
	ImplementationStatus string   `json:"implementationStatus,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
}

//go:embed catalog.schema.json
var catalogSchema string
