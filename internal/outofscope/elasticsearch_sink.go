package outofscope

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"

	"vaccine-assistant/internal/models"
)

// DefaultIndex is used when no index is configured.
const DefaultIndex = "out-of-scope-queries"

// IndexMapping keeps user_input as an exact keyword for review queries.
const IndexMapping = `{
  "mappings": {
    "properties": {
      "user_input": {"type": "keyword"},
      "intent":     {"type": "keyword"},
      "entities":   {"type": "object", "enabled": false},
      "timestamp":  {"type": "date"}
    }
  }
}`

// ElasticsearchSink stores one document per distinct user input. The
// document id is derived from the input so the create call itself rejects
// duplicates across processes.
type ElasticsearchSink struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchSink(client *elasticsearch.Client, index string) *ElasticsearchSink {
	if index == "" {
		index = DefaultIndex
	}
	return &ElasticsearchSink{client: client, index: index}
}

func (s *ElasticsearchSink) Name() string { return "elasticsearch" }

// DocumentID is the hex sha256 of the raw user input.
func DocumentID(userInput string) string {
	sum := sha256.Sum256([]byte(userInput))
	return hex.EncodeToString(sum[:])
}

type document struct {
	UserInput string          `json:"user_input"`
	Intent    string          `json:"intent"`
	Entities  []models.Entity `json:"entities"`
	Timestamp string          `json:"timestamp"`
}

func (s *ElasticsearchSink) Contains(ctx context.Context, userInput string) (bool, error) {
	res, err := s.client.Exists(s.index, DocumentID(userInput), s.client.Exists.WithContext(ctx))
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("exists %s: %s", s.index, res.Status())
	}
}

func (s *ElasticsearchSink) Append(ctx context.Context, entry models.OutOfScopeEntry) (bool, error) {
	entities := entry.Entities
	if entities == nil {
		entities = []models.Entity{}
	}
	body, err := json.Marshal(document{
		UserInput: entry.UserInput,
		Intent:    entry.Intent,
		Entities:  entities,
		Timestamp: entry.TimestampString(),
	})
	if err != nil {
		return false, err
	}

	res, err := s.client.Create(s.index, DocumentID(entry.UserInput), bytes.NewReader(body),
		s.client.Create.WithContext(ctx))
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		return false, nil
	}
	if res.IsError() {
		return false, fmt.Errorf("create in %s: %s", s.index, res.Status())
	}
	return true, nil
}
