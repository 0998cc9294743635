// api/audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const indexName = "gateway-audit"

type Repository interface {
	Record(ctx context.Context, entry AuditLog) error
	Query(ctx context.Context, from, to time.Time, actorID, action string) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

// Record indexes an audit entry.
func (r *ElasticsearchRepository) Record(ctx context.Context, entry AuditLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: fmt.Sprintf("%d-%s-%s", entry.Timestamp.UnixNano(), entry.Action, entry.ActorID),
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit entry: %s", res.String())
	}
	return nil
}

// Query searches audit entries within a time frame, optionally filtered by
// actor and action.
func (r *ElasticsearchRepository) Query(ctx context.Context, from, to time.Time, actorID, action string) ([]AuditLog, error) {
	must := []any{
		map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}
	if actorID != "" {
		must = append(must, map[string]any{"match": map[string]any{"actor_id": actorID}})
	}
	if action != "" {
		must = append(must, map[string]any{"match": map[string]any{"action": action}})
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{"must": must},
		},
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(indexName),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching audit entries: %s", res.String())
	}

	var rmap map[string]any
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return nil, err
	}

	hits, ok := rmap["hits"].(map[string]any)["hits"].([]any)
	if !ok {
		return nil, nil
	}
	entries := make([]AuditLog, len(hits))
	for i, hit := range hits {
		source := hit.(map[string]any)["_source"]
		data, _ := json.Marshal(source)
		json.Unmarshal(data, &entries[i])
	}
	return entries, nil
}
