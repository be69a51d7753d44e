// Package vector maintains the Qdrant collection of email subject
// embeddings used for cluster seeding.
//
// Point ids are name-based UUIDs of the provider message id, so re-ingesting
// a message overwrites its point instead of duplicating it. Every payload
// carries a vector_version tag; queries filter on it, which makes embedding
// model upgrades safe without dropping the collection.
package vector

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// Payload keys on every point.
const (
	payloadMessageID     = "gmail_message_id"
	payloadFromDomain    = "from_domain"
	payloadSubject       = "subject_normalized"
	payloadIsUnread      = "is_unread"
	payloadVectorVersion = "vector_version"
)

// Point is the indexed view of a message.
type Point struct {
	MessageID         string
	FromDomain        string
	SubjectNormalized string
	IsUnread          bool
}

// Neighbor is a similarity query hit.
type Neighbor struct {
	MessageID string
	Score     float32
}

// Index wraps a Qdrant collection.
type Index struct {
	client     *qdrant.Client
	collection string
	dim        int
	version    string
}

// Config holds Qdrant connection settings.
type Config struct {
	Host       string
	Port       int
	UseTLS     bool
	Collection string
	Dim        int
	Version    string
}

// NewIndex connects to Qdrant. Call EnsureCollection before first use.
func NewIndex(cfg Config) (*Index, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}
	return &Index{
		client:     client,
		collection: cfg.Collection,
		dim:        cfg.Dim,
		version:    cfg.Version,
	}, nil
}

// Close releases the underlying gRPC connection.
func (i *Index) Close() error {
	return i.client.Close()
}

// EnsureCollection creates the collection if it does not exist.
func (i *Index) EnsureCollection(ctx context.Context) error {
	exists, err := i.client.CollectionExists(ctx, i.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %q: %w", i.collection, err)
	}
	if exists {
		return nil
	}
	err = i.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: i.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(i.dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %q: %w", i.collection, err)
	}
	return nil
}

// PointID returns the deterministic point id for a message.
func PointID(messageID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(messageID)).String()
}

// Upsert writes (or overwrites) the point for a message.
func (i *Index) Upsert(ctx context.Context, p Point, vec []float32) error {
	if i.dim > 0 && len(vec) != i.dim {
		return fmt.Errorf("vector for %s has dimension %d, collection expects %d", p.MessageID, len(vec), i.dim)
	}
	_, err := i.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: i.collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(PointID(p.MessageID)),
				Vectors: qdrant.NewVectors(vec...),
				Payload: qdrant.NewValueMap(map[string]any{
					payloadMessageID:     p.MessageID,
					payloadFromDomain:    p.FromDomain,
					payloadSubject:       p.SubjectNormalized,
					payloadIsUnread:      p.IsUnread,
					payloadVectorVersion: i.version,
				}),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point for %s: %w", p.MessageID, err)
	}
	return nil
}

// Vector returns the stored embedding for a message, or nil when the
// point does not exist. Used for cluster seeding so seed vectors are not
// recomputed on every run.
func (i *Index) Vector(ctx context.Context, messageID string) ([]float32, error) {
	points, err := i.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: i.collection,
		Ids:            []*qdrant.PointId{qdrant.NewID(PointID(messageID))},
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch point for %s: %w", messageID, err)
	}
	if len(points) == 0 {
		return nil, nil
	}
	vec := points[0].GetVectors().GetVector().GetData()
	if len(vec) == 0 {
		return nil, nil
	}
	return vec, nil
}

// QuerySimilar returns the nearest neighbours of vec, restricted to the
// given sender domain (when non-empty) and the index's vector version.
func (i *Index) QuerySimilar(ctx context.Context, vec []float32, fromDomain string, limit int, scoreThreshold float64) ([]Neighbor, error) {
	must := []*qdrant.Condition{
		qdrant.NewMatch(payloadVectorVersion, i.version),
	}
	if fromDomain != "" {
		must = append(must, qdrant.NewMatch(payloadFromDomain, fromDomain))
	}

	query := &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQuery(vec...),
		Filter:         &qdrant.Filter{Must: must},
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if scoreThreshold > 0 {
		query.ScoreThreshold = qdrant.PtrOf(float32(scoreThreshold))
	}

	points, err := i.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("similarity query failed: %w", err)
	}

	out := make([]Neighbor, 0, len(points))
	for _, pt := range points {
		id := ""
		if v, ok := pt.Payload[payloadMessageID]; ok {
			id = v.GetStringValue()
		}
		if id == "" {
			continue
		}
		out = append(out, Neighbor{MessageID: id, Score: pt.Score})
	}
	return out, nil
}
