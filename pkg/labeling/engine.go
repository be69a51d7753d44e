package labeling

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/llm"
	"github.com/mailscope/mailscope/pkg/vector"
)

// BulkPhaseName is recorded in pipeline_kv while cluster labeling runs.
const BulkPhaseName = "phase2_clustering_labeling"

const (
	domainCandidateLimit = 2000
	vectorFallbackLimit  = 200
	clusterSizeCap       = 500
	// jaccardThreshold is intentionally permissive: sender domain is
	// already a strong constraint, and larger coherent clusters beat
	// one-email clusters when subjects are clearly related.
	jaccardThreshold   = 0.20
	maxSubjectExamples = 5
)

// TaxonomyStore is the taxonomy surface the labeling pipelines need.
// Implemented by taxonomy.Service.
type TaxonomyStore interface {
	EnsureSeeded(ctx context.Context) error
	EnsureTier2(ctx context.Context, categoryName, subcategoryName string) error
	ListTier2Options(ctx context.Context) (map[string][]string, error)
	AssignMessageLabel(ctx context.Context, messageID, category, subcategory string, confidence *float64) error
}

// ClusterID returns the deterministic cluster id for a seed message under
// the given configuration. Stable across restarts, and shared between bulk
// and per-message labeling so the two modes converge on the same clusters.
func ClusterID(seedMessageID string, similarityThreshold float64, labelVersion string) string {
	name := fmt.Sprintf("cluster:%s:%g:%s", seedMessageID, similarityThreshold, labelVersion)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// SampleCount returns how many representative bodies to fetch for a
// cluster of the given size.
func SampleCount(clusterSize int) int {
	switch {
	case clusterSize > 50:
		return 4
	case clusterSize >= 10:
		return 3
	case clusterSize >= 5:
		return 2
	default:
		return 1
	}
}

// clusterRNG derives a deterministic RNG from the cluster id, so the same
// cluster always samples the same representative bodies.
func clusterRNG(clusterID string) *rand.Rand {
	u, err := uuid.Parse(clusterID)
	if err != nil {
		return rand.New(rand.NewSource(0))
	}
	seed := binary.BigEndian.Uint32(u[12:16])
	return rand.New(rand.NewSource(int64(seed)))
}

// EngineConfig holds the labeling pipeline settings.
type EngineConfig struct {
	SimilarityThreshold float64
	LabelVersion        string
	EmbeddingModel      string
	EmbeddingDim        int
}

// Engine runs the cluster labeling pipeline (and its per-message variant,
// see RunIncremental).
type Engine struct {
	store    *Store
	taxonomy TaxonomyStore
	provider *gmail.Client
	labeler  *Labeler
	llm      *llm.Client
	index    *vector.Index
	cfg      EngineConfig
	setPhase func(ctx context.Context, phase string) error
}

// NewEngine wires a labeling engine from its collaborators. setPhase
// records the active pipeline phase (checkpoint.Store.SetCurrentPhase).
func NewEngine(store *Store, taxo TaxonomyStore, provider *gmail.Client, labeler *Labeler, llmClient *llm.Client, index *vector.Index, setPhase func(ctx context.Context, phase string) error, cfg EngineConfig) *Engine {
	return &Engine{
		store:    store,
		taxonomy: taxo,
		provider: provider,
		labeler:  labeler,
		llm:      llmClient,
		index:    index,
		cfg:      cfg,
		setPhase: setPhase,
	}
}

// ClusterProgress is reported to the optional progress callback.
type ClusterProgress struct {
	ClustersDone  int
	EmailsLabeled int
	Message       string
}

// ClusterOptions tunes a bulk run.
type ClusterOptions struct {
	// MaxClusters caps how many clusters are processed; 0 means run until
	// every message is labelled.
	MaxClusters int
	OnProgress  func(ClusterProgress)
}

// ClusterSummary is the outcome of a bulk run.
type ClusterSummary struct {
	ClustersDone  int
	EmailsLabeled int
}

// RunClusters iteratively clusters and labels all unlabelled messages.
//
// Each iteration picks the oldest unlabelled message as a seed, gathers
// candidates from the same sender domain with overlapping subject tokens,
// falls back to vector similarity when that yields only the seed, samples
// representative bodies, and labels the whole cluster with one model call.
// Already-labelled messages are never relabelled, so reruns are safe.
func (e *Engine) RunClusters(ctx context.Context, opts ClusterOptions) (ClusterSummary, error) {
	if err := e.taxonomy.EnsureSeeded(ctx); err != nil {
		return ClusterSummary{}, err
	}
	if err := e.setPhase(ctx, BulkPhaseName); err != nil {
		return ClusterSummary{}, err
	}

	var sum ClusterSummary
	report := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ClusterProgress{
				ClustersDone:  sum.ClustersDone,
				EmailsLabeled: sum.EmailsLabeled,
				Message:       msg,
			})
		}
	}
	report("Starting")

	for {
		if opts.MaxClusters > 0 && sum.ClustersDone >= opts.MaxClusters {
			break
		}
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}

		seed, err := e.store.NextUnlabelled(ctx, time.Time{}, nil)
		if err != nil {
			return sum, err
		}
		if seed == nil {
			break
		}

		updated, err := e.labelOneCluster(ctx, seed)
		if err != nil {
			return sum, err
		}

		sum.ClustersDone++
		sum.EmailsLabeled += updated
		report(fmt.Sprintf("Labelled cluster %d (%d emails)", sum.ClustersDone, updated))

		if sum.ClustersDone%20 == 0 {
			slog.Info("Cluster labeling progress",
				"clusters_done", sum.ClustersDone,
				"emails_labeled", sum.EmailsLabeled)
		}
	}

	slog.Info("Cluster labeling done",
		"clusters_done", sum.ClustersDone,
		"emails_labeled", sum.EmailsLabeled)
	return sum, nil
}

func (e *Engine) labelOneCluster(ctx context.Context, seed *ent.EmailMessage) (int, error) {
	clusterID := ClusterID(seed.ID, e.cfg.SimilarityThreshold, e.cfg.LabelVersion)

	members, err := e.gatherCluster(ctx, seed)
	if err != nil {
		return 0, err
	}

	// Deterministic ordering for repeatability, then a safety cap for
	// very large sender domains.
	sort.Slice(members, func(i, j int) bool {
		di, dj := internalDateOf(members[i]), internalDateOf(members[j])
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return members[i].ID < members[j].ID
	})
	if len(members) > clusterSizeCap {
		members = members[:clusterSizeCap]
	}

	displayName := subjectOf(seed)
	if displayName == "" {
		displayName = fmt.Sprintf("Cluster %s", clusterID[:8])
	}
	clusterID, err = e.store.InsertCluster(ctx, clusterID, seed, e.cfg.SimilarityThreshold, displayName)
	if err != nil {
		return 0, err
	}

	bodies := e.sampleBodies(ctx, clusterID, members)

	dates := make([]time.Time, 0, len(members))
	flags := make([]bool, 0, len(members))
	for _, m := range members {
		dates = append(dates, internalDateOf(m))
		flags = append(flags, m.IsUnread)
	}
	freq := FrequencyLabel(dates)
	unread := UnreadRatioLabel(flags)
	if err := e.store.UpdateClusterAnalysis(ctx, clusterID, freq, unread); err != nil {
		return 0, err
	}

	var subjects []string
	seen := map[string]struct{}{}
	for _, m := range members {
		s := derefString(m.SubjectNormalized)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		subjects = append(subjects, s)
		seen[s] = struct{}{}
		if len(subjects) >= maxSubjectExamples {
			break
		}
	}

	// Re-fetch Tier-2 options each iteration so the prompt always sees
	// subcategories added earlier in the run.
	tier2, err := e.taxonomy.ListTier2Options(ctx)
	if err != nil {
		return 0, err
	}

	result, err := e.labeler.Label(ctx, PromptInput{
		SenderDomain:    derefString(seed.FromDomain),
		SubjectExamples: subjects,
		ClusterSize:     len(members),
		FrequencyLabel:  freq,
		UnreadLabel:     unread,
		Bodies:          bodies,
		Tier2Options:    tier2,
	})
	if err != nil {
		return 0, err
	}

	if err := e.persistTier2(ctx, result, tier2); err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	updated, err := e.store.LabelMessages(ctx, ids, clusterID, result.Category, result.Subcategory, e.cfg.LabelVersion)
	if err != nil {
		return 0, err
	}

	// Record the assignment (and enqueue the provider push) per message.
	for _, id := range ids {
		if err := e.taxonomy.AssignMessageLabel(ctx, id, result.Category, result.Subcategory, nil); err != nil {
			return updated, err
		}
	}

	if err := e.store.UpdateClusterLabel(ctx, clusterID, result.Category, result.Subcategory, e.cfg.LabelVersion); err != nil {
		return updated, err
	}
	return updated, nil
}

// gatherCluster collects unlabelled candidates for a seed: same sender
// domain with subject-token overlap first, vector similarity as a fallback
// when that produces only the seed.
func (e *Engine) gatherCluster(ctx context.Context, seed *ent.EmailMessage) ([]*ent.EmailMessage, error) {
	members := []*ent.EmailMessage{seed}
	seen := map[string]struct{}{seed.ID: {}}

	seedTokens := TokenizeSubject(subjectOf(seed))
	if len(seedTokens) > 0 && seed.FromDomain != nil {
		candidates, err := e.store.UnlabelledByDomain(ctx, *seed.FromDomain, domainCandidateLimit)
		if err != nil {
			return nil, err
		}
		for _, c := range candidates {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			tokens := TokenizeSubject(subjectOf(c))
			if len(tokens) == 0 {
				continue
			}
			if Jaccard(seedTokens, tokens) >= jaccardThreshold {
				members = append(members, c)
				seen[c.ID] = struct{}{}
			}
		}
	}

	if len(members) > 1 {
		return members, nil
	}

	// Use the stored vector instead of recomputing the embedding; it is
	// only missing for messages ingested before the vector backfill.
	vec, err := e.index.Vector(ctx, seed.ID)
	if err != nil {
		return nil, err
	}
	if vec == nil {
		text := vector.EmbeddingText(derefString(seed.SubjectNormalized), derefString(seed.FromDomain), seed.IsUnread)
		vec, err = e.llm.Embed(ctx, e.cfg.EmbeddingModel, text, e.cfg.EmbeddingDim)
		if err != nil {
			return nil, fmt.Errorf("embedding failed for seed %s: %w", seed.ID, err)
		}
	}

	neighbors, err := e.index.QuerySimilar(ctx, vec, derefString(seed.FromDomain), vectorFallbackLimit, e.cfg.SimilarityThreshold)
	if err != nil {
		return nil, err
	}

	candidateIDs := []string{seed.ID}
	for _, n := range neighbors {
		if _, ok := seen[n.MessageID]; ok {
			continue
		}
		candidateIDs = append(candidateIDs, n.MessageID)
		seen[n.MessageID] = struct{}{}
	}

	rows, err := e.store.ByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*ent.EmailMessage, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	members = members[:0]
	for _, id := range candidateIDs {
		m, ok := byID[id]
		if !ok {
			continue
		}
		// Neighbours labelled by an earlier run stay untouched.
		if m.ID != seed.ID && m.Category != nil {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

// sampleBodies fetches representative bodies for a cluster. Provider
// failures are logged and tolerated; the labeler copes with fewer bodies.
func (e *Engine) sampleBodies(ctx context.Context, clusterID string, members []*ent.EmailMessage) []string {
	n := SampleCount(len(members))
	if n > len(members) {
		n = len(members)
	}
	rng := clusterRNG(clusterID)
	perm := rng.Perm(len(members))

	var bodies []string
	for _, idx := range perm[:n] {
		id := members[idx].ID
		body, err := e.provider.GetMessageBody(ctx, id, gmail.DefaultBodyMaxChars)
		if err != nil {
			slog.Warn("Body fetch failed for cluster sample",
				"message_id", id,
				"cluster_id", clusterID,
				"error", err)
			continue
		}
		bodies = append(bodies, body)
	}
	return bodies
}

// persistTier2 stores a model-proposed subcategory so future prompts
// include it. Known subcategories are left alone.
func (e *Engine) persistTier2(ctx context.Context, result LabelResult, tier2 map[string][]string) error {
	if result.Subcategory == "" {
		return nil
	}
	for _, s := range tier2[result.Category] {
		if s == result.Subcategory {
			return nil
		}
	}
	return e.taxonomy.EnsureTier2(ctx, result.Category, result.Subcategory)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func subjectOf(m *ent.EmailMessage) string {
	if s := derefString(m.SubjectNormalized); s != "" {
		return s
	}
	return derefString(m.Subject)
}

func internalDateOf(m *ent.EmailMessage) time.Time {
	if m.InternalDate == nil {
		return time.Time{}
	}
	return *m.InternalDate
}
