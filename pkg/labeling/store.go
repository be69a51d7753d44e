package labeling

import (
	"context"
	"fmt"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/pkg/database"
)

// Store holds the message and cluster queries the labeling pipelines use.
// Trashed messages are invisible to labeling throughout.
type Store struct {
	db *database.Client
}

// NewStore creates a labeling store.
func NewStore(db *database.Client) *Store {
	return &Store{db: db}
}

// NextUnlabelled returns the oldest unlabelled active message, or nil when
// everything is labelled. A non-zero since bounds the scan to messages
// received at or after it. Messages in exclude are skipped, which lets the
// incremental pipeline step past messages that keep failing.
func (s *Store) NextUnlabelled(ctx context.Context, since time.Time, exclude []string) (*ent.EmailMessage, error) {
	q := s.db.EmailMessage.Query().
		Where(
			emailmessage.CategoryIsNil(),
			emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
		)
	if !since.IsZero() {
		q = q.Where(emailmessage.InternalDateGTE(since))
	}
	if len(exclude) > 0 {
		q = q.Where(emailmessage.IDNotIn(exclude...))
	}
	msg, err := q.
		Order(ent.Asc(emailmessage.FieldInternalDate), ent.Asc(emailmessage.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch next unlabelled message: %w", err)
	}
	return msg, nil
}

// UnlabelledByDomain returns unlabelled active messages from one sender
// domain, oldest first. This is the cheap, deterministic candidate set for
// clustering.
func (s *Store) UnlabelledByDomain(ctx context.Context, fromDomain string, limit int) ([]*ent.EmailMessage, error) {
	msgs, err := s.db.EmailMessage.Query().
		Where(
			emailmessage.CategoryIsNil(),
			emailmessage.FromDomainEQ(fromDomain),
			emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
		).
		Order(ent.Asc(emailmessage.FieldInternalDate), ent.Asc(emailmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unlabelled messages for domain %s: %w", fromDomain, err)
	}
	return msgs, nil
}

// ByIDs fetches messages by provider id. Missing ids are silently absent
// from the result.
func (s *Store) ByIDs(ctx context.Context, ids []string) ([]*ent.EmailMessage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	msgs, err := s.db.EmailMessage.Query().
		Where(emailmessage.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages by id: %w", err)
	}
	return msgs, nil
}

// RecentDomainActivity returns receive times and unread flags for the most
// recent messages from a sender domain, oldest first. It provides cheap
// frequency/unread context for per-message labeling without fetching bodies.
func (s *Store) RecentDomainActivity(ctx context.Context, fromDomain string, limit int) ([]time.Time, []bool, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	msgs, err := s.db.EmailMessage.Query().
		Where(emailmessage.FromDomainEQ(fromDomain)).
		Order(ent.Desc(emailmessage.FieldInternalDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch domain activity for %s: %w", fromDomain, err)
	}

	dates := make([]time.Time, 0, len(msgs))
	unread := make([]bool, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].InternalDate == nil {
			continue
		}
		dates = append(dates, *msgs[i].InternalDate)
		unread = append(unread, msgs[i].IsUnread)
	}
	return dates, unread, nil
}

// InsertCluster persists a cluster identity keyed by its seed message.
// The insert is idempotent; the returned id is the cluster actually stored
// for that seed, which may differ from clusterID if the seed was clustered
// under an earlier configuration.
func (s *Store) InsertCluster(ctx context.Context, clusterID string, seed *ent.EmailMessage, similarityThreshold float64, displayName string) (string, error) {
	create := s.db.EmailCluster.Create().
		SetID(clusterID).
		SetSeedMessageID(seed.ID).
		SetSimilarityThreshold(similarityThreshold)
	if seed.FromDomain != nil {
		create.SetFromDomain(*seed.FromDomain)
	}
	if seed.SubjectNormalized != nil {
		create.SetSubjectNormalized(*seed.SubjectNormalized)
	}
	if displayName != "" {
		create.SetDisplayName(displayName)
	}
	err := create.
		OnConflictColumns(emailcluster.FieldSeedMessageID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to insert cluster %s: %w", clusterID, err)
	}

	stored, err := s.db.EmailCluster.Query().
		Where(emailcluster.SeedMessageIDEQ(seed.ID)).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read back cluster for seed %s: %w", seed.ID, err)
	}
	return stored.ID, nil
}

// UpdateClusterAnalysis records frequency and unread labels on a cluster.
func (s *Store) UpdateClusterAnalysis(ctx context.Context, clusterID, frequencyLabel, unreadLabel string) error {
	err := s.db.EmailCluster.UpdateOneID(clusterID).
		SetFrequencyLabel(frequencyLabel).
		SetUnreadLabel(unreadLabel).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update cluster analysis for %s: %w", clusterID, err)
	}
	return nil
}

// UpdateClusterLabel records the labeling outcome on a cluster.
func (s *Store) UpdateClusterLabel(ctx context.Context, clusterID, category, subcategory, labelVersion string) error {
	upd := s.db.EmailCluster.UpdateOneID(clusterID).
		SetCategory(category).
		SetLabelVersion(labelVersion)
	if subcategory != "" {
		upd.SetSubcategory(subcategory)
	} else {
		upd.ClearSubcategory()
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update cluster label for %s: %w", clusterID, err)
	}
	return nil
}

// LabelMessages writes the category onto messages that are still
// unlabelled and attaches them to the cluster. Already-labelled messages
// are never overwritten. Returns the number of rows updated.
func (s *Store) LabelMessages(ctx context.Context, ids []string, clusterID, category, subcategory, labelVersion string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	upd := s.db.EmailMessage.Update().
		Where(
			emailmessage.IDIn(ids...),
			emailmessage.CategoryIsNil(),
		).
		SetCategory(category).
		SetLabelVersion(labelVersion).
		SetClusterID(clusterID)
	if subcategory != "" {
		upd.SetSubcategory(subcategory)
	} else {
		upd.ClearSubcategory()
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to label messages in cluster %s: %w", clusterID, err)
	}
	return n, nil
}

// CountTotal counts active (non-trashed) messages.
func (s *Store) CountTotal(ctx context.Context) (int, error) {
	return s.db.EmailMessage.Query().
		Where(emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive)).
		Count(ctx)
}

// CountLabelled counts active messages with a category.
func (s *Store) CountLabelled(ctx context.Context) (int, error) {
	return s.db.EmailMessage.Query().
		Where(
			emailmessage.CategoryNotNil(),
			emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
		).
		Count(ctx)
}

// CountUnlabelled counts active messages without a category.
func (s *Store) CountUnlabelled(ctx context.Context) (int, error) {
	return s.db.EmailMessage.Query().
		Where(
			emailmessage.CategoryIsNil(),
			emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
		).
		Count(ctx)
}

// CountUnlabelledSince counts active unlabelled messages received at or
// after the given time. The maintenance pass uses it to choose between
// per-message and cluster labeling.
func (s *Store) CountUnlabelledSince(ctx context.Context, since time.Time) (int, error) {
	return s.db.EmailMessage.Query().
		Where(
			emailmessage.CategoryIsNil(),
			emailmessage.InternalDateGTE(since),
			emailmessage.LifecycleStateEQ(emailmessage.LifecycleStateActive),
		).
		Count(ctx)
}

// CountClusters counts clusters.
func (s *Store) CountClusters(ctx context.Context) (int, error) {
	return s.db.EmailCluster.Query().Count(ctx)
}

// LatestInternalDate returns the receive time of the newest message, or
// nil when the table is empty.
func (s *Store) LatestInternalDate(ctx context.Context) (*time.Time, error) {
	msg, err := s.db.EmailMessage.Query().
		Where(emailmessage.InternalDateNotNil()).
		Order(ent.Desc(emailmessage.FieldInternalDate)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest internal date: %w", err)
	}
	return msg.InternalDate, nil
}
