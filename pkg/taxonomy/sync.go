package taxonomy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/pkg/gmail"
)

// Provider label names tried for the archive marker, in order. Gmail
// rejects the bare names "Archive" and "Archived" ("Invalid label name"),
// but if an account somehow already has one we use it as-is.
var archiveLabelCandidates = []string{
	"Email Archive",
	"Email-Archive",
	"Archive (marker)",
}

// SyncResult summarizes a provider label sync pass.
type SyncResult struct {
	Created int
	Renamed int
	Failed  int
}

// SyncProviderLabels ensures every active taxonomy label has a matching
// provider label and records the mapping. Existing provider labels are
// matched by name; drift in the stored id is repaired by re-matching.
func (s *Service) SyncProviderLabels(ctx context.Context, client *gmail.Client) (SyncResult, error) {
	var res SyncResult

	providerLabels, err := client.ListLabels(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list provider labels: %w", err)
	}
	byName := map[string]gmail.Label{}
	byID := map[string]gmail.Label{}
	for _, l := range providerLabels {
		byName[l.Name] = l
		byID[l.ID] = l
	}

	labels, err := s.ListLabels(ctx, false)
	if err != nil {
		return res, err
	}
	parents := map[int]*ent.TaxonomyLabel{}
	for _, l := range labels {
		if l.Level == 1 {
			parents[l.ID] = l
		}
	}

	for _, label := range labels {
		var parent *ent.TaxonomyLabel
		if label.ParentID != nil {
			parent = parents[*label.ParentID]
		}
		wantName := ProviderLabelName(label, parent)

		err := s.syncOneLabel(ctx, client, label, wantName, byName, byID, &res)
		if err != nil {
			res.Failed++
			slog.Warn("Provider label sync failed",
				"label_id", label.ID,
				"name", wantName,
				"error", err)
			s.recordSync(ctx, label.ID, nil, fmt.Sprintf("error: %v", err))
		}
	}
	return res, nil
}

func (s *Service) syncOneLabel(ctx context.Context, client *gmail.Client, label *ent.TaxonomyLabel, wantName string, byName, byID map[string]gmail.Label, res *SyncResult) error {
	// Already mapped and the provider label still exists with the right name.
	if label.GmailLabelID != nil {
		if existing, ok := byID[*label.GmailLabelID]; ok {
			if existing.Name == wantName {
				s.recordSync(ctx, label.ID, label.GmailLabelID, "ok")
				return nil
			}
			if _, err := client.UpdateLabel(ctx, existing.ID, wantName); err != nil {
				return err
			}
			res.Renamed++
			s.recordSync(ctx, label.ID, &existing.ID, "ok")
			return nil
		}
	}

	// Match by name (covers labels created out of band).
	if existing, ok := byName[wantName]; ok {
		s.recordSync(ctx, label.ID, &existing.ID, "ok")
		return nil
	}

	created, err := client.CreateLabel(ctx, wantName)
	if err != nil {
		return err
	}
	byName[wantName] = *created
	byID[created.ID] = *created
	res.Created++
	s.recordSync(ctx, label.ID, &created.ID, "ok")
	return nil
}

func (s *Service) recordSync(ctx context.Context, labelID int, gmailLabelID *string, status string) {
	if len(status) > 200 {
		status = status[:200]
	}
	q := s.db.TaxonomyLabel.UpdateOneID(labelID).
		SetLastSyncAt(time.Now().UTC()).
		SetLastSyncStatus(status)
	if gmailLabelID != nil {
		q = q.SetGmailLabelID(*gmailLabelID)
	}
	if err := q.Exec(ctx); err != nil {
		slog.Warn("Failed to record label sync state", "label_id", labelID, "error", err)
	}
}

// EnsureArchiveLabel returns the provider label id of the archive marker,
// creating it if needed. preferred is tried first when non-empty, then the
// standard candidates.
func EnsureArchiveLabel(ctx context.Context, client *gmail.Client, preferred string) (string, error) {
	labels, err := client.ListLabels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list provider labels: %w", err)
	}
	byName := map[string]string{}
	for _, l := range labels {
		byName[l.Name] = l.ID
	}

	candidates := archiveLabelCandidates
	if preferred != "" {
		candidates = append([]string{preferred}, archiveLabelCandidates...)
	}

	for _, name := range candidates {
		if id, ok := byName[name]; ok {
			return id, nil
		}
	}

	var lastErr error
	for _, name := range candidates {
		if name == "Archive" || name == "Archived" {
			// Provider-reserved names; creation always fails.
			continue
		}
		created, err := client.CreateLabel(ctx, name)
		if err != nil {
			lastErr = err
			continue
		}
		return created.ID, nil
	}
	return "", fmt.Errorf("failed to create archive marker label: %w", lastErr)
}
