package vector

import (
	"fmt"
	"strconv"
)

// EmbeddingText builds the canonical embedding input for a message.
//
// The format is a contract between ingestion and cluster seeding: the same
// message must always embed to the same text. Changing it requires bumping
// the vector version so stale points are filtered out of similarity queries.
func EmbeddingText(subjectNormalized, fromDomain string, isUnread bool) string {
	return fmt.Sprintf("subject: %s\nfrom_domain: %s\nis_unread: %s",
		subjectNormalized, fromDomain, strconv.FormatBool(isUnread))
}
