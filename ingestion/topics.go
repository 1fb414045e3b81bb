package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/models"
)

type TopicLink struct {
	TopicID   int
	Name      string
	IsPrimary bool
	Created   bool
}

// ReconcileTopics finds or creates a topic for every proposed name, in order.
// The first linked topic is primary, so blank or non-string entries ahead of it
// do not leave the project without one. A topic that resolves to an already
// linked row is skipped. Any store error is returned as is so the caller can
// abort its transaction.
func ReconcileTopics(ctx context.Context, store TopicStore, raw []any, userID uuid.UUID, now time.Time) ([]TopicLink, error) {
	var (
		links  []TopicLink
		linked = make(map[int]struct{}, len(raw))
	)

	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}

		topic, err := store.FindTopicByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("find topic %q: %w", name, err)
		}

		created := false
		if topic == nil {
			createdBy := userID
			topic = &models.Topic{
				Name:         name,
				IsPredefined: false,
				CreatedBy:    &createdBy,
				CreatedAt:    now,
			}
			if err := store.CreateTopic(ctx, topic); err != nil {
				return nil, fmt.Errorf("create topic %q: %w", name, err)
			}
			created = true
		}

		if _, dup := linked[topic.ID]; dup {
			continue
		}
		linked[topic.ID] = struct{}{}

		links = append(links, TopicLink{
			TopicID:   topic.ID,
			Name:      topic.Name,
			IsPrimary: len(links) == 0,
			Created:   created,
		})
	}
	return links, nil
}
