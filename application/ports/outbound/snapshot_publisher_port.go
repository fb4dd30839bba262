package outbound

import "generate-storyboard-api/domain"

type SnapshotPublisherPort interface {
	Publish(snapshot domain.StoryboardSnapshot)
}
