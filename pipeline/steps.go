package pipeline

import (
	"context"
	"time"
)

// SearchLaunches asks the research agent for recent relevant launches.
func SearchLaunches(ctx context.Context, inv Invoker, topic string, date time.Time, links []string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StageSearch), SearchPrompt(topic, date, links))
}

// PlanPost turns the launches into a post plan.
func PlanPost(ctx context.Context, inv Invoker, topic, launches string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StagePlan), PlanPrompt(topic, launches))
}

// DraftPost writes a draft from the plan.
func DraftPost(ctx context.Context, inv Invoker, topic, plan string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StageDraft), DraftPrompt(topic, plan))
}

// FindImages looks for images that illustrate the draft.
func FindImages(ctx context.Context, inv Invoker, topic, draft string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StageImages), ImagesPrompt(topic, draft))
}

// ReviewDraft critiques the draft for quality and SEO.
func ReviewDraft(ctx context.Context, inv Invoker, topic, draft string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StageReview), ReviewPrompt(topic, draft))
}

// FormatPost embeds the images into the draft and returns the final Markdown.
func FormatPost(ctx context.Context, inv Invoker, draft, images string) (string, error) {
	return inv.Invoke(ctx, SpecFor(StageFormat), FormatPrompt(draft, images))
}
