// Package pipeline implements the six-stage blog post workflow: search recent
// launches, plan, draft, find images, review and format. Each stage is a plain
// function that renders its prompt from earlier outputs and delegates the
// work to an Invoker; Pipeline.Run composes them strictly in order.
package pipeline
