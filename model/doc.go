// Package model defines the provider-agnostic abstractions for interacting
// with language models inside blogmesh.
//
// Core goals:
//   - Unify streaming + non-streaming generation behind a single interface
//   - Describe server-side capabilities (web search) independently of vendor SDKs
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (Gemini, OpenAI, Anthropic) implement the Model interface from
// this package so agents and flows remain decoupled from vendor SDKs.
package model
