// Package llms provides provider neutral tool definitions that can be
// handed to any supported LLM provider.
//
// Subpackages convert the neutral definitions into the request types of
// the provider SDKs.
package llms
