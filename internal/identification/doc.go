// Package identification defines the boundary between the Pokedex and the
// external generative-text service that interprets user text. It declares
// the Identifier interface, the data-level response schema the service must
// follow, the fixed failure record, and the diagnostic error taxonomy.
//
// Implementations (see internal/platform/gemini) never surface errors to
// callers: every call resolves to a domain.IdentificationResult, and
// transport or parsing faults collapse into Failure().
package identification
