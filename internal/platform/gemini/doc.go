// Package gemini provides an implementation of the identification.Identifier
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the Pokedex to Google's external generative-text service. For
// every call it:
//
//  1. renders the task prompt from a text/template (an embedded default or a
//     configured file),
//  2. declares the reply shape by converting identification.ResultSchema into
//     a genai.Schema and requesting application/json output,
//  3. sends exactly one GenerateContent request under a bounded timeout,
//  4. validates the returned text against the same schema.
//
// Any failure along the way is logged with its category and replaced by
// identification.Failure(); callers never receive an error from Identify.
package gemini
