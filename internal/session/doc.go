// Package session holds in-memory Pokedex conversations.
//
// A Conversation is the transcript a front-end shows: alternating user and
// bot messages, the most recent successful identification ("current") and a
// busy flag while a scan is in flight. The Store keeps conversations by ID
// and the Service runs the submit flow against an identification.Identifier.
//
// Nothing here is persisted; restarting the process drops every conversation.
package session
