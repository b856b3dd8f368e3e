// Package confidx provides a local, CLI-based search tool for conference
// schedules. It crawls the schedule site, extracts structured event and
// speaker records, indexes them for full-text search, and provides CLI
// commands for browsing and querying the indexed content offline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package confidx
