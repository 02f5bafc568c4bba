// Package taskservice tracks per-project work items. Each project owns its
// own ordered set of task statuses; tasks reference a status and optionally
// an assignee and a due date, and carry an append-only trail of progress
// notes.
package taskservice
