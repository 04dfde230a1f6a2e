/*
Package csvparse turns a work-item CSV export into a ticket list.

# Parsing

ParseTickets accepts the raw text of a Jira-style export and returns the
(key, summary) pairs in file order:

	tickets, err := csvparse.ParseTickets(content)

The key column may be named "Issue key", "Key", "Issue Key", or "key"; the
summary column "Summary", "Title", "summary", or "title". Values are
trimmed and rows missing either field are skipped.

# Validation

Validate produces a user-facing error for empty input or input that yields
no tickets, suitable for rendering directly in the submission modal.
*/
package csvparse
