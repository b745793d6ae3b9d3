package main

// User-facing command descriptions, kept together so wording stays
// consistent across help output and the man page.
const (
	MsgRootShort = "Repair duplicate icons in a home-screen layout"
	MsgRootLong  = `springclean detects icon identifiers that appear more than once in an
icon layout document (dock, pages, and nested folders) and removes
every occurrence after the first, keeping order and folder structure
intact. The corrected layout is written back atomically, with a backup.`

	MsgCheckShort = "Report duplicate icons without modifying the layout"
	MsgCheckLong  = `Check loads the layout document and reports every icon identifier that
occurs more than once anywhere in it: the dock, any page, or any page
nested inside a folder. The document is never modified.

The exit status is 1 when duplicates exist, so scripts can branch on it.`

	MsgDedupeShort = "Remove duplicate icons and persist the corrected layout"
	MsgDedupeLong  = `Dedupe runs one full deduplication pass over the layout document. The
dock is processed first, then the pages, sharing a single registry of
seen identifiers, so a dock occurrence wins the tie against the same
identifier appearing later in the pages.

When duplicates are found the corrected document is backed up and then
written back atomically, and the configured notify command runs so the
presentation layer reloads the layout. When the document is already
clean nothing is written; with --reset the layout file is deleted
instead, mirroring the host's original treat-as-corrupt behavior.`

	MsgGenconfigShort = "Print the springclean configuration file"
	MsgGenconfigLong  = `Genconfig prints the annotated default configuration to stdout. With
--effective it prints the currently effective configuration instead,
after applying the user config file and environment overrides.`

	MsgDocsShort = "Show documentation topics"
	MsgDocsLong  = `Docs renders springclean's built-in documentation topics. Run without
arguments to list the available topics.`
)
