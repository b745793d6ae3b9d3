// Package repair sequences one full deduplication pass: load the
// layout, run the pass with a single shared registry (dock first,
// then pages), and either persist the corrected copy and notify the
// presentation layer, or defer to the host's original fallback when
// nothing was found or the document could not be read.
//
// The collaborators are injected so the package stays a pure driver:
// the CLI wires them to the store, a notify hook, and whatever the
// fallback should be in its context.
package repair

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/springclean/pkg/dedupe"
	"github.com/arthur-debert/springclean/pkg/errors"
	"github.com/arthur-debert/springclean/pkg/layout"
	"github.com/arthur-debert/springclean/pkg/logging"
)

// Outcome says which terminal branch of the pass was taken.
type Outcome string

const (
	// OutcomeRepaired means duplicates were found, the corrected
	// document was persisted, and the notify hook ran.
	OutcomeRepaired Outcome = "repaired"

	// OutcomeFallback means the document was clean; the corrected
	// copy was discarded and the original fallback behavior ran.
	OutcomeFallback Outcome = "fallback"

	// OutcomeUnreadable means the document could not be loaded; the
	// pass was skipped and the fallback behavior ran.
	OutcomeUnreadable Outcome = "unreadable"
)

// Options carries the injected collaborators for one pass.
type Options struct {
	// Load retrieves the current layout document.
	Load func() (*layout.Document, error)

	// Persist writes the corrected document to storage.
	Persist func(*layout.Document) error

	// Notify tells the presentation layer the persisted layout
	// changed out-of-band. Optional.
	Notify func() error

	// Reset is the pre-existing fallback behavior, invoked when no
	// duplicates are found or the document cannot be loaded. Optional.
	Reset func() error
}

// Result reports what one pass did.
type Result struct {
	Outcome Outcome

	// Document is the corrected layout; nil when the source was
	// unreadable.
	Document *layout.Document

	// Duplicates maps each duplicated identifier to its occurrence
	// count in the input document.
	Duplicates map[string]int

	// LoadError holds the load failure when Outcome is
	// OutcomeUnreadable.
	LoadError error
}

// Run executes one pass. Persist failures are returned as errors;
// notify and reset failures are logged but do not change the outcome,
// since the pass neither retries nor rolls back.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("repair")

	if opts.Load == nil {
		return nil, errors.New(errors.ErrInvalidInput, "repair requires a Load collaborator")
	}

	doc, err := opts.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Layout unreadable, deferring to fallback")
		runReset(opts, logger)
		return &Result{Outcome: OutcomeUnreadable, LoadError: err}, nil
	}
	logger.Debug().Msg("Layout loaded")

	duplicates := dedupe.Duplicates(doc)
	corrected, found := dedupe.Document(doc)
	logger.Debug().Bool("found", found).Int("duplicateIdentifiers", len(duplicates)).
		Msg("Pass complete")

	if !found {
		logger.Info().Msg("No duplicate icons found, deferring to fallback")
		runReset(opts, logger)
		return &Result{
			Outcome:    OutcomeFallback,
			Document:   corrected,
			Duplicates: duplicates,
		}, nil
	}

	if opts.Persist == nil {
		return nil, errors.New(errors.ErrInvalidInput, "duplicates found but no Persist collaborator")
	}
	if err := opts.Persist(corrected); err != nil {
		return nil, errors.Wrap(err, errors.ErrLayoutWrite, "failed to persist corrected layout")
	}
	logger.Info().Int("duplicateIdentifiers", len(duplicates)).Msg("Corrected layout persisted")

	if opts.Notify != nil {
		if err := opts.Notify(); err != nil {
			logger.Warn().Err(err).Msg("Relayout notification failed")
		}
	}

	return &Result{
		Outcome:    OutcomeRepaired,
		Document:   corrected,
		Duplicates: duplicates,
	}, nil
}

func runReset(opts Options, logger zerolog.Logger) {
	if opts.Reset == nil {
		return
	}
	if err := opts.Reset(); err != nil {
		logger.Warn().Err(err).Msg("Fallback reset failed")
	}
}
