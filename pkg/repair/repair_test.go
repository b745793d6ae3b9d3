// pkg/repair/repair_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (collaborators stubbed)
// PURPOSE: Test the pass orchestration state machine

package repair_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/springclean/pkg/layout"
	"github.com/arthur-debert/springclean/pkg/repair"
)

func dirtyDocument() *layout.Document {
	return &layout.Document{
		Dock: layout.PageList{layout.Icon{ID: "A"}},
		Pages: []layout.PageList{
			{layout.Icon{ID: "A"}, layout.Icon{ID: "B"}},
		},
	}
}

func cleanDocument() *layout.Document {
	return &layout.Document{
		Dock:  layout.PageList{layout.Icon{ID: "A"}},
		Pages: []layout.PageList{{layout.Icon{ID: "B"}}},
	}
}

func TestRun_RepairsAndNotifies(t *testing.T) {
	var persisted *layout.Document
	notified := false
	resetCalled := false

	result, err := repair.Run(repair.Options{
		Load:    func() (*layout.Document, error) { return dirtyDocument(), nil },
		Persist: func(doc *layout.Document) error { persisted = doc; return nil },
		Notify:  func() error { notified = true; return nil },
		Reset:   func() error { resetCalled = true; return nil },
	})

	require.NoError(t, err)
	assert.Equal(t, repair.OutcomeRepaired, result.Outcome)
	assert.True(t, notified)
	assert.False(t, resetCalled, "reset must not run when duplicates were repaired")
	assert.Equal(t, map[string]int{"A": 2}, result.Duplicates)

	require.NotNil(t, persisted)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, persisted.IconCounts())
}

func TestRun_CleanDocumentTakesFallback(t *testing.T) {
	persistCalled := false
	resetCalled := false

	result, err := repair.Run(repair.Options{
		Load:    func() (*layout.Document, error) { return cleanDocument(), nil },
		Persist: func(*layout.Document) error { persistCalled = true; return nil },
		Reset:   func() error { resetCalled = true; return nil },
	})

	require.NoError(t, err)
	assert.Equal(t, repair.OutcomeFallback, result.Outcome)
	assert.False(t, persistCalled, "clean documents are never persisted")
	assert.True(t, resetCalled)
	assert.Empty(t, result.Duplicates)
}

func TestRun_UnreadableDocumentTakesFallback(t *testing.T) {
	loadErr := stderrors.New("corrupt plist")
	resetCalled := false

	result, err := repair.Run(repair.Options{
		Load:  func() (*layout.Document, error) { return nil, loadErr },
		Reset: func() error { resetCalled = true; return nil },
	})

	require.NoError(t, err, "load failures are not pass errors")
	assert.Equal(t, repair.OutcomeUnreadable, result.Outcome)
	assert.Equal(t, loadErr, result.LoadError)
	assert.True(t, resetCalled)
	assert.Nil(t, result.Document)
}

func TestRun_PersistFailureIsAnError(t *testing.T) {
	_, err := repair.Run(repair.Options{
		Load:    func() (*layout.Document, error) { return dirtyDocument(), nil },
		Persist: func(*layout.Document) error { return stderrors.New("disk full") },
	})

	assert.Error(t, err)
}

func TestRun_NotifyFailureDoesNotChangeOutcome(t *testing.T) {
	result, err := repair.Run(repair.Options{
		Load:    func() (*layout.Document, error) { return dirtyDocument(), nil },
		Persist: func(*layout.Document) error { return nil },
		Notify:  func() error { return stderrors.New("presentation layer gone") },
	})

	require.NoError(t, err)
	assert.Equal(t, repair.OutcomeRepaired, result.Outcome)
}

func TestRun_OptionalCollaboratorsMayBeNil(t *testing.T) {
	result, err := repair.Run(repair.Options{
		Load: func() (*layout.Document, error) { return cleanDocument(), nil },
	})

	require.NoError(t, err)
	assert.Equal(t, repair.OutcomeFallback, result.Outcome)
}

func TestRun_RequiresLoad(t *testing.T) {
	_, err := repair.Run(repair.Options{})
	assert.Error(t, err)
}

func TestRun_DoesNotMutateLoadedDocument(t *testing.T) {
	doc := dirtyDocument()
	before := doc.Clone()

	_, err := repair.Run(repair.Options{
		Load:    func() (*layout.Document, error) { return doc, nil },
		Persist: func(*layout.Document) error { return nil },
	})

	require.NoError(t, err)
	assert.True(t, layout.Equal(before, doc))
}
