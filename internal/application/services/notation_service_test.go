package services

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/stores"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotationRepo counts fetches so tests can assert cache behavior.
type fakeNotationRepo struct {
	refs       map[string]notation.NotationReference
	fetchCount int
	fetchErr   error
	storeErr   error
}

func (f *fakeNotationRepo) FetchGameNotation(gameID string) (notation.NotationReference, error) {
	f.fetchCount++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.refs[gameID], nil
}

func (f *fakeNotationRepo) StoreGameNotation(gameID string, ref notation.NotationReference) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	if f.refs == nil {
		f.refs = map[string]notation.NotationReference{}
	}
	f.refs[gameID] = ref
	return nil
}

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)
	return logger
}

func sampleReference() notation.NotationReference {
	return notation.NotationReference{
		"buttons": {
			{ID: "lp", Name: "Light Punch", Symbol: "LP"},
			{ID: "hp", Name: "Heavy Punch", Symbol: "HP"},
		},
	}
}

func newTestNotationService(t *testing.T, repo *fakeNotationRepo) *NotationService {
	t.Helper()
	return NewNotationService(repo, stores.NewContentStore(), testLogger(t))
}

func TestGetReferenceDataFetchesOncePerGame(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	first, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)
	second, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.fetchCount)
}

func TestGetReferenceDataEmptyGameID(t *testing.T) {
	svc := newTestNotationService(t, &fakeNotationRepo{})

	_, err := svc.GetReferenceData("")
	assert.Error(t, err)
}

func TestGetReferenceDataDoesNotCacheFailures(t *testing.T) {
	repo := &fakeNotationRepo{fetchErr: errors.New("db down")}
	svc := newTestNotationService(t, repo)

	_, err := svc.GetReferenceData("sf6")
	require.Error(t, err)

	// Repo recovers; the failure must not have been cached.
	repo.fetchErr = nil
	repo.refs = map[string]notation.NotationReference{"sf6": sampleReference()}

	ref, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)
	assert.Len(t, ref["buttons"], 2)
	assert.Equal(t, 2, repo.fetchCount)
}

func TestClearCacheForcesRefetch(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	_, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)

	svc.ClearCache("sf6")

	_, err = svc.GetReferenceData("sf6")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.fetchCount)
}

func TestClearCacheAllGames(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{
		"sf6": sampleReference(),
		"ggs": sampleReference(),
	}}
	svc := newTestNotationService(t, repo)

	_, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)
	_, err = svc.GetReferenceData("ggs")
	require.NoError(t, err)

	svc.ClearCache("")

	_, err = svc.GetReferenceData("sf6")
	require.NoError(t, err)
	_, err = svc.GetReferenceData("ggs")
	require.NoError(t, err)
	assert.Equal(t, 4, repo.fetchCount)
}

func TestExpandComboNotationResolves(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	items := []notation.ComboNotationItem{
		{CategoryID: "buttons", ElementID: "lp"},
		{CategoryID: "buttons", ElementID: "hp"},
	}

	expanded := svc.ExpandComboNotation("sf6", items)

	require.Len(t, expanded, 2)
	assert.Equal(t, "Light Punch", expanded[0].Name)
	assert.Equal(t, "Heavy Punch", expanded[1].Name)
}

func TestExpandComboNotationDegradesOnFetchFailure(t *testing.T) {
	repo := &fakeNotationRepo{fetchErr: errors.New("db down")}
	svc := newTestNotationService(t, repo)

	items := []notation.ComboNotationItem{
		{CategoryID: "buttons", ElementID: "lp"},
		{CategoryID: "motions", ElementID: "qcf"},
	}

	expanded := svc.ExpandComboNotation("sf6", items)

	require.Len(t, expanded, 2)
	assert.Equal(t, "lp", expanded[0].Name)
	assert.Equal(t, "qcf", expanded[1].Name)
}

func TestExpandComboNotationEmptyInput(t *testing.T) {
	svc := newTestNotationService(t, &fakeNotationRepo{})

	assert.Empty(t, svc.ExpandComboNotation("sf6", nil))
	assert.Empty(t, svc.ExpandComboNotation("sf6", []notation.ComboNotationItem{}))
}

func TestExpandComboNotationEmptyGameID(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	items := []notation.ComboNotationItem{
		{CategoryID: "buttons", ElementID: "lp"},
		{CategoryID: "buttons", ElementID: "hp"},
	}

	// No game means no reference data to resolve against: the result is an
	// empty sequence, not placeholders, and nothing is fetched.
	expanded := svc.ExpandComboNotation("", items)
	require.NotNil(t, expanded)
	assert.Empty(t, expanded)
	assert.Equal(t, 0, repo.fetchCount)
}

func TestGetNotationElement(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	element := svc.GetNotationElement("sf6", "buttons", "hp")
	require.NotNil(t, element)
	assert.Equal(t, "Heavy Punch", element.Name)
	assert.Equal(t, "Buttons", element.CategoryName)

	// Misses are nil, not errors.
	assert.Nil(t, svc.GetNotationElement("sf6", "buttons", "ghost"))
}

func TestGetNotationElementNilOnFetchFailure(t *testing.T) {
	repo := &fakeNotationRepo{fetchErr: errors.New("db down")}
	svc := newTestNotationService(t, repo)

	assert.Nil(t, svc.GetNotationElement("sf6", "buttons", "hp"))
}

func TestUpdateGameNotationInvalidatesCache(t *testing.T) {
	repo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestNotationService(t, repo)

	_, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)

	updated := notation.NotationReference{
		"buttons": {{ID: "mk", Name: "Medium Kick", Symbol: "MK"}},
	}
	require.NoError(t, svc.UpdateGameNotation("sf6", updated))

	ref, err := svc.GetReferenceData("sf6")
	require.NoError(t, err)
	require.Len(t, ref["buttons"], 1)
	assert.Equal(t, "Medium Kick", ref["buttons"][0].Name)
	assert.Equal(t, 2, repo.fetchCount)
}

func TestUpdateGameNotationValidation(t *testing.T) {
	svc := newTestNotationService(t, &fakeNotationRepo{})

	assert.Error(t, svc.UpdateGameNotation("", sampleReference()))
	assert.Error(t, svc.UpdateGameNotation("sf6", nil))
}
