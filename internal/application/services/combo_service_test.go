package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/stores"
	"github.com/ComboLab/combolab-go/internal/infrastructure/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComboRepo struct {
	combos    map[string]*content.ComboNode
	updateErr error
}

func (f *fakeComboRepo) FindByID(id string) (*content.ComboNode, error) {
	return f.combos[id], nil
}

func (f *fakeComboRepo) FindByCharacterID(characterID string) ([]*content.ComboNode, error) {
	var out []*content.ComboNode
	for _, c := range f.combos {
		if c.CharacterID == characterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComboRepo) Store(combo *content.ComboNode) error {
	if f.combos == nil {
		f.combos = map[string]*content.ComboNode{}
	}
	f.combos[combo.ID] = combo
	return nil
}

func (f *fakeComboRepo) Update(combo *content.ComboNode) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.combos[combo.ID] = combo
	return nil
}

func (f *fakeComboRepo) Delete(id string) error {
	delete(f.combos, id)
	return nil
}

type fakeCharacterRepo struct {
	characters map[string]*content.CharacterNode
}

func (f *fakeCharacterRepo) FindByID(id string) (*content.CharacterNode, error) {
	return f.characters[id], nil
}

func (f *fakeCharacterRepo) FindByGameID(gameID string) ([]*content.CharacterNode, error) {
	var out []*content.CharacterNode
	for _, c := range f.characters {
		if c.GameID == gameID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCharacterRepo) Store(character *content.CharacterNode) error  { return nil }
func (f *fakeCharacterRepo) Update(character *content.CharacterNode) error { return nil }
func (f *fakeCharacterRepo) Delete(id string) error                        { return nil }

func newTestComboService(t *testing.T, comboRepo *fakeComboRepo, notationRepo *fakeNotationRepo) *ComboService {
	t.Helper()
	characterRepo := &fakeCharacterRepo{characters: map[string]*content.CharacterNode{
		"ryu": {ID: "ryu", GameID: "sf6", Name: "Ryu"},
	}}
	notationService := NewNotationService(notationRepo, stores.NewContentStore(), testLogger(t))
	broadcaster := messaging.NewSSEBroadcaster(testLogger(t))
	return NewComboService(comboRepo, characterRepo, notationService, broadcaster)
}

func TestComboCreateFillsDefaults(t *testing.T) {
	comboRepo := &fakeComboRepo{}
	svc := newTestComboService(t, comboRepo, &fakeNotationRepo{})

	combo := &content.ComboNode{
		CharacterID: "ryu",
		Name:        "BnB",
		Difficulty:  "easy",
	}
	require.NoError(t, svc.Create(combo, "user1"))

	assert.NotEmpty(t, combo.ID)
	assert.Equal(t, "sf6", combo.GameID)
	assert.Equal(t, "user1", combo.CreatedBy)
	assert.NotNil(t, combo.Tags)
	assert.NotNil(t, combo.Notation)
	assert.Empty(t, combo.Likes)
	assert.Empty(t, combo.Dislikes)
}

func TestComboCreateValidation(t *testing.T) {
	svc := newTestComboService(t, &fakeComboRepo{}, &fakeNotationRepo{})

	assert.Error(t, svc.Create(nil, "user1"))
	assert.Error(t, svc.Create(&content.ComboNode{CharacterID: "ryu", Difficulty: "easy"}, "user1"))
	assert.Error(t, svc.Create(&content.ComboNode{CharacterID: "ryu", Name: "x", Difficulty: "impossible"}, "user1"))
	assert.Error(t, svc.Create(&content.ComboNode{CharacterID: "ghost", Name: "x", Difficulty: "easy"}, "user1"))
}

func TestComboVoteToggling(t *testing.T) {
	comboRepo := &fakeComboRepo{combos: map[string]*content.ComboNode{
		"c1": {ID: "c1", GameID: "sf6", CharacterID: "ryu", Name: "BnB", Likes: []string{}, Dislikes: []string{}},
	}}
	svc := newTestComboService(t, comboRepo, &fakeNotationRepo{})

	combo, err := svc.ToggleLike("c1", "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user1"}, combo.Likes)

	// Disliking withdraws the like.
	combo, err = svc.ToggleDislike("c1", "user1")
	require.NoError(t, err)
	assert.Empty(t, combo.Likes)
	assert.Equal(t, []string{"user1"}, combo.Dislikes)

	// Toggling again withdraws the dislike.
	combo, err = svc.ToggleDislike("c1", "user1")
	require.NoError(t, err)
	assert.Empty(t, combo.Dislikes)

	_, err = svc.ToggleLike("c1", "")
	assert.Error(t, err)
}

func TestComboVoteFailedUpdateLeavesNodeUntouched(t *testing.T) {
	shared := &content.ComboNode{
		ID: "c1", GameID: "sf6", CharacterID: "ryu", Name: "BnB",
		Likes: []string{}, Dislikes: []string{"u2"},
	}
	comboRepo := &fakeComboRepo{
		combos:    map[string]*content.ComboNode{"c1": shared},
		updateErr: errors.New("db down"),
	}
	svc := newTestComboService(t, comboRepo, &fakeNotationRepo{})

	_, err := svc.ToggleLike("c1", "user1")
	require.Error(t, err)

	// The repo-resident node must not carry the unpersisted vote.
	assert.Empty(t, shared.Likes)
	assert.Equal(t, []string{"u2"}, shared.Dislikes)
	assert.Nil(t, shared.Changed)
}

func TestComboUpdateOwnership(t *testing.T) {
	comboRepo := &fakeComboRepo{combos: map[string]*content.ComboNode{
		"c1": {ID: "c1", GameID: "sf6", CharacterID: "ryu", Name: "BnB", Difficulty: "easy", CreatedBy: "user1"},
	}}
	svc := newTestComboService(t, comboRepo, &fakeNotationRepo{})

	update := &content.ComboNode{ID: "c1", Name: "BnB v2", Difficulty: "medium"}
	assert.Error(t, svc.Update(update, "intruder"))
	require.NoError(t, svc.Update(update, "user1"))
	assert.Equal(t, "user1", update.CreatedBy)
	assert.NotNil(t, update.Changed)

	assert.Error(t, svc.Delete("c1", "intruder"))
	require.NoError(t, svc.Delete("c1", "user1"))
}

func TestComboGetByCharacterSorting(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	comboRepo := &fakeComboRepo{combos: map[string]*content.ComboNode{
		"c1": {ID: "c1", CharacterID: "ryu", Name: "Old favorite", Created: old, Likes: []string{"u1", "u2"}},
		"c2": {ID: "c2", CharacterID: "ryu", Name: "New", Created: recent, Likes: []string{"u1"}, Dislikes: []string{"u2"}},
	}}
	svc := newTestComboService(t, comboRepo, &fakeNotationRepo{})

	byLikes, err := svc.GetByCharacter("ryu", "likes")
	require.NoError(t, err)
	require.Len(t, byLikes, 2)
	assert.Equal(t, "c1", byLikes[0].ID)

	byRecent, err := svc.GetByCharacter("ryu", "recent")
	require.NoError(t, err)
	assert.Equal(t, "c2", byRecent[0].ID)

	_, err = svc.GetByCharacter("ryu", "controversial")
	assert.Error(t, err)
}

func TestGetExpandedResolvesNotation(t *testing.T) {
	comboRepo := &fakeComboRepo{combos: map[string]*content.ComboNode{
		"c1": {
			ID: "c1", GameID: "sf6", CharacterID: "ryu", Name: "BnB",
			Notation: []notation.ComboNotationItem{
				{CategoryID: "buttons", ElementID: "lp"},
				{CategoryID: "buttons", ElementID: "hp"},
			},
		},
	}}
	notationRepo := &fakeNotationRepo{refs: map[string]notation.NotationReference{"sf6": sampleReference()}}
	svc := newTestComboService(t, comboRepo, notationRepo)

	expanded, err := svc.GetExpanded("c1")
	require.NoError(t, err)
	require.NotNil(t, expanded)
	require.Len(t, expanded.ExpandedNotation, 2)
	assert.Equal(t, "Light Punch", expanded.ExpandedNotation[0].Name)
	assert.Equal(t, "Heavy Punch", expanded.ExpandedNotation[1].Name)

	missing, err := svc.GetExpanded("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
