// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/danielhkuo/spots/models"
	"github.com/danielhkuo/spots/store"
)

type voteKey struct {
	kind   models.VoteKind
	userID int64
	spotID int64
}

// memStore is an in-memory stand-in for store.Store with the same error
// contract.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
	spots  map[int64]models.Spot
	votes  map[voteKey]bool

	failWith error // when set, every call returns it
}

func newMemStore() *memStore {
	return &memStore{
		users: map[int64]models.User{},
		spots: map[int64]models.Spot{},
		votes: map[voteKey]bool{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, username, hash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	for _, u := range m.users {
		if u.Username == username {
			return models.User{}, store.ErrDuplicate
		}
	}
	u := models.User{ID: m.id(), Username: username, PasswordHash: hash}
	m.users[u.ID] = u
	return u, nil
}

func (m *memStore) UserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *memStore) summary(sp models.Spot) models.SpotSummary {
	s := models.SpotSummary{
		ID:       sp.ID,
		Name:     sp.Name,
		Address:  sp.Address,
		Lat:      sp.Lat,
		Lng:      sp.Lng,
		Note:     sp.Note,
		Date:     sp.Date,
		Username: m.users[sp.UserID].Username,
	}
	for k := range m.votes {
		if k.spotID != sp.ID {
			continue
		}
		if k.kind == models.VoteBeen {
			s.BeenHereCount++
		} else {
			s.GoodSpotCount++
		}
	}
	return s
}

func (m *memStore) ListSpots(context.Context) ([]models.SpotSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.SpotSummary{}
	for _, sp := range m.spots {
		out = append(out, m.summary(sp))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetSpot(_ context.Context, spotID int64) (models.SpotSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.SpotSummary{}, m.failWith
	}
	sp, ok := m.spots[spotID]
	if !ok {
		return models.SpotSummary{}, store.ErrNotFound
	}
	return m.summary(sp), nil
}

func (m *memStore) CreateSpot(_ context.Context, userID int64, req models.CreateSpotRequest) (models.Spot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.Spot{}, m.failWith
	}
	if _, ok := m.users[userID]; !ok {
		return models.Spot{}, store.ErrNotFound
	}
	sp := models.Spot{
		ID:      m.id(),
		Name:    req.Name,
		UserID:  userID,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
		Note:    req.Note,
		Date:    req.Date,
	}
	m.spots[sp.ID] = sp
	return sp, nil
}

func (m *memStore) owned(spotID, userID int64) (models.Spot, error) {
	sp, ok := m.spots[spotID]
	if !ok {
		return sp, store.ErrNotFound
	}
	if sp.UserID != userID {
		return sp, store.ErrNotOwner
	}
	return sp, nil
}

func (m *memStore) UpdateSpotNote(_ context.Context, spotID, userID int64, note *string) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	sp, err := m.owned(spotID, userID)
	if err != nil {
		return nil, err
	}
	sp.Note = note
	m.spots[spotID] = sp
	return note, nil
}

func (m *memStore) DeleteSpot(_ context.Context, spotID, userID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return "", m.failWith
	}
	sp, err := m.owned(spotID, userID)
	if err != nil {
		return "", err
	}
	delete(m.spots, spotID)
	for k := range m.votes {
		if k.spotID == spotID {
			delete(m.votes, k)
		}
	}
	return sp.Name, nil
}

func (m *memStore) AddVote(_ context.Context, kind models.VoteKind, userID, spotID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if !kind.Valid() {
		return errors.New("unknown vote kind")
	}
	if _, ok := m.spots[spotID]; !ok {
		return store.ErrNotFound
	}
	k := voteKey{kind, userID, spotID}
	if m.votes[k] {
		return store.ErrDuplicate
	}
	m.votes[k] = true
	return nil
}

func (m *memStore) VoteStatus(_ context.Context, userID, spotID int64) (models.VoteStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.VoteStatus{}, m.failWith
	}
	return models.VoteStatus{
		SpotID:    spotID,
		BeenHere:  m.votes[voteKey{models.VoteBeen, userID, spotID}],
		LikedHere: m.votes[voteKey{models.VoteGood, userID, spotID}],
	}, nil
}

func (m *memStore) UserVotes(_ context.Context, userID int64) (models.UserVotes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.UserVotes{}, m.failWith
	}
	out := models.UserVotes{BeenArray: []int64{}, GoodArray: []int64{}}
	for k := range m.votes {
		if k.userID != userID {
			continue
		}
		if k.kind == models.VoteBeen {
			out.BeenArray = append(out.BeenArray, k.spotID)
		} else {
			out.GoodArray = append(out.GoodArray, k.spotID)
		}
	}
	sort.Slice(out.BeenArray, func(i, j int) bool { return out.BeenArray[i] < out.BeenArray[j] })
	sort.Slice(out.GoodArray, func(i, j int) bool { return out.GoodArray[i] < out.GoodArray[j] })
	return out, nil
}

// addUser inserts a user without going through signup
func (m *memStore) addUser(username string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := models.User{ID: m.id(), Username: username}
	m.users[u.ID] = u
	return u.ID
}

// addSpot inserts a spot directly
func (m *memStore) addSpot(userID int64, name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	note := "a note"
	sp := models.Spot{ID: m.id(), Name: name, UserID: userID, Address: "1 Test St", Note: &note, Date: models.NewDate(2024, 5, 1)}
	m.spots[sp.ID] = sp
	return sp.ID
}
