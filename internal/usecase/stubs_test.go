package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/request"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/scoring"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
)

var errStubStore = errors.New("stub store failure")

type stubPlayerRepository struct {
	byID map[string]player.Player

	listErr  error
	getErr   error
	updated  map[string]category.Category
	totalOps []string
}

func (s *stubPlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]player.Player, 0, len(s.byID))
	for _, p := range s.byID {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Gender != nil && p.Gender != *filter.Gender {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	if s.getErr != nil {
		return player.Player{}, false, s.getErr
	}
	p, ok := s.byID[playerID]
	return p, ok, nil
}

func (s *stubPlayerRepository) UpdateCategory(_ context.Context, playerID string, cat category.Category) error {
	if s.updated == nil {
		s.updated = make(map[string]category.Category)
	}
	s.updated[playerID] = cat
	if p, ok := s.byID[playerID]; ok {
		p.Category = cat
		s.byID[playerID] = p
	}
	return nil
}

func (s *stubPlayerRepository) ApplyResultTotals(_ context.Context, playerID string, points int) error {
	s.totalOps = append(s.totalOps, fmt.Sprintf("apply:%s:%d", playerID, points))
	if p, ok := s.byID[playerID]; ok {
		p.Points += points
		p.TournamentsPlayed++
		s.byID[playerID] = p
	}
	return nil
}

func (s *stubPlayerRepository) RevertResultTotals(_ context.Context, playerID string, points int) error {
	s.totalOps = append(s.totalOps, fmt.Sprintf("revert:%s:%d", playerID, points))
	if p, ok := s.byID[playerID]; ok {
		p.Points -= points
		p.TournamentsPlayed--
		s.byID[playerID] = p
	}
	return nil
}

type stubResultRepository struct {
	byPlayer map[string][]result.PlayerResult
	byID     map[string]result.Result
	ranged   []result.PlayerResult

	listErr  error
	inserted []result.Result
	deleted  []string
}

func (s *stubResultRepository) GetByID(_ context.Context, resultID string) (result.Result, bool, error) {
	r, ok := s.byID[resultID]
	return r, ok, nil
}

func (s *stubResultRepository) ListByPlayer(_ context.Context, playerID string) ([]result.PlayerResult, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byPlayer[playerID], nil
}

func (s *stubResultRepository) ListByDateRange(_ context.Context, start time.Time, end *time.Time) ([]result.PlayerResult, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]result.PlayerResult, 0, len(s.ranged))
	for _, row := range s.ranged {
		if row.TournamentDate.Before(start) {
			continue
		}
		if end != nil && !row.TournamentDate.Before(*end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *stubResultRepository) Insert(_ context.Context, r result.Result) error {
	s.inserted = append(s.inserted, r)
	return nil
}

func (s *stubResultRepository) Delete(_ context.Context, resultID string) error {
	s.deleted = append(s.deleted, resultID)
	return nil
}

type stubHistoryRepository struct {
	open     map[string]history.Entry
	entries  map[string][]history.Entry
	multiple map[string]bool

	findErr     error
	inserted    []history.Entry
	transitions []struct {
		close history.Close
		open  history.Entry
	}
}

func (s *stubHistoryRepository) FindOpen(_ context.Context, playerID string) (history.Entry, bool, error) {
	if s.findErr != nil {
		return history.Entry{}, false, s.findErr
	}
	if s.multiple[playerID] {
		return history.Entry{}, false, fmt.Errorf("player %s: %w", playerID, history.ErrMultipleOpen)
	}
	e, ok := s.open[playerID]
	return e, ok, nil
}

func (s *stubHistoryRepository) Transition(_ context.Context, close history.Close, open history.Entry) error {
	s.transitions = append(s.transitions, struct {
		close history.Close
		open  history.Entry
	}{close, open})
	if s.open == nil {
		s.open = make(map[string]history.Entry)
	}
	s.open[open.PlayerID] = open
	return nil
}

func (s *stubHistoryRepository) Insert(_ context.Context, entry history.Entry) error {
	s.inserted = append(s.inserted, entry)
	if s.open == nil {
		s.open = make(map[string]history.Entry)
	}
	s.open[entry.PlayerID] = entry
	return nil
}

func (s *stubHistoryRepository) ListByPlayer(_ context.Context, playerID string) ([]history.Entry, error) {
	return s.entries[playerID], nil
}

type stubRequestRepository struct {
	byID    map[string]request.Request
	pending map[string]request.Request

	insertErr error
	updateErr error
	inserted  []request.Request
	updates   []string
}

func (s *stubRequestRepository) GetByID(_ context.Context, requestID string) (request.Request, bool, error) {
	r, ok := s.byID[requestID]
	return r, ok, nil
}

func (s *stubRequestRepository) FindPending(_ context.Context, playerID string) (request.Request, bool, error) {
	r, ok := s.pending[playerID]
	return r, ok, nil
}

func (s *stubRequestRepository) Insert(_ context.Context, r request.Request) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, exists := s.pending[r.PlayerID]; exists {
		return fmt.Errorf("player %s: %w", r.PlayerID, request.ErrPendingExists)
	}
	if s.pending == nil {
		s.pending = make(map[string]request.Request)
	}
	if s.byID == nil {
		s.byID = make(map[string]request.Request)
	}
	s.pending[r.PlayerID] = r
	s.byID[r.ID] = r
	s.inserted = append(s.inserted, r)
	return nil
}

func (s *stubRequestRepository) UpdateStatus(_ context.Context, requestID string, status request.Status, adminResponse, adminID string, responseDate time.Time) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, fmt.Sprintf("%s:%s:%s", requestID, status, adminID))
	if r, ok := s.byID[requestID]; ok {
		r.Status = status
		r.AdminResponse = &adminResponse
		r.AdminID = &adminID
		r.ResponseDate = &responseDate
		s.byID[requestID] = r
		delete(s.pending, r.PlayerID)
	}
	return nil
}

func (s *stubRequestRepository) ListByStatus(_ context.Context, status request.Status) ([]request.Request, error) {
	out := make([]request.Request, 0)
	for _, r := range s.byID {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubTournamentRepository struct {
	byID map[string]tournament.Tournament
}

func (s *stubTournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	t, ok := s.byID[tournamentID]
	return t, ok, nil
}

func (s *stubTournamentRepository) ListByDateRange(_ context.Context, start time.Time, end *time.Time) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(s.byID))
	for _, t := range s.byID {
		if t.Date.Before(start) {
			continue
		}
		if end != nil && !t.Date.Before(*end) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type stubScoringRepository struct {
	active    scoring.Config
	hasActive bool
}

func (s *stubScoringRepository) GetActive(_ context.Context) (scoring.Config, bool, error) {
	return s.active, s.hasActive, nil
}

func (s *stubScoringRepository) GetBySeason(_ context.Context, seasonID string) (scoring.Config, bool, error) {
	if s.hasActive && s.active.SeasonID == seasonID {
		return s.active, true, nil
	}
	return scoring.Config{}, false, nil
}

type stubSeasonRepository struct {
	byID   map[string]season.Season
	active *season.Season
}

func (s *stubSeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	se, ok := s.byID[seasonID]
	return se, ok, nil
}

func (s *stubSeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	if s.active == nil {
		return season.Season{}, false, nil
	}
	return *s.active, true, nil
}

func (s *stubSeasonRepository) List(_ context.Context) ([]season.Season, error) {
	out := make([]season.Season, 0, len(s.byID))
	for _, se := range s.byID {
		out = append(out, se)
	}
	return out, nil
}

type stubSeasonRankingRepository struct {
	bySeason map[string][]seasonranking.Row

	replaced map[string][]seasonranking.Row
}

func (s *stubSeasonRankingRepository) ListBySeason(_ context.Context, seasonID string, filter seasonranking.Filter) ([]seasonranking.Row, error) {
	out := make([]seasonranking.Row, 0)
	for _, row := range s.bySeason[seasonID] {
		if filter.Category != nil && row.Category != *filter.Category {
			continue
		}
		if filter.Gender != nil && row.Gender != *filter.Gender {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *stubSeasonRankingRepository) ReplaceBySeason(_ context.Context, seasonID string, rows []seasonranking.Row) error {
	if s.replaced == nil {
		s.replaced = make(map[string][]seasonranking.Row)
	}
	s.replaced[seasonID] = rows
	if s.bySeason == nil {
		s.bySeason = make(map[string][]seasonranking.Row)
	}
	s.bySeason[seasonID] = rows
	return nil
}

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%04d", g.next), nil
}

func fixedTime() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func categoryPtr(c category.Category) *category.Category {
	return &c
}

func playedResult(playerID string, cat category.Category) result.PlayerResult {
	return result.PlayerResult{
		Result: result.Result{
			ID:        playerID + "-" + string(cat),
			PlayerID:  playerID,
			Placement: result.PlacementParticipacao,
		},
		TournamentCategory: cat,
		TournamentFound:    true,
	}
}
