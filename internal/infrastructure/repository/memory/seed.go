package memory

import (
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/scoring"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
)

const (
	SeasonID2024 = "temporada-2024"
	SeasonID2025 = "temporada-2025"
)

func SeedSeasons() []season.Season {
	end2024 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []season.Season{
		{
			ID:          SeasonID2024,
			Year:        2024,
			Name:        "Temporada 2024",
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     &end2024,
			Active:      false,
			Description: "Temporada encerrada",
		},
		{
			ID:          SeasonID2025,
			Year:        2025,
			Name:        "Temporada 2025",
			StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Active:      true,
			Description: "Temporada em andamento",
		},
	}
}

func SeedPlayers() []player.Player {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []player.Player{
		{ID: "pl-ana", Name: "Ana Souza", Email: "ana@example.com", Gender: player.GenderFeminino, Category: category.B, Points: 340, TournamentsPlayed: 5, CreatedAt: created},
		{ID: "pl-bruna", Name: "Bruna Lima", Email: "bruna@example.com", Gender: player.GenderFeminino, Category: category.C, Points: 210, TournamentsPlayed: 4, CreatedAt: created},
		{ID: "pl-carla", Name: "Carla Mendes", Email: "carla@example.com", Gender: player.GenderFeminino, Category: category.C, Points: 180, TournamentsPlayed: 3, CreatedAt: created},
		{ID: "pl-diego", Name: "Diego Rocha", Email: "diego@example.com", Gender: player.GenderMasculino, Category: category.A, Points: 420, TournamentsPlayed: 6, CreatedAt: created},
		{ID: "pl-enzo", Name: "Enzo Castro", Email: "enzo@example.com", Gender: player.GenderMasculino, Category: category.D, Points: 90, TournamentsPlayed: 2, CreatedAt: created},
		{ID: "pl-fabio", Name: "Fabio Nunes", Email: "fabio@example.com", Gender: player.GenderMasculino, Category: category.FUN, Points: 0, TournamentsPlayed: 0, CreatedAt: created},
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:       "tn-aberto-verao",
			Name:     "Aberto de Verao",
			Date:     time.Date(2025, 2, 8, 9, 0, 0, 0, time.UTC),
			Location: "Arena Central",
			Category: category.C,
			Status:   tournament.StatusRealizado,
			SeasonID: SeasonID2025,
		},
		{
			ID:       "tn-copa-outono",
			Name:     "Copa de Outono",
			Date:     time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC),
			Location: "Clube do Lago",
			Category: category.B,
			Status:   tournament.StatusRealizado,
			SeasonID: SeasonID2025,
		},
		{
			ID:       "tn-master-inverno",
			Name:     "Master de Inverno",
			Date:     time.Date(2025, 7, 19, 9, 0, 0, 0, time.UTC),
			Location: "Arena Central",
			Category: category.A,
			Status:   tournament.StatusConfirmado,
			SeasonID: SeasonID2025,
			CustomPoints: map[result.Placement]int{
				result.PlacementCampeao: 150,
				result.PlacementVice:    100,
			},
		},
	}
}

func SeedScoringConfigs() []scoring.Config {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []scoring.Config{
		{
			ID:       "sc-2025",
			SeasonID: SeasonID2025,
			PointsByPlacement: map[result.Placement]int{
				result.PlacementCampeao:      100,
				result.PlacementVice:         70,
				result.PlacementTerceiro:     50,
				result.PlacementQuartas:      30,
				result.PlacementOitavas:      20,
				result.PlacementParticipacao: 10,
			},
			Ativo:     true,
			CreatedAt: created,
		},
	}
}

func SeedResults() []result.Result {
	return []result.Result{
		{ID: "rs-0001", PlayerID: "pl-ana", TournamentID: "tn-copa-outono", Placement: result.PlacementCampeao, PointsEarned: 100, CreatedAt: time.Date(2025, 4, 12, 18, 0, 0, 0, time.UTC)},
		{ID: "rs-0002", PlayerID: "pl-bruna", TournamentID: "tn-aberto-verao", Placement: result.PlacementVice, PointsEarned: 70, CreatedAt: time.Date(2025, 2, 8, 18, 0, 0, 0, time.UTC)},
		{ID: "rs-0003", PlayerID: "pl-carla", TournamentID: "tn-aberto-verao", Placement: result.PlacementTerceiro, PointsEarned: 50, CreatedAt: time.Date(2025, 2, 8, 18, 0, 0, 0, time.UTC)},
		{ID: "rs-0004", PlayerID: "pl-diego", TournamentID: "tn-copa-outono", Placement: result.PlacementVice, PointsEarned: 70, CreatedAt: time.Date(2025, 4, 12, 18, 0, 0, 0, time.UTC)},
		{ID: "rs-0005", PlayerID: "pl-enzo", TournamentID: "tn-aberto-verao", Placement: result.PlacementParticipacao, PointsEarned: 10, CreatedAt: time.Date(2025, 2, 8, 18, 0, 0, 0, time.UTC)},
	}
}

// SeedHistory keeps exactly one open entry per seeded player, matching each
// player's current category.
func SeedHistory() []history.Entry {
	entered := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	subiu := category.ExitSubiu
	anaMoved := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)

	return []history.Entry{
		{ID: "ch-0001", PlayerID: "pl-ana", Category: category.C, EntryDate: entered, ExitDate: &anaMoved, ExitReason: &subiu},
		{ID: "ch-0002", PlayerID: "pl-ana", Category: category.B, EntryDate: anaMoved},
		{ID: "ch-0003", PlayerID: "pl-bruna", Category: category.C, EntryDate: entered},
		{ID: "ch-0004", PlayerID: "pl-carla", Category: category.C, EntryDate: entered},
		{ID: "ch-0005", PlayerID: "pl-diego", Category: category.A, EntryDate: entered},
		{ID: "ch-0006", PlayerID: "pl-enzo", Category: category.D, EntryDate: entered},
		{ID: "ch-0007", PlayerID: "pl-fabio", Category: category.FUN, EntryDate: entered},
	}
}
