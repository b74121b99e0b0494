package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs many independent games. Each call restores the game engine from the stored
// move record, applies the command and stores the result.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	now      func() time.Time

	// serializes load-apply-store
	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		now:      time.Now,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID(), that.now())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// PlaceStone - places the current side's stone on (row, col). Ignored placements are not stored.
func (that *GameManager) PlaceStone(ctx context.Context, id string, row, col int) (*entity.Game, entity.Outcome, error) {
	log := that.logger.With("method", "PlaceStone", "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, engine, err := that.load(ctx, id)
	if err != nil {
		return nil, entity.IgnoredOutcome(), err
	}

	outcome := engine.PlaceStone(row, col)
	if outcome.IsIgnored() {
		log.Debug("placement ignored", "row", row, "col", col)
		return game, outcome, nil
	}

	engine.Fill(game)
	game.UpdatedAt = that.now()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.IgnoredOutcome(), fmt.Errorf("failed to update game: %w", err)
	}

	if outcome.IsWin() {
		log.Info("game won", "winner", outcome.Winner, "moves", len(game.Moves))
	}

	return game, outcome, nil
}

// Click - maps a canvas coordinate to a cell and places a stone there.
// Clicks outside the grid are ignored.
func (that *GameManager) Click(ctx context.Context, id string, x, y float64) (*entity.Game, entity.Outcome, error) {
	point, ok := gomoku.MapToCell(x, y)
	if !ok {
		game, err := that.GetGame(ctx, id)
		if err != nil {
			return nil, entity.IgnoredOutcome(), err
		}

		return game, entity.IgnoredOutcome(), nil
	}

	return that.PlaceStone(ctx, id, point.Row, point.Col)
}

// ResetGame - clears the board of an existing game.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, engine, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	engine.Reset()
	engine.Fill(game)
	game.UpdatedAt = that.now()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", id)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) load(ctx context.Context, id string) (*entity.Game, *gomoku.Engine, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	engine, err := gomoku.Restore(game.Moves)
	if err != nil {
		that.logger.Error("failed to restore game", "gameID", id, "error", err)
		return nil, nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return game, engine, nil
}
