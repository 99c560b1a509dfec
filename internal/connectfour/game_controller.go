package connectfour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	msgWelcome        = "Welcome to Connect Four!"
	msgChooseToken    = "%s, choose your token (one character please):"
	msgTokenChosen    = "%s has chosen %s."
	msgChooseColumn   = "%s's turn. Choose a column (1-%d):"
	msgInvalidEntry   = "Invalid entry. Please try again."
	msgColumnFull     = "Sorry, this column is full. Please try again."
	msgWinner         = "Game over! %s wins!"
	msgDraw           = "Game over! Nobody wins!"
	msgScore          = "Score after %d round(s): %s"
	msgPlayAgain      = "Would you like to play again? (Y/N)"
	msgChangeTokens   = "Would you like to change your tokens? (Y/N)"
	msgAssumeNo       = "Game will assume you meant 'no'."
	msgThanks         = "Thanks for playing!"
	answerYes         = 'y'
	answerNo          = 'n'
	firstPlayerIndex  = 0
	secondPlayerIndex = 1
)

// InputSource yields one line of player input per call and blocks until it is available.
type InputSource interface {
	ReadLine() (string, error)
}

// Renderer presents the board and a message. A nil board means the message stands alone.
type Renderer interface {
	Show(board *entity.Snapshot, message string)
}

// ResultSink receives every finished round.
type ResultSink interface {
	Publish(ctx context.Context, result *entity.RoundResult) error
}

type Option func(*GameController)

func WithResultSink(sink ResultSink) Option {
	return func(that *GameController) {
		that.sink = sink
	}
}

func WithSessionID(id string) Option {
	return func(that *GameController) {
		that.sessionID = id
	}
}

// GameController drives the turn and round lifecycle over one shared board.
// It is the only component that talks to the input source and the renderer.
type GameController struct {
	logger    *slog.Logger
	input     InputSource
	renderer  Renderer
	sink      ResultSink
	sessionID string

	board     *entity.Board
	players   [2]*entity.Player
	active    int
	movesLeft int
	state     State
	outcome   entity.Outcome
	score     *entity.Scoreboard
}

func NewGameController(
	logger *slog.Logger,
	board *entity.Board,
	first, second *entity.Player,
	input InputSource,
	renderer Renderer,
	opts ...Option,
) *GameController {
	controller := &GameController{
		logger:    logger.With("component", "game_controller"),
		input:     input,
		renderer:  renderer,
		board:     board,
		players:   [2]*entity.Player{first, second},
		active:    firstPlayerIndex,
		movesLeft: entity.MaxMoves,
		state:     StateAwaitingTokens,
		score:     entity.NewScoreboard(),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Run - plays rounds until the players decline to play again.
// Input errors are returned as is; cancellation is only observed between steps.
func (that *GameController) Run(ctx context.Context) error {
	that.renderer.Show(nil, msgWelcome)

	for that.state != StateEnded {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		that.logger.Debug("step", "state", that.state.String())

		if err := that.Step(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Step - performs exactly one transition of the state machine.
// Invalid input leaves the controller in the state it was in.
func (that *GameController) Step(ctx context.Context) error {
	switch that.state {
	case StateAwaitingTokens:
		return that.awaitTokens()
	case StateInProgress:
		return that.playTurn()
	case StateRoundOver:
		that.finishRound(ctx)
		return nil
	case StateAwaitingReplayChoice:
		return that.askReplay()
	case StateEnded:
		return apperror.ErrGameEnded
	default:
		return fmt.Errorf("%w: %d", apperror.ErrUnknownState, that.state)
	}
}

func (that *GameController) awaitTokens() error {
	player := that.playerWithoutToken()
	if player == nil {
		that.startRound()
		return nil
	}

	that.renderer.Show(nil, fmt.Sprintf(msgChooseToken, player.Identity()))

	line, err := that.readLine()
	if err != nil {
		return err
	}

	token, err := entity.NewToken(line)
	if err != nil {
		that.renderer.Show(nil, msgInvalidEntry)
		return nil
	}

	player.ChooseToken(token)
	that.renderer.Show(nil, fmt.Sprintf(msgTokenChosen, player.Identity(), token))
	that.logger.Debug("token chosen", "player", player.Identity(), "token", token.String())

	if that.playerWithoutToken() == nil {
		that.startRound()
	}

	return nil
}

func (that *GameController) playTurn() error {
	log := that.logger.With("method", "playTurn")
	player := that.players[that.active]

	snapshot := that.board.Snapshot()
	that.renderer.Show(&snapshot, fmt.Sprintf(msgChooseColumn, player.Identity(), entity.Columns))

	line, err := that.readLine()
	if err != nil {
		return err
	}

	column, err := parseColumn(line)
	if err != nil {
		log.Debug("rejected column", "player", player.Identity(), "error", err)
		that.renderer.Show(nil, msgInvalidEntry)
		return nil
	}

	coord, err := player.Drop(column)
	if errors.Is(err, apperror.ErrColumnFull) {
		log.Debug("rejected move", "player", player.Identity(), "error", err)
		that.renderer.Show(nil, msgColumnFull)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to drop token: %w", err)
	}

	that.movesLeft--
	log.Debug("token placed", "player", player.Identity(), "row", coord.Row, "col", coord.Col, "moves_left", that.movesLeft)

	switch {
	case that.board.CheckVictory():
		that.endRound(entity.Win(player))
	case that.movesLeft == 0:
		that.endRound(entity.Draw())
	default:
		that.active = 1 - that.active
	}

	return nil
}

func (that *GameController) finishRound(ctx context.Context) {
	log := that.logger.With("method", "finishRound")

	that.score.Record(that.outcome)

	message := msgDraw
	if that.outcome.IsWin() {
		message = fmt.Sprintf(msgWinner, that.outcome.Winner.Identity())
	}

	snapshot := that.board.Snapshot()
	that.renderer.Show(&snapshot, message)
	that.renderer.Show(nil, fmt.Sprintf(msgScore, that.score.Rounds,
		that.score.Summary(that.players[firstPlayerIndex].Identity(), that.players[secondPlayerIndex].Identity())))

	log.Info("round over", "round", that.score.Rounds, "outcome", string(that.outcome.Kind))

	if that.sink != nil {
		result := entity.NewRoundResult(that.sessionID, that.score.Rounds, entity.MaxMoves-that.movesLeft, that.outcome, snapshot)
		if err := that.sink.Publish(ctx, result); err != nil {
			log.Error("failed to publish round result", "error", err)
		}
	}

	that.state = StateAwaitingReplayChoice
}

func (that *GameController) askReplay() error {
	that.renderer.Show(nil, msgPlayAgain)

	line, err := that.readLine()
	if err != nil {
		return err
	}

	switch firstLetter(line) {
	case answerNo:
		that.renderer.Show(nil, msgThanks)
		that.state = StateEnded
		return nil
	case answerYes:
	default:
		that.renderer.Show(nil, msgInvalidEntry)
		return nil
	}

	that.renderer.Show(nil, msgChangeTokens)

	line, err = that.readLine()
	if err != nil {
		return err
	}

	// anything but a clear yes keeps the tokens
	clearTokens := false
	switch firstLetter(line) {
	case answerYes:
		clearTokens = true
	case answerNo:
	default:
		that.renderer.Show(nil, msgAssumeNo)
	}

	that.reset(clearTokens)

	return nil
}

func (that *GameController) startRound() {
	that.active = firstPlayerIndex
	that.state = StateInProgress
}

func (that *GameController) endRound(outcome entity.Outcome) {
	that.outcome = outcome
	that.state = StateRoundOver
}

func (that *GameController) reset(clearTokens bool) {
	that.board.Reset()
	that.movesLeft = entity.MaxMoves
	that.outcome = entity.Outcome{}

	if clearTokens {
		for _, player := range that.players {
			player.ClearToken()
		}

		that.active = firstPlayerIndex
		that.state = StateAwaitingTokens

		return
	}

	that.startRound()
}

func (that *GameController) playerWithoutToken() *entity.Player {
	for _, player := range that.players {
		if !player.HasToken() {
			return player
		}
	}

	return nil
}

func (that *GameController) readLine() (string, error) {
	line, err := that.input.ReadLine()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) MovesLeft() int {
	return that.movesLeft
}

func (that *GameController) ActivePlayer() *entity.Player {
	return that.players[that.active]
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) Scoreboard() entity.Scoreboard {
	return that.score.Clone()
}

// parseColumn - converts a 1-indexed column entry into a board column.
func parseColumn(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.TrimLeft(trimmed, "0123456789") != "" {
		return 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidEntry, line)
	}

	column, err := strconv.Atoi(trimmed)
	if err != nil || column < 1 || column > entity.Columns {
		return 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidEntry, line)
	}

	return column - 1, nil
}

func firstLetter(line string) rune {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0
	}

	first, _ := utf8.DecodeRuneInString(trimmed)

	return unicode.ToLower(first)
}
