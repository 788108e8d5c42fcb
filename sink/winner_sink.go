package sink

import (
	"auction-lab/contract"
	"auction-lab/domain/event"
	"auction-lab/repositories"
	"context"
	"log/slog"
)

var _ contract.EventSink = (*WinnerSink)(nil)

// WinnerSink listens for terminal auction states and appends the leading
// contributor to the persistent winner log. Windows that closed without a
// single contribution leave no record.
type WinnerSink struct {
	repo *repositories.WinnerRepository
	log  *slog.Logger
}

func NewWinnerSink(repo *repositories.WinnerRepository, log *slog.Logger) *WinnerSink {
	return &WinnerSink{repo: repo, log: log}
}

func (s *WinnerSink) Consume(ctx context.Context, e event.DomainEvent) error {
	state, ok := e.(event.AuctionState)
	if !ok || !state.Final || len(state.Top) == 0 {
		return nil
	}

	winner := state.Top[0]
	record := repositories.WinnerRecord{
		Room:        state.Room,
		Title:       state.Title,
		EndedAt:     state.EndsAt,
		User:        winner.User,
		Avatar:      winner.Avatar,
		Total:       winner.Total,
		TotalRaised: state.Total,
	}
	if err := s.repo.Append(record); err != nil {
		// Transient storage failure: fanout logs it, the window outcome
		// is still visible to observers through the pushed final state.
		return err
	}
	s.log.Info("winner recorded", "room", state.Room, "user", winner.User, "total", winner.Total)
	return nil
}
