package livestats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	shotRepo "github.com/archylab/archy/internal/repositories/shot"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"

	"github.com/archylab/archy/internal/models"
)

type service struct {
	shotRepo shotRepo.Repository
	slotRepo slotRepo.Repository
}

// New creates a new live stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ShotRepo == nil {
		return nil, ErrNilShotRepo
	}

	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}

	return &service{
		shotRepo: cfg.ShotRepo,
		slotRepo: cfg.SlotRepo,
	}, nil
}

func (s *service) RecordShot(ctx context.Context, input *RecordShotInput) (*RecordShotOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SlotID == "" {
		return nil, errors.New("slot id is required")
	}

	if _, err := s.slotRepo.GetSlot(ctx, &slotRepo.GetSlotInput{
		SlotID: input.SlotID,
	}); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	shot, err := s.shotRepo.CreateShot(ctx, &shotRepo.CreateShotInput{
		SlotID:  input.SlotID,
		X:       input.X,
		Y:       input.Y,
		Score:   input.Score,
		ArrowID: input.ArrowID,
	})
	if err != nil {
		return nil, err
	}

	return &RecordShotOutput{
		Shot: shot,
	}, nil
}

func (s *service) GetLiveStat(ctx context.Context, input *GetLiveStatInput) (*GetLiveStatOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SlotID == "" {
		return nil, errors.New("slot id is required")
	}

	scores, stats, err := s.currentStats(ctx, input.SlotID)
	if err != nil {
		return nil, err
	}

	return &GetLiveStatOutput{
		LiveStat: &models.LiveStat{
			Scores: scores,
			Stats:  stats,
		},
	}, nil
}

func (s *service) Stream(ctx context.Context, input *StreamInput) (*StreamOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SlotID == "" {
		return nil, errors.New("slot id is required")
	}

	if _, err := s.slotRepo.GetSlot(ctx, &slotRepo.GetSlotInput{
		SlotID: input.SlotID,
	}); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	sub, err := s.shotRepo.Subscribe(ctx, &shotRepo.SubscribeInput{
		SlotID: input.SlotID,
	})
	if err != nil {
		return nil, err
	}

	events := make(chan *models.LiveStat)
	errs := make(chan error, 1)

	go s.pump(ctx, input.SlotID, sub, events, errs)

	return &StreamOutput{
		Events: events,
		Errs:   errs,
	}, nil
}

// pump drives one stream: change-event payloads are queued FIFO and
// each one is turned into exactly one emission with a freshly
// recomputed aggregate. Nothing is dropped or coalesced, so a slow
// consumer sees every shot, just later.
func (s *service) pump(ctx context.Context, slotID string, sub shotRepo.Subscription, events chan<- *models.LiveStat, errs chan<- error) {
	defer close(events)
	defer func() {
		if err := sub.Close(); err != nil {
			slog.Warn("failed to close shot subscription", "slot_id", slotID, "error", err)
		}
	}()

	subEvents := sub.Events()

	// first emission is the snapshot as of subscribe time, so the
	// consumer has a baseline even before any shot lands
	snapshot, err := s.GetLiveStat(ctx, &GetLiveStatInput{SlotID: slotID})
	if err != nil {
		errs <- err
		return
	}

	// A shot committed between subscribe and the snapshot read is in the
	// snapshot and has a change event in flight; remember the snapshot's
	// shot IDs so that event is not emitted a second time
	inSnapshot := make(map[string]struct{}, len(snapshot.LiveStat.Scores))
	for _, score := range snapshot.LiveStat.Scores {
		inSnapshot[score.ShotID] = struct{}{}
	}

	var pending [][]byte
	lost := false

	if !deliver(ctx, events, subEvents, snapshot.LiveStat, &pending, &lost) {
		return
	}

	for {
		if len(pending) == 0 {
			if lost {
				errs <- ErrChannelLost
				return
			}

			select {
			case payload, ok := <-subEvents:
				if !ok {
					lost = true
					subEvents = nil
					continue
				}
				pending = append(pending, payload)
			case <-ctx.Done():
				return
			}
			continue
		}

		payload := pending[0]
		pending = pending[1:]

		scores := parseShotBatch(slotID, payload)
		scores = dropSeen(scores, inSnapshot)
		if len(scores) == 0 {
			continue
		}

		_, stats, err := s.currentStats(ctx, slotID)
		if err != nil {
			errs <- err
			return
		}

		emission := &models.LiveStat{
			Scores: scores,
			Stats:  stats,
		}
		if !deliver(ctx, events, subEvents, emission, &pending, &lost) {
			return
		}
	}
}

// deliver blocks until the emission is consumed, while still draining
// the subscription so pub/sub never backs up behind a slow consumer.
// Returns false when the stream should stop.
func deliver(ctx context.Context, events chan<- *models.LiveStat, subEvents <-chan []byte, emission *models.LiveStat, pending *[][]byte, lost *bool) bool {
	for {
		select {
		case events <- emission:
			return true
		case payload, ok := <-subEvents:
			if !ok {
				*lost = true
				subEvents = nil
				continue
			}
			*pending = append(*pending, payload)
		case <-ctx.Done():
			return false
		}
	}
}

func (s *service) currentStats(ctx context.Context, slotID string) ([]*models.ShotScore, models.Stats, error) {
	output, err := s.shotRepo.GetScores(ctx, &shotRepo.GetScoresInput{
		SlotID: slotID,
	})
	if err != nil {
		return nil, models.Stats{}, err
	}

	return output.Scores, computeStats(slotID, output.Scores), nil
}

// computeStats recomputes the aggregate from the full score history.
// Count covers every shot; Total, Max and Mean only the scored ones.
func computeStats(slotID string, scores []*models.ShotScore) models.Stats {
	stats := models.Stats{
		SlotID: slotID,
		Count:  len(scores),
	}

	scored := 0
	for _, score := range scores {
		if score.Score == nil {
			continue
		}
		scored++
		stats.Total += *score.Score
		if *score.Score > stats.Max {
			stats.Max = *score.Score
		}
	}

	if scored > 0 {
		stats.Mean = float64(stats.Total) / float64(scored)
	}

	return stats
}

// dropSeen filters out scores whose shot already appeared in the
// snapshot, so a consumer summing deltas never counts a shot twice
func dropSeen(scores []*models.ShotScore, seen map[string]struct{}) []*models.ShotScore {
	if len(seen) == 0 {
		return scores
	}

	kept := scores[:0]
	for _, score := range scores {
		if _, dup := seen[score.ShotID]; dup {
			continue
		}
		kept = append(kept, score)
	}
	return kept
}

// parseShotBatch decodes a change-event payload into its shot scores.
// Payloads are either a single score object or an array of them;
// anything malformed is logged and skipped rather than tearing the
// stream down.
func parseShotBatch(slotID string, payload []byte) []*models.ShotScore {
	var scores []*models.ShotScore
	if err := json.Unmarshal(payload, &scores); err != nil {
		var single models.ShotScore
		if err := json.Unmarshal(payload, &single); err != nil {
			slog.Warn("dropping malformed change event", "slot_id", slotID, "error", err)
			return nil
		}
		scores = []*models.ShotScore{&single}
	}

	kept := scores[:0]
	for _, score := range scores {
		if score == nil || score.ShotID == "" {
			slog.Warn("dropping change event without shot id", "slot_id", slotID)
			continue
		}
		kept = append(kept, score)
	}

	return kept
}
