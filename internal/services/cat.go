package services

//go:generate mockgen -source=cat.go -destination=cat_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/segmentio/kafka-go"
)

// CatReader defines read operations for cats.
type CatReader interface {
	List(ctx context.Context) ([]models.CatDB, error)             // All cats, newest first
	GetByID(ctx context.Context, id int64) (*models.CatDB, error) // Cat with owner summary or nil
}

// CatWriter defines write operations for cats.
type CatWriter interface {
	Save(ctx context.Context, cat *models.CatDB) (int64, error)
	Update(ctx context.Context, cat *models.CatDB) error
	Delete(ctx context.Context, id int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CatService manages cats and publishes their lifecycle events.
type CatService struct {
	reader      CatReader
	writer      CatWriter
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
	now         func() time.Time
}

// AfterCommitFunc schedules fn to run once the work done under ctx is
// durable, and never if it is rolled back.
type AfterCommitFunc func(ctx context.Context, fn func())

// CatOpt configures a CatService.
type CatOpt func(*CatService)

// WithAfterCommit holds lifecycle events back until the store commits.
// Without it events are published right after each write.
func WithAfterCommit(afterCommit AfterCommitFunc) CatOpt {
	return func(s *CatService) {
		s.afterCommit = afterCommit
	}
}

// NewCatService creates a new CatService. kafkaWriter may be nil.
func NewCatService(reader CatReader, writer CatWriter, kafkaWriter KafkaWriter, opts ...CatOpt) *CatService {
	s := &CatService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
		now:         utcNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishEvent publishes a cat event to Kafka once the write is committed.
// Failures are logged only.
func (s *CatService) publishEvent(ctx context.Context, cat *models.CatDB, operation string) {
	event := models.CatEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		CatID:     cat.ID,
		UserID:    cat.UserID,
		Operation: operation,
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal cat event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	s.afterCommit(ctx, func() {
		if err := s.kafkaWriter.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
			logger.Log.Errorw("Failed to publish cat event to Kafka", "event_id", event.EventID, "error", err)
			return
		}
		logger.Log.Infow("Cat event published to Kafka", "event_id", event.EventID, "cat_id", cat.ID, "operation", operation)
	})
}

// normalizeCat trims text fields; blank optional fields become nil.
func normalizeCat(in models.CatInput) models.CatInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Personality = strings.TrimSpace(in.Personality)
	in.Origin = trimOptional(in.Origin)
	in.Color = trimOptional(in.Color)
	in.Description = trimOptional(in.Description)
	return in
}

// List returns all cats with their owners, newest first.
func (s *CatService) List(ctx context.Context) ([]models.CatDB, error) {
	cats, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list cats", "error", err)
		return nil, err
	}
	if cats == nil {
		cats = []models.CatDB{}
	}
	return cats, nil
}

// GetByID returns a cat with its owner.
func (s *CatService) GetByID(ctx context.Context, id int64) (*models.CatDB, error) {
	cat, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get cat", "cat_id", id, "error", err)
		return nil, err
	}
	if cat == nil {
		return nil, ErrCatNotFound
	}
	return cat, nil
}

// Create stores a new cat owned by caller.
func (s *CatService) Create(ctx context.Context, caller *models.UserDB, in models.CatInput) (*models.CatDB, error) {
	if caller == nil {
		return nil, ErrAuthenticationRequired
	}

	in = normalizeCat(in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	cat := &models.CatDB{
		UserID:    caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	cat.SetInput(in)

	id, err := s.writer.Save(ctx, cat)
	if err != nil {
		logger.Log.Errorw("failed to save cat", "user_id", caller.ID, "error", err)
		return nil, err
	}

	created, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read created cat", "cat_id", id, "error", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrCatNotFound
	}

	s.publishEvent(ctx, created, models.CatCreated)

	return created, nil
}

// ownedCat loads the cat with id and checks that caller owns it.
func (s *CatService) ownedCat(ctx context.Context, caller *models.UserDB, id int64) (*models.CatDB, error) {
	if caller == nil {
		return nil, ErrAuthenticationRequired
	}

	cat, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cat.UserID != caller.ID {
		logger.Log.Infow("cat modification denied", "cat_id", id, "owner_id", cat.UserID, "caller_id", caller.ID)
		return nil, ErrForbidden
	}
	return cat, nil
}

// Update applies the fields present in patch to the cat with id.
func (s *CatService) Update(ctx context.Context, caller *models.UserDB, id int64, patch models.CatPatch) (*models.CatDB, error) {
	cat, err := s.ownedCat(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(cat)

	in := normalizeCat(cat.Input())
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	cat.SetInput(in)
	cat.UpdatedAt = s.now()

	if err := s.writer.Update(ctx, cat); err != nil {
		logger.Log.Errorw("failed to update cat", "cat_id", id, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, cat, models.CatUpdated)

	return cat, nil
}

// Delete removes the cat with id and returns the removed record.
func (s *CatService) Delete(ctx context.Context, caller *models.UserDB, id int64) (*models.CatDB, error) {
	cat, err := s.ownedCat(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete cat", "cat_id", id, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, cat, models.CatDeleted)

	return cat, nil
}
