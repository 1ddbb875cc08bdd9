package reviewing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agritalk/cropmd/internal/platform/action"
	"github.com/agritalk/cropmd/internal/platform/metrics"
	"github.com/agritalk/cropmd/internal/platform/validate"
)

// maxIDAttempts bounds how often a colliding generated ID is retried.
const maxIDAttempts = 5

// Store is the only thing allowed to change the review list.
// Every mutation updates memory first and then queues the whole list to be
// written to Storage in the background, a failed write never undoes a change.
type Store struct {
	storage Storage
	key     string
	log     *slog.Logger
	newID   func() (uuid.UUID, error)
	actions *action.Mapper
	metrics *metrics.Store
	onError func(error)

	maxRetries     uint64
	initialBackoff time.Duration

	mu      sync.Mutex
	loaded  bool
	closed  bool
	reviews []Review
	draft   Draft
	state   DraftState
	edits   uint64 // bumped on every change to the draft
	version uint64
	writer  *writer
}

type Option func(s *Store)

// WithLogger sets where the store logs, defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithKey sets the storage key the list is kept under, defaults to DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithRetry sets how many times a failed snapshot write is retried, and the first wait between them.
func WithRetry(maxRetries uint64, initialBackoff time.Duration) Option {
	return func(s *Store) {
		s.maxRetries = maxRetries
		s.initialBackoff = initialBackoff
	}
}

// WithIDGenerator replaces the UUIDv7 generator used for new reviews.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithActionMapper overrides the named steps the store runs before mutating.
func WithActionMapper(m *action.Mapper) Option {
	return func(s *Store) {
		s.actions = m
	}
}

func WithMetrics(m *metrics.Store) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithWriteErrorHook is called with a *PersistenceWriteError whenever a snapshot is given up on.
func WithWriteErrorHook(fn func(error)) Option {
	return func(s *Store) {
		s.onError = fn
	}
}

func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:        storage,
		key:            DefaultKey,
		log:            slog.Default(),
		newID:          uuid.NewV7,
		actions:        &action.Mapper{},
		maxRetries:     3,
		initialBackoff: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.actions.Merge(storeActions())
	if s.metrics == nil {
		s.metrics = metrics.NewStore(nil)
	}
	s.log = s.log.With("component", "reviewing.Store", "key", s.key)

	return s
}

// Load reads the stored list. It has to be called once, before anything else.
//
// Nothing stored yet gives an empty list. A stored value that can't be
// decoded also gives an empty list, and a *DeserializationError is returned
// so the caller can report it, but the store is loaded and usable.
// An error reading from Storage leaves the store unloaded so Load can be
// retried, starting over empty would overwrite the stored list on the next change.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.loaded {
		return ErrAlreadyLoaded
	}

	value, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read reviews from storage: %w", err)
	}

	var loadErr error
	reviews := []Review{}
	if ok {
		decoded, err := decodeReviews(ctx, value)
		if err != nil {
			loadErr = &DeserializationError{Key: s.key, Err: err}
			s.log.Error("failed to decode stored reviews, starting with an empty list", "error", err)
		} else {
			reviews = decoded
		}
	}

	s.reviews = reviews
	s.loaded = true
	s.writer = newWriter(s.storage, s.key, s.log, s.metrics, s.maxRetries, s.initialBackoff, s.onError)
	s.metrics.Reviews.Set(float64(len(s.reviews)))
	s.log.Info("loaded reviews", "count", len(s.reviews), "found", ok)

	return loadErr
}

// Reviews returns a copy of the list, newest first.
func (s *Store) Reviews() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.reviews)
}

// Get returns the review with id or a *NotFoundError.
func (s *Store) Get(id uuid.UUID) (Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Review{}, &NotFoundError{ID: id}
	}

	return s.reviews[i], nil
}

// Draft returns the draft currently being composed or edited.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft
}

func (s *Store) State() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// SetRating records a star tap on the draft.
func (s *Store) SetRating(rating int) error {
	if rating < 1 || rating > 5 {
		return &PreconditionError{Err: fmt.Errorf("rating must be between 1 and 5, got %d", rating)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Rating = rating
	s.compose()
	s.edits++

	return nil
}

// SetFeedback records a change to the draft's text.
func (s *Store) SetFeedback(feedback string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Feedback = feedback
	s.compose()
	s.edits++
}

func (s *Store) compose() {
	if s.state == DraftEmpty {
		s.state = DraftComposing
	}
}

// SubmitDraft submits the store's own draft, see Submit.
// If the draft changes while it's being submitted, including by another
// SubmitDraft having already turned it into a review, ErrDraftChanged is
// returned and nothing is changed.
func (s *Store) SubmitDraft(ctx context.Context) (Review, Outcome, error) {
	s.mu.Lock()
	d, edits := s.draft, s.edits
	s.mu.Unlock()

	return s.submit(ctx, d, &edits)
}

// Submit adds the draft as a new review at the top of the list, or when the
// draft is editing, updates that review where it is.
// A rating outside 1-5 is refused with a *PreconditionError and an edit of a
// review that is gone with a *NotFoundError, neither changes anything.
// On success the draft is cleared and the list is queued for writing.
func (s *Store) Submit(ctx context.Context, d Draft) (Review, Outcome, error) {
	return s.submit(ctx, d, nil)
}

// submit does the work for Submit and SubmitDraft. When edits is set the
// submit only goes ahead if the owned draft is still at that edit.
func (s *Store) submit(ctx context.Context, d Draft, edits *uint64) (Review, Outcome, error) {
	if err := s.ready(); err != nil {
		return Review{}, 0, err
	}

	if err := s.preSubmit(ctx, d); err != nil {
		s.metrics.Mutations.WithLabelValues(operation(d), "precondition").Inc()
		return Review{}, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Review{}, 0, ErrClosed
	}
	if edits != nil && *edits != s.edits {
		s.metrics.Mutations.WithLabelValues(operation(d), "draft_changed").Inc()
		return Review{}, 0, ErrDraftChanged
	}

	var (
		review  Review
		outcome Outcome
		i       int
	)
	if d.IsEditing() {
		i = s.indexOf(d.EditingID)
		if i < 0 {
			s.metrics.Mutations.WithLabelValues("update", "not_found").Inc()
			return Review{}, 0, &NotFoundError{ID: d.EditingID}
		}

		review = s.reviews[i].Update(d)
		outcome = OutcomeUpdated
	} else {
		id, err := s.uniqueID()
		if err != nil {
			return Review{}, 0, err
		}

		review = Review{ID: id, Rating: d.Rating, Feedback: d.Feedback}
		outcome = OutcomeAdded
	}

	// The pre-submit actions can be swapped out, what gets stored is always checked.
	if err := validate.Struct(ctx, review); err != nil {
		s.metrics.Mutations.WithLabelValues(operation(d), "precondition").Inc()
		return Review{}, 0, &PreconditionError{Err: fmt.Errorf("invalid review: %w", err)}
	}

	if outcome == OutcomeUpdated {
		s.reviews[i] = review
	} else {
		s.reviews = slices.Insert(s.reviews, 0, review)
	}

	s.clearDraft()
	s.persist()
	s.metrics.Mutations.WithLabelValues(operation(d), "ok").Inc()

	return review, outcome, nil
}

func (s *Store) preSubmit(ctx context.Context, d Draft) error {
	submit, err := action.Lookup[submitAction](s.actions, "Submit")
	if err != nil {
		return fmt.Errorf("failed to find pre-submit action: %w", err)
	}

	if err := submit(ctx, d); err != nil {
		return &PreconditionError{Err: fmt.Errorf("pre-submit action failed: %w", err)}
	}

	return nil
}

// Delete removes the review for good.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	if err := s.ready(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutations.WithLabelValues("delete", "not_found").Inc()
		return &NotFoundError{ID: id}
	}

	s.reviews = slices.Delete(s.reviews, i, i+1)
	// An edit of the review we just removed could only ever fail, so drop it.
	if s.draft.EditingID == id {
		s.clearDraft()
	}
	s.persist()
	s.metrics.Mutations.WithLabelValues("delete", "ok").Inc()

	return nil
}

// BeginEdit puts the review's current values in the draft and marks it as editing that review.
func (s *Store) BeginEdit(id uuid.UUID) (Draft, error) {
	if err := s.ready(); err != nil {
		return Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Draft{}, &NotFoundError{ID: id}
	}

	r := s.reviews[i]
	s.draft = Draft{Rating: r.Rating, Feedback: r.Feedback, EditingID: r.ID}
	s.state = DraftEditing
	s.edits++

	return s.draft, nil
}

// CancelEdit throws the draft away without touching the list.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearDraft()
}

// clearDraft must be called with mu held.
func (s *Store) clearDraft() {
	s.draft = Draft{}
	s.state = DraftEmpty
	s.edits++
}

// Flush waits for every change made so far to be written, returning the
// error of the last write if it was given up on.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	w := s.writer
	s.mu.Unlock()

	if w == nil {
		return ErrNotLoaded
	}

	return w.flush(ctx)
}

// Close writes anything still queued and stops the background writer.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	w := s.writer
	s.mu.Unlock()

	if w != nil {
		w.close()
	}

	return nil
}

func (s *Store) ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return ErrClosed
	case !s.loaded:
		return ErrNotLoaded
	default:
		return nil
	}
}

// persist queues the current list. Must be called with mu held, only the
// encoding happens under the lock, the write itself is done by the writer.
func (s *Store) persist() {
	s.version++
	s.metrics.Reviews.Set(float64(len(s.reviews)))

	data, err := encodeReviews(s.reviews)
	if err != nil {
		s.log.Error("failed to encode reviews for persisting", "version", s.version, "error", err)
		return
	}

	if !s.writer.enqueue(snapshot{version: s.version, data: data}) {
		s.log.Warn("dropped snapshot, writer is stopped", "version", s.version)
	}
}

func (s *Store) indexOf(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}

	return slices.IndexFunc(s.reviews, func(r Review) bool { return r.ID == id })
}

func (s *Store) uniqueID() (uuid.UUID, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to generate review id: %w", err)
		}

		if id != uuid.Nil && s.indexOf(id) < 0 {
			return id, nil
		}
	}

	return uuid.Nil, errors.New("failed to generate a review id that isn't already in use")
}

func operation(d Draft) string {
	if d.IsEditing() {
		return "update"
	}
	return "add"
}
