package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/i18n"
	"github.com/inovacc/ghexplorer/internal/model"
)

const (
	// StorageKey holds the serialized repository list.
	StorageKey = "GithubExplorer:repositories"

	// CorruptKey receives a stored list that could not be decoded.
	CorruptKey = StorageKey + ":corrupt"
)

// Lookup resolves an owner/name identifier to a repository summary.
type Lookup interface {
	Lookup(ctx context.Context, identifier string) (model.RepositorySummary, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(ctx context.Context, identifier string) (model.RepositorySummary, error)

func (f LookupFunc) Lookup(ctx context.Context, identifier string) (model.RepositorySummary, error) {
	return f(ctx, identifier)
}

// Submission is one accepted query awaiting its lookup.
type Submission struct {
	ID         string
	Identifier string
	StartedAt  time.Time
}

// Result is the outcome of Fetch for a Submission.
type Result struct {
	Submission Submission
	Summary    model.RepositorySummary
	Err        error
}

// Board holds the query text, the error line and the repository list.
type Board struct {
	// QueryText is the current form input.
	QueryText string

	// ErrorMessage is the localized error line; empty means no error.
	ErrorMessage string

	repositories []model.RepositorySummary
	pending      int

	store    database.Store
	lookup   Lookup
	messages i18n.Messages
	logger   *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithMessages selects the language of ErrorMessage.
func WithMessages(m i18n.Messages) Option {
	return func(b *Board) {
		b.messages = m
	}
}

// WithLogger sets the board logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// New loads the board from store and writes the loaded list back.
func New(store database.Store, lookup Lookup, opts ...Option) (*Board, error) {
	b := &Board{
		store:    store,
		lookup:   lookup,
		messages: i18n.New(""),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	repos, err := b.load()
	if err != nil {
		return nil, err
	}

	if err := b.save(repos); err != nil {
		return nil, err
	}

	b.repositories = repos

	return b, nil
}

func (b *Board) load() ([]model.RepositorySummary, error) {
	raw, ok, err := b.store.Get(StorageKey)
	if err != nil {
		return nil, &StorageError{Op: "load", Key: StorageKey, Err: err}
	}

	if !ok {
		return []model.RepositorySummary{}, nil
	}

	repos, err := model.DecodeSummaries([]byte(raw))
	if err == nil {
		return repos, nil
	}

	b.logger.Warn("stored repository list is unreadable, starting empty",
		"key", StorageKey,
		"backup", CorruptKey,
		"error", err,
	)

	// Keep the unreadable value before the initial write-through replaces it
	if err := b.store.Set(CorruptKey, raw); err != nil {
		return nil, &StorageError{Op: "backup", Key: CorruptKey, Err: err}
	}

	return []model.RepositorySummary{}, nil
}

func (b *Board) save(repos []model.RepositorySummary) error {
	data, err := model.EncodeSummaries(repos)
	if err != nil {
		return &StorageError{Op: "encode", Key: StorageKey, Err: err}
	}

	if err := b.store.Set(StorageKey, string(data)); err != nil {
		return &StorageError{Op: "save", Key: StorageKey, Err: err}
	}

	return nil
}

// Repositories returns a copy of the list in display order.
func (b *Board) Repositories() []model.RepositorySummary {
	return slices.Clone(b.repositories)
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.repositories)
}

// HasError reports whether the error line is shown.
func (b *Board) HasError() bool {
	return b.ErrorMessage != ""
}

// Pending returns the number of submissions begun but not completed.
func (b *Board) Pending() int {
	return b.pending
}

// Messages returns the board's message set.
func (b *Board) Messages() i18n.Messages {
	return b.messages
}

// Begin validates identifier. An empty identifier sets the validation
// message and returns a *ValidationError; QueryText is left as is.
func (b *Board) Begin(identifier string) (Submission, error) {
	if identifier == "" {
		b.ErrorMessage = b.messages.Validation()

		return Submission{}, &ValidationError{}
	}

	b.pending++

	sub := Submission{
		ID:         uuid.NewString(),
		Identifier: identifier,
		StartedAt:  time.Now(),
	}

	b.logger.Debug("submission started", "submission", sub.ID, "repository", identifier)

	return sub, nil
}

// Fetch performs the lookup for sub. It is safe to call concurrently with
// other Fetch calls and with Begin/Complete.
func (b *Board) Fetch(ctx context.Context, sub Submission) Result {
	summary, err := b.lookup.Lookup(ctx, sub.Identifier)
	if err == nil {
		if verr := summary.Validate(); verr != nil {
			err = fmt.Errorf("lookup %s returned an invalid repository: %w", sub.Identifier, verr)
		}
	}

	return Result{Submission: sub, Summary: summary, Err: err}
}

// Complete applies res. On success the summary is appended, persisted, and
// both QueryText and ErrorMessage are cleared. On lookup failure only
// ErrorMessage changes. If persisting fails the append is dropped so the
// store and the list stay equal.
func (b *Board) Complete(res Result) error {
	if b.pending > 0 {
		b.pending--
	}

	log := b.logger.With(
		"submission", res.Submission.ID,
		"repository", res.Submission.Identifier,
		"duration_ms", time.Since(res.Submission.StartedAt).Milliseconds(),
	)

	if res.Err != nil {
		b.ErrorMessage = b.messages.LookupFailed()

		log.Warn("repository lookup failed", "error", res.Err)

		return res.Err
	}

	next := append(slices.Clone(b.repositories), res.Summary)

	if err := b.save(next); err != nil {
		b.ErrorMessage = b.messages.SaveFailed()

		log.Error("failed to persist repository list", "error", err)

		return err
	}

	b.repositories = next
	b.ErrorMessage = ""
	b.QueryText = ""

	log.Debug("repository added", "entries", len(next))

	return nil
}

// Submit runs Begin, Fetch and Complete for identifier on the calling goroutine.
func (b *Board) Submit(ctx context.Context, identifier string) error {
	sub, err := b.Begin(identifier)
	if err != nil {
		return err
	}

	return b.Complete(b.Fetch(ctx, sub))
}

// IsValidation reports whether err came from an empty submission.
func IsValidation(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}
