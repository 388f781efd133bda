package state

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/pagination"
)

// StateKey is the fixed key the view state is stored under.
const StateKey = "listState"

// ErrStateCorrupted indicates a persisted snapshot that cannot be used.
var ErrStateCorrupted = errors.New("persisted view state corrupted")

//go:embed viewstate.schema.json
var viewStateSchemaJSON string

//nolint:gochecknoglobals // Compiled once; the schema is embedded and immutable.
var viewStateSchema = jsonschema.MustCompileString("viewstate.schema.json", viewStateSchemaJSON)

// ViewStore saves and restores pagination.ViewState through a KeyValueStore.
type ViewStore struct {
	kv KeyValueStore
}

// NewViewStore wraps kv.
func NewViewStore(kv KeyValueStore) *ViewStore {
	return &ViewStore{kv: kv}
}

// Location describes where the snapshot lives.
func (s *ViewStore) Location() string {
	return s.kv.Location()
}

// Save writes v under StateKey. Failures are logged and otherwise ignored; the
// caller's in-memory state stays authoritative for the session.
func (s *ViewStore) Save(ctx context.Context, v pagination.ViewState) {
	logger := logging.FromContext(ctx)

	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn().Str("component", "state").Err(err).Msg("could not encode view state")
		return
	}

	if err := s.kv.Set(StateKey, data); err != nil {
		logger.Warn().
			Str("component", "state").
			Str("location", s.kv.Location()).
			Err(err).
			Msg("could not persist view state, continuing with in-memory state")
		return
	}

	logger.Debug().
		Str("component", "state").
		Int("current_page", v.CurrentPage).
		Int("posts_per_page", v.PostsPerPage).
		Str("sort_order", v.SortOrder.String()).
		Msg("view state saved")
}

// Load reads the snapshot under StateKey. It returns false when nothing usable was
// stored: a missing key, unreadable store, invalid JSON or a payload that violates
// the schema. It never panics.
func (s *ViewStore) Load(ctx context.Context) (pagination.ViewState, bool) {
	logger := logging.FromContext(ctx)

	data, err := s.kv.Get(StateKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			logger.Debug().Str("component", "state").Msg("no persisted view state")
		} else {
			logger.Warn().Str("component", "state").Err(err).Msg("could not read persisted view state")
		}
		return pagination.ViewState{}, false
	}

	v, err := Decode(data)
	if err != nil {
		logger.Warn().
			Str("component", "state").
			Str("location", s.kv.Location()).
			Err(err).
			Msg("ignoring persisted view state")
		return pagination.ViewState{}, false
	}

	return v, true
}

// Reset removes the persisted snapshot.
func (s *ViewStore) Reset(_ context.Context) error {
	if err := s.kv.Delete(StateKey); err != nil {
		return fmt.Errorf("resetting view state: %w", err)
	}
	return nil
}

// Decode parses and validates a persisted snapshot. All failures wrap ErrStateCorrupted.
func Decode(data []byte) (pagination.ViewState, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return pagination.ViewState{}, fmt.Errorf("%w: %w", ErrStateCorrupted, err)
	}

	if err := viewStateSchema.Validate(raw); err != nil {
		return pagination.ViewState{}, fmt.Errorf("%w: %w", ErrStateCorrupted, err)
	}

	var v pagination.ViewState
	if err := json.Unmarshal(data, &v); err != nil {
		return pagination.ViewState{}, fmt.Errorf("%w: %w", ErrStateCorrupted, err)
	}

	if err := v.Validate(); err != nil {
		return pagination.ViewState{}, fmt.Errorf("%w: %w", ErrStateCorrupted, err)
	}

	return v, nil
}
