package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
	apperrors "github.com/lk2023060901/assistant-directory/internal/pkg/errors"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"

	"go.uber.org/zap"
)

// SystemPromptTemplate is applied to the assistant name on create
const SystemPromptTemplate = "You are a helpful voice assistant named %s"

// AssistantConn is a single store connection able to run the directory statements
type AssistantConn interface {
	// ListAssistants returns every assistant ordered by name ascending
	ListAssistants(ctx context.Context) ([]*types.Assistant, error)
	// InsertAssistant stores one row and returns it as persisted.
	// It returns ErrCreationFailed when the store hands back no row.
	InsertAssistant(ctx context.Context, assistant *types.Assistant) (*types.Assistant, error)
}

// Connector hands out store connections. Every Acquire is paired with Release.
type Connector interface {
	Acquire(ctx context.Context) (AssistantConn, error)
	Release(conn AssistantConn) error
}

// AssistantUseCase contains business logic for the assistant directory
type AssistantUseCase struct {
	connector Connector
	logger    *logger.Logger
}

// NewAssistantUseCase creates a new assistant use case
func NewAssistantUseCase(connector Connector, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{
		connector: connector,
		logger:    log.Named("assistant"),
	}
}

// CreateAssistantRequest represents a request to create an assistant
type CreateAssistantRequest struct {
	Name string `json:"name"`
}

// Validate validates the create assistant request
func (r *CreateAssistantRequest) Validate() error {
	if r == nil || r.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// ListAssistants lists every assistant ordered by name
func (uc *AssistantUseCase) ListAssistants(ctx context.Context) ([]*types.Assistant, error) {
	var assistants []*types.Assistant

	err := uc.withConn(ctx, func(conn AssistantConn) error {
		var err error
		assistants, err = conn.ListAssistants(ctx)
		return err
	})
	if err != nil {
		return nil, apperrors.NewDataAccessError(err)
	}

	for _, a := range assistants {
		a.NormalizeTools()
	}
	if assistants == nil {
		assistants = []*types.Assistant{}
	}

	return assistants, nil
}

// CreateAssistant validates the request and inserts one assistant
func (uc *AssistantUseCase) CreateAssistant(ctx context.Context, req *CreateAssistantRequest) (*types.Assistant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err)
	}

	assistant := &types.Assistant{
		Name:         req.Name,
		SystemPrompt: fmt.Sprintf(SystemPromptTemplate, req.Name),
		EnabledTools: []string{},
	}

	var created *types.Assistant
	err := uc.withConn(ctx, func(conn AssistantConn) error {
		var err error
		created, err = conn.InsertAssistant(ctx, assistant)
		return err
	})
	switch {
	case errors.Is(err, ErrCreationFailed):
		return nil, apperrors.Wrap(err, apperrors.ErrAssistantCreationFailed)
	case err != nil:
		return nil, apperrors.NewDataAccessError(err)
	case created == nil:
		return nil, apperrors.Wrap(ErrCreationFailed, apperrors.ErrAssistantCreationFailed)
	}

	created.NormalizeTools()

	uc.logger.WithContext(ctx).Info("assistant created",
		zap.String("uuid", created.UUID),
		zap.String("name", created.Name),
	)

	return created, nil
}

// withConn runs fn on a freshly acquired connection and always releases it
func (uc *AssistantUseCase) withConn(ctx context.Context, fn func(conn AssistantConn) error) error {
	conn, err := uc.connector.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := uc.connector.Release(conn); err != nil {
			uc.logger.WithContext(ctx).Warn("failed to release connection", zap.Error(err))
		}
	}()

	return fn(conn)
}
