package data

import (
	"context"
	"fmt"

	"github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	"github.com/lk2023060901/assistant-directory/internal/assistant/models"
	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
	"github.com/lk2023060901/assistant-directory/internal/pkg/database"

	"gorm.io/datatypes"
)

// Both statements project the same columns. NULL system_prompt and
// enabled_tools come back as '' and [].
const (
	assistantColumns = `uuid::text AS uuid, name, COALESCE(system_prompt, '') AS system_prompt, voice_id, COALESCE(enabled_tools, '[]'::jsonb) AS enabled_tools`

	listAssistantsSQL = `SELECT ` + assistantColumns + ` FROM assistants ORDER BY name ASC`

	insertAssistantSQL = `INSERT INTO assistants (name, system_prompt, enabled_tools) VALUES (?, ?, ?) RETURNING ` + assistantColumns
)

// PostgresConnector hands out dedicated PostgreSQL connections
type PostgresConnector struct {
	db *database.DB
}

// NewPostgresConnector creates a connector over the gorm pool
func NewPostgresConnector(db *database.DB) *PostgresConnector {
	return &PostgresConnector{db: db}
}

// Acquire takes one connection from the pool
func (c *PostgresConnector) Acquire(ctx context.Context) (biz.AssistantConn, error) {
	conn, err := c.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &postgresConn{conn: conn}, nil
}

// Release hands the connection back to the pool
func (c *PostgresConnector) Release(conn biz.AssistantConn) error {
	pc, ok := conn.(*postgresConn)
	if !ok {
		return fmt.Errorf("unexpected connection type %T", conn)
	}
	return c.db.Release(pc.conn)
}

// HealthCheck pings the database
func (c *PostgresConnector) HealthCheck(ctx context.Context) error {
	return c.db.HealthCheck(ctx)
}

type postgresConn struct {
	conn *database.Conn
}

func (p *postgresConn) ListAssistants(ctx context.Context) ([]*types.Assistant, error) {
	if p.conn.DB == nil {
		return nil, errConnReleased
	}

	var rows []models.Assistant
	if err := p.conn.DB.WithContext(ctx).Raw(listAssistantsSQL).Scan(&rows).Error; err != nil {
		return nil, err
	}

	assistants := make([]*types.Assistant, 0, len(rows))
	for i := range rows {
		assistants = append(assistants, toDomain(&rows[i]))
	}
	return assistants, nil
}

func (p *postgresConn) InsertAssistant(ctx context.Context, assistant *types.Assistant) (*types.Assistant, error) {
	if p.conn.DB == nil {
		return nil, errConnReleased
	}

	model := toModel(assistant)

	var row models.Assistant
	result := p.conn.DB.WithContext(ctx).
		Raw(insertAssistantSQL, model.Name, model.SystemPrompt, model.EnabledTools).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, biz.ErrCreationFailed
	}

	return toDomain(&row), nil
}

// toModel converts domain assistant to the row model
func toModel(assistant *types.Assistant) *models.Assistant {
	tools := assistant.EnabledTools
	if tools == nil {
		tools = []string{}
	}
	return &models.Assistant{
		UUID:         assistant.UUID,
		Name:         assistant.Name,
		SystemPrompt: assistant.SystemPrompt,
		VoiceID:      assistant.VoiceID,
		EnabledTools: datatypes.JSONSlice[string](tools),
	}
}

// toDomain converts the row model to domain assistant
func toDomain(model *models.Assistant) *types.Assistant {
	assistant := &types.Assistant{
		UUID:         model.UUID,
		Name:         model.Name,
		SystemPrompt: model.SystemPrompt,
		VoiceID:      model.VoiceID,
		EnabledTools: []string(model.EnabledTools),
	}
	assistant.NormalizeTools()
	return assistant
}
