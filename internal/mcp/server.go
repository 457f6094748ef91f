// Package mcp exposes the CRM to agent clients over the Model Context
// Protocol. Tools are thin wrappers over the same domain services the
// HTTP API uses.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
)

const serverInstructions = `pipecrm gives you read and write access to a CRM:
contacts, companies, deals, and activities. Use crm_dashboard for pipeline
totals and stage breakdowns, the list_* tools to browse records, and
create_activity / complete_activity / update_deal_stage to make changes.
Monetary values are plain numbers; timestamps are RFC 3339.`

// Services contains the domain services the MCP tools delegate to.
type Services struct {
	Contacts   *contact.Service
	Deals      *deal.Service
	Activities *activity.Service
	Dashboard  *dashboard.Service
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all CRM tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pipecrm",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerTools(server, cfg.Services)

	return server
}
