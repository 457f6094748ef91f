package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
)

type emptyArgs struct{}

type listContactsResult struct {
	Contacts []contact.Contact `json:"contacts"`
}

type listDealsResult struct {
	Deals []deal.Deal `json:"deals"`
}

type listActivitiesResult struct {
	Activities []activity.Activity `json:"activities"`
}

type createActivityArgs struct {
	Type        string `json:"type" jsonschema:"activity type: call, email, meeting, or task"`
	Title       string `json:"title" jsonschema:"short activity title"`
	Description string `json:"description,omitempty" jsonschema:"longer description"`
	ContactID   *int64 `json:"contact_id,omitempty" jsonschema:"ID of the related contact"`
	DealID      *int64 `json:"deal_id,omitempty" jsonschema:"ID of the related deal"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"due timestamp in RFC 3339 format"`
	Priority    string `json:"priority,omitempty" jsonschema:"low, medium, or high (default medium)"`
}

type completeActivityArgs struct {
	ID        int64 `json:"id" jsonschema:"activity ID"`
	Completed *bool `json:"completed,omitempty" jsonschema:"completion flag, defaults to true"`
}

type completeActivityResult struct {
	Success bool `json:"success"`
}

type updateDealStageArgs struct {
	ID    int64  `json:"id" jsonschema:"deal ID"`
	Stage string `json:"stage" jsonschema:"pipeline stage: lead, qualified, proposal, negotiation, won, or lost"`
}

func registerTools(server *sdkmcp.Server, svc Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "crm_dashboard",
		Description: "Get pipeline totals, weighted value, deals by stage, and recent records",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyArgs) (*sdkmcp.CallToolResult, *dashboard.Summary, error) {
		summary, err := svc.Dashboard.Summary(ctx)
		if err != nil {
			return nil, nil, err
		}
		return nil, summary, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_contacts",
		Description: "List all contacts with their company names, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyArgs) (*sdkmcp.CallToolResult, listContactsResult, error) {
		contacts, err := svc.Contacts.List(ctx)
		if err != nil {
			return nil, listContactsResult{}, err
		}
		return nil, listContactsResult{Contacts: contacts}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_deals",
		Description: "List all deals with stage, value, probability, and related names, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyArgs) (*sdkmcp.CallToolResult, listDealsResult, error) {
		deals, err := svc.Deals.List(ctx)
		if err != nil {
			return nil, listDealsResult{}, err
		}
		return nil, listDealsResult{Deals: deals}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List all activities ordered by due date",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyArgs) (*sdkmcp.CallToolResult, listActivitiesResult, error) {
		activities, err := svc.Activities.List(ctx)
		if err != nil {
			return nil, listActivitiesResult{}, err
		}
		return nil, listActivitiesResult{Activities: activities}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_activity",
		Description: "Create a new activity (call, email, meeting, or task)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args createActivityArgs) (*sdkmcp.CallToolResult, *activity.Activity, error) {
		req := activity.CreateRequest{
			Type:        activity.Type(args.Type),
			Title:       args.Title,
			Description: args.Description,
			ContactID:   args.ContactID,
			DealID:      args.DealID,
			Priority:    activity.Priority(args.Priority),
		}
		if args.DueDate != "" {
			due, err := time.Parse(time.RFC3339, args.DueDate)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid due_date: %w", err)
			}
			req.DueDate = &due
		}

		a, err := svc.Activities.Create(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		return nil, a, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_activity",
		Description: "Mark an activity completed (or pending again with completed=false)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args completeActivityArgs) (*sdkmcp.CallToolResult, completeActivityResult, error) {
		completed := true
		if args.Completed != nil {
			completed = *args.Completed
		}
		if err := svc.Activities.SetCompleted(ctx, args.ID, completed); err != nil {
			return nil, completeActivityResult{}, err
		}
		return nil, completeActivityResult{Success: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_deal_stage",
		Description: "Move a deal to a different pipeline stage",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateDealStageArgs) (*sdkmcp.CallToolResult, *deal.Deal, error) {
		d, err := svc.Deals.ChangeStage(ctx, args.ID, deal.Stage(args.Stage))
		if err != nil {
			return nil, nil, err
		}
		return nil, d, nil
	})
}
