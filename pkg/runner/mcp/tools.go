package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListActivitiesTool(srv, svc)
	registerCreateActivityTool(srv, svc)
	registerRenameActivityTool(srv, svc)
	registerDeleteActivityTool(srv, svc)
	registerToggleActivityTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerActivityLogTool(srv, svc)
	registerFindActivityTool(srv, svc)
}

func registerListActivitiesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_activities",
		mcp.WithDescription("List every tracked activity with its completion mark for a date."),
		mcp.WithString("date",
			mcp.Description("Date to read completion marks for, formatted YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := parseDate(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
		}

		activities, err := svc.ListActivities(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":       date.String(),
			"activities": activities,
			"count":      len(activities),
		})
	})
}

func registerCreateActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_activity",
		mcp.WithDescription("Create a new activity to track. Names must be unique."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the activity, for example Exercise."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CreateActivity(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRenameActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_activity",
		mcp.WithDescription("Rename an existing activity. Completion history is untouched."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to rename."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New activity name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RenameActivity(ctx, id, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_activity",
		mcp.WithDescription("Delete an activity from the tracked set. Past completion records are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteActivity(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": id,
		})
	})
}

func registerToggleActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_activity",
		mcp.WithDescription("Flip the completion mark for an activity on a date."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to toggle."),
		),
		mcp.WithString("date",
			mcp.Description("Date to toggle, formatted YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, date, err := svc.ToggleActivity(ctx, id, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":     date,
			"activity": dto,
		})
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Read the full completion state for one date."),
		mcp.WithString("date",
			mcp.Description("Date to read, formatted YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Day(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerActivityLogTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"activity_log",
		mcp.WithDescription("Per-date completion counts across a calendar year."),
		mcp.WithNumber("year",
			mcp.Description("Calendar year to summarize. Defaults to the current year."),
			mcp.Min(1),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := request.GetInt("year", timeutil.Today().Year)

		dto, err := svc.Log(ctx, year)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerFindActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"find_activity",
		mcp.WithDescription("Resolve an activity by id or case-insensitive name."),
		mcp.WithString("ref",
			mcp.Required(),
			mcp.Description("Activity id or name to look up."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("ref")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.FindActivity(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
