package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerActivitiesResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerLogResource(srv, svc)
}

func registerActivitiesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"daila://activities",
		"Activities",
		mcp.WithResourceDescription("All tracked activities with today's completion marks."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		activities, err := svc.ListActivities(ctx, timeutil.Today())
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"activities": activities,
			"count":      len(activities),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"daila://days/{date}",
		"Day Completion",
		mcp.WithTemplateDescription("Completion state for a single date (YYYY-MM-DD)."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		dto, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"day": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerLogResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"daila://log",
		"Activity Log",
		mcp.WithResourceDescription("Per-date completion counts for the current year."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Log(ctx, timeutil.Today().Year)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"log": dto})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
