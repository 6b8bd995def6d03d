// Package mcp exposes the bot as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/minerva"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/input"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// GraphURI is the resource holding the menu definition.
const GraphURI = "minerva://graph"

// Engine defines what the MCP server needs from the bot.
type Engine interface {
	Reply(ctx context.Context, userID, message string) (domain.Reply, error)
	Inspect() []domain.Node
}

// ChatArgs are the arguments of the chatbot tool.
type ChatArgs struct {
	User    string `mapstructure:"usuario"`
	Message string `mapstructure:"mensaje"`
}

// ChatResult mirrors the HTTP response of POST /chatbot.
type ChatResult struct {
	State    string `json:"estado" jsonschema_description:"Node the user is at after this message"`
	Response string `json:"respuesta" jsonschema_description:"Text to show to the user"`
}

// Server wraps the bot and exposes it as an MCP server.
type Server struct {
	engine    Engine
	sanitizer input.Sanitizer
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxInputSize limits the size of the mensaje argument in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.sanitizer.MaxSize = n
	}
}

// NewServer creates a new MCP server with its tools and resources registered.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		sanitizer: input.Sanitizer{MaxSize: input.DefaultMaxSize},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("minerva-mcp", strings.TrimSpace(minerva.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves on Stdin/Stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	chatTool := mcp.NewTool("chatbot",
		mcp.WithDescription("Send one message of a user to the Minerva menu bot and get its reply."),
		mcp.WithString("usuario", mcp.Required(), mcp.Description("User identifier; each user has an independent conversation")),
		mcp.WithString("mensaje", mcp.Required(), mcp.Description("Message text, usually the number of a menu option")),
		mcp.WithOutputSchema[ChatResult](),
	)
	s.mcpServer.AddTool(chatTool, mcp.NewStructuredToolHandler(s.HandleChatbot))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full menu definition for introspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := s.graphJSON()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

// HandleChatbot runs the chatbot tool.
func (s *Server) HandleChatbot(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (ChatResult, error) {
	var in ChatArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return ChatResult{}, fmt.Errorf("invalid arguments: %w", err)
	}

	msg, err := s.sanitizer.Sanitize(in.Message)
	if err != nil {
		s.logger.Warn("mcp input rejected", "error", err, "size", len(in.Message))
		return ChatResult{}, fmt.Errorf("input rejected: %w", err)
	}

	reply, err := s.engine.Reply(ctx, in.User, msg)
	if err != nil {
		s.logger.Error("mcp reply failed", "error", err, "user_id", in.User)
		return ChatResult{}, fmt.Errorf("reply failed: %w", err)
	}
	return ChatResult{State: reply.State, Response: reply.Response}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(GraphURI, "Minerva menu definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := s.graphJSON()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GraphURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) graphJSON() ([]byte, error) {
	data, err := json.Marshal(s.engine.Inspect())
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph: %w", err)
	}
	return data, nil
}
