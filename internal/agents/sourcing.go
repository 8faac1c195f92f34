package agents

import (
	"context"

	"github.com/place-of-your-own/artworks/internal/sourcing"
)

// SourcingAgentImpl wraps the Pexels client.
type SourcingAgentImpl struct {
	Client *sourcing.Client
}

// NewSourcingAgent returns a SourcingAgent backed by the Pexels client.
func NewSourcingAgent(client *sourcing.Client) SourcingAgent {
	return &SourcingAgentImpl{Client: client}
}

// Source delegates to sourcing.Client.Search.
func (a *SourcingAgentImpl) Source(ctx context.Context, theme string, count int) []sourcing.Image {
	return a.Client.Search(ctx, theme, count)
}

// Fetch delegates to sourcing.Client.Download.
func (a *SourcingAgentImpl) Fetch(ctx context.Context, remoteURL string) ([]byte, error) {
	return a.Client.Download(ctx, remoteURL)
}
