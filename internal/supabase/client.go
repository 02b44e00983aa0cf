package supabase

import (
	"strings"

	"github.com/supabase-community/supabase-go"

	"sitelog-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

// NewClient connects with the service key; evidence uploads are made on behalf
// of the API, not the end user.
func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(strings.TrimRight(cfg.SupabaseURL, "/"), cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
