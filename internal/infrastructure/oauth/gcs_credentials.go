package oauth

import (
	"context"
	"fmt"
	"os"

	"departure-board-service/pkg/logger"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GCSCredentials resolves the client options used to reach Cloud Storage
type GCSCredentials struct {
	credentialsFile string
	logger          logger.Logger
}

// NewGCSCredentials creates a credentials resolver. An empty file falls
// back to Application Default Credentials.
func NewGCSCredentials(credentialsFile string, logger logger.Logger) *GCSCredentials {
	return &GCSCredentials{
		credentialsFile: credentialsFile,
		logger:          logger,
	}
}

// ClientOptions returns the options for storage.NewClient
func (c *GCSCredentials) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if c.credentialsFile == "" {
		creds, err := google.FindDefaultCredentials(ctx, storage.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w", err)
		}
		c.logger.Info("Using application default credentials for GCS", "project", creds.ProjectID)
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}

	data, err := os.ReadFile(c.credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, storage.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	c.logger.Info("Using service account credentials for GCS", "file", c.credentialsFile)
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}

// NewStorageClient creates a Cloud Storage client with the resolved
// credentials
func (c *GCSCredentials) NewStorageClient(ctx context.Context) (*storage.Client, error) {
	opts, err := c.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}
	return storage.NewClient(ctx, opts...)
}
