package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

func TestCreateGenerator(t *testing.T) {
	tests := []struct {
		name        string
		settings    domain.AppSettings
		wantNil     bool
		wantErr     bool
		wantModel   string
		errContains string
	}{
		{
			name:     "empty provider returns nil",
			settings: domain.AppSettings{},
			wantNil:  true,
		},
		{
			name: "gemini without API key returns nil",
			settings: domain.AppSettings{
				Provider: domain.AIProviderGemini,
			},
			wantNil: true,
		},
		{
			name: "gemini with API key creates generator",
			settings: domain.AppSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
			},
			wantModel: "gemini-1.5-flash",
		},
		{
			name: "gemini honours custom model",
			settings: domain.AppSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
				Model:    "gemini-1.5-pro",
			},
			wantModel: "gemini-1.5-pro",
		},
		{
			name: "openai with API key creates generator",
			settings: domain.AppSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
			},
			wantModel: "gpt-4o-mini",
		},
		{
			name: "ollama needs no API key",
			settings: domain.AppSettings{
				Provider: domain.AIProviderOllama,
			},
			wantModel: "llama3.2",
		},
		{
			name: "unknown provider returns error",
			settings: domain.AppSettings{
				Provider: "mystery",
			},
			wantErr:     true,
			errContains: "unsupported provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := CreateGenerator(tt.settings)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, gen)
				return
			}
			require.NotNil(t, gen)
			defer gen.Close()
			assert.Equal(t, tt.wantModel, gen.ModelName())
		})
	}
}
