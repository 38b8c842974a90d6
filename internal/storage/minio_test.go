package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/touchpointee/avanyaa-store/internal/config"
)

func TestObjectNameKeepsExtension(t *testing.T) {
	name := ObjectName("Summer Dress.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "got %q", name)

	name = ObjectName("banner.webp")
	assert.True(t, strings.HasSuffix(name, ".webp"), "got %q", name)

	name = ObjectName("noextension")
	assert.False(t, strings.Contains(name, "."), "got %q", name)
}

func TestObjectNameUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := ObjectName("photo.png")
		if seen[name] {
			t.Fatalf("duplicate object name %q", name)
		}
		seen[name] = true
	}
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "custom port kept",
			cfg:  config.Config{MinioEndpoint: "localhost", MinioPort: 9000},
			want: "http://localhost:9000",
		},
		{
			name: "http 80 omitted",
			cfg:  config.Config{MinioEndpoint: "images.example.com", MinioPort: 80},
			want: "http://images.example.com",
		},
		{
			name: "https 443 omitted",
			cfg:  config.Config{MinioEndpoint: "images.example.com", MinioPort: 443, MinioUseSSL: true},
			want: "https://images.example.com",
		},
		{
			name: "https custom port kept",
			cfg:  config.Config{MinioEndpoint: "images.example.com", MinioPort: 9443, MinioUseSSL: true},
			want: "https://images.example.com:9443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}
