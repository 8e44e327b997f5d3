package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/core/domain"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     domain.Coordinate
	}{
		{
			name:     "unversioned",
			notation: "com.google.firebase:firebase-analytics",
			want:     domain.Coordinate{Group: "com.google.firebase", Artifact: "firebase-analytics"},
		},
		{
			name:     "versioned",
			notation: "androidx.core:core-ktx:1.13.1",
			want:     domain.Coordinate{Group: "androidx.core", Artifact: "core-ktx", Version: "1.13.1"},
		},
		{
			name:     "platform",
			notation: "platform(com.google.firebase:firebase-bom:32.7.0)",
			want: domain.Coordinate{
				Group: "com.google.firebase", Artifact: "firebase-bom", Version: "32.7.0", Platform: true,
			},
		},
		{
			name:     "quoted",
			notation: `"com.google.firebase:firebase-analytics"`,
			want:     domain.Coordinate{Group: "com.google.firebase", Artifact: "firebase-analytics"},
		},
		{
			name:     "single quoted",
			notation: `'androidx.core:core-ktx:1.13.1'`,
			want:     domain.Coordinate{Group: "androidx.core", Artifact: "core-ktx", Version: "1.13.1"},
		},
		{
			name:     "quoted platform",
			notation: ` platform("com.google.firebase:firebase-bom:32.7.0") `,
			want: domain.Coordinate{
				Group: "com.google.firebase", Artifact: "firebase-bom", Version: "32.7.0", Platform: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCoordinate(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinate_Invalid(t *testing.T) {
	for _, notation := range []string{
		"",
		"justone",
		"a:b:c:d",
		"a::1.0",
		"platform(a:b)",
		"a b:c",
		`"com.google.firebase:firebase-analytics`,
		`com.google.firebase:"firebase-analytics"`,
		`"a:b'`,
		`platform("com.google.firebase:firebase-bom:32.7.0)`,
	} {
		t.Run(notation, func(t *testing.T) {
			_, err := domain.ParseCoordinate(notation)
			require.ErrorIs(t, err, domain.ErrInvalidCoordinate)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	c := domain.Coordinate{Group: "g", Artifact: "a", Version: "1", Platform: true}
	assert.Equal(t, "platform(g:a:1)", c.String())
	assert.Equal(t, "g:a:1", c.Key())
	assert.Equal(t, "g:a", c.Module())

	c.Platform = false
	c.Version = ""
	assert.Equal(t, "g:a", c.String())
	assert.False(t, c.Versioned())
}

func TestCoordinate_Slot(t *testing.T) {
	c := domain.Coordinate{Group: "g", Artifact: "a", Version: "1"}
	assert.Equal(t, "g:a", c.Slot())

	c.Configuration = "testImplementation"
	assert.Equal(t, "testImplementation(g:a)", c.Slot())

	c.Platform = true
	assert.Equal(t, "testImplementation(platform(g:a))", c.Slot())
}

func TestConfigurationInherits(t *testing.T) {
	tests := []struct {
		child  string
		parent string
		want   bool
	}{
		{child: "implementation", parent: "implementation", want: true},
		{child: "testImplementation", parent: "implementation", want: true},
		{child: "androidTestImplementation", parent: "implementation", want: true},
		{child: "releaseImplementation", parent: "api", want: true},
		{child: "compileOnly", parent: "implementation", want: true},
		{child: "implementation", parent: "testImplementation", want: false},
		{child: "androidTestImplementation", parent: "testImplementation", want: false},
		{child: "testRuntimeOnly", parent: "testImplementation", want: true},
		{child: "implementation", parent: "compileOnly", want: false},
		{child: "testImplementation", parent: "kapt", want: false},
		{child: "kapt", parent: "kapt", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.child+" from "+tt.parent, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ConfigurationInherits(tt.child, tt.parent))
		})
	}
}
