package models

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Merge(t *testing.T) {
	base := Snapshot{"hero-title": "Old", "intro": "Hello"}
	next := Snapshot{"hero-title": "New", "footer": "Bye"}

	merged := base.Merge(next)

	assert.Equal(t, Snapshot{"hero-title": "New", "intro": "Hello", "footer": "Bye"}, merged)
	// исходные snapshot не меняются
	assert.Equal(t, "Old", base["hero-title"])
	assert.NotContains(t, base, "footer")
}

func TestSnapshot_CloneNil(t *testing.T) {
	var s Snapshot
	clone := s.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestSnapshot_Keys(t *testing.T) {
	s := Snapshot{"b": "2", "a": "1", "c": "3"}
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"empty", "", ""},
		{"short", "abc", "***"},
		{"github token", "ghp_1234567890abcd", "**************abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskSecret(tt.secret))
		})
	}
}

func TestCredential_LogValueHidesToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cred := &Credential{
		Authenticated:  true,
		Identity:       "admin@example.com",
		PublisherToken: "ghp_supersecrettoken",
	}
	logger.Info("credential loaded", "credential", cred)

	assert.NotContains(t, buf.String(), "ghp_supersecrettoken")
	assert.Contains(t, buf.String(), "admin@example.com")
	assert.Contains(t, buf.String(), "oken")
}

func TestCredential_HasPublisherToken(t *testing.T) {
	var nilCred *Credential
	assert.False(t, nilCred.HasPublisherToken())
	assert.False(t, (&Credential{}).HasPublisherToken())
	assert.True(t, (&Credential{PublisherToken: "x"}).HasPublisherToken())
}

func TestPageIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index"},
		{"", "index"},
		{"/index.html", "index"},
		{"/about.html", "about"},
		{"/blog/retreats.html", "retreats"},
		{"/contact", "contact"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PageIDFromPath(tt.path))
		})
	}
}

func TestPageFile(t *testing.T) {
	assert.Equal(t, "index.html", PageFile("index"))
	assert.Equal(t, "index.html", PageFile(""))
	assert.Equal(t, "about.html", PageFile("about"))
}

func TestChangeEvent_IsReset(t *testing.T) {
	assert.True(t, (&ChangeEvent{Type: EventReset}).IsReset())
	assert.False(t, (&ChangeEvent{Type: EventUpdate}).IsReset())
}
