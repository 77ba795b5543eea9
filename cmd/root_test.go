package cmd

import (
	"testing"
)

func TestRootCmd_Initialized(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}
	if rootCmd.Use != "dsc" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "dsc")
	}
	if rootCmd.Short == "" {
		t.Error("rootCmd.Short should not be empty")
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "format", "docspell-url", "session"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd should have persistent flag %q", name)
		}
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{
		"login", "logout", "register", "geninvite", "version",
		"search", "search-summary", "file-exists", "upload",
		"download", "item", "source", "cleanup", "admin", "watch",
		"write-default-config",
	}

	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("rootCmd should have %q subcommand", name)
		}
	}
}

func TestUploadCmd_HasUpAlias(t *testing.T) {
	found := false
	for _, alias := range uploadCmd.Aliases {
		if alias == "up" {
			found = true
		}
	}
	if !found {
		t.Error("upload command should have alias 'up'")
	}
}

func TestSearchSummaryCmd_HasSummaryAlias(t *testing.T) {
	found := false
	for _, alias := range searchSummaryCmd.Aliases {
		if alias == "summary" {
			found = true
		}
	}
	if !found {
		t.Error("search-summary command should have alias 'summary'")
	}
}
